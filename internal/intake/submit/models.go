package submit

import "venture-intake/internal/intake"

// DeckFile is an uploaded pitch deck held in memory until storage accepts it.
type DeckFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Input is one submission: the assembled payload and an optional deck.
type Input struct {
	Payload *intake.ApplicationPayload
	Deck    *DeckFile
}

// Result reports the outcome to the caller. Error carries the storage or
// database message verbatim when OK is false.
type Result struct {
	OK            bool   `json:"ok"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
	ApplicationID string `json:"applicationId,omitempty"`
	DeckPath      string `json:"deckPath,omitempty"`
}
