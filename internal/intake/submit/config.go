// Package submit persists assembled applications: it uploads the pitch deck,
// inserts the application row and drops the short-lived submitted marker.
package submit

import "time"

// Config tunes one submit handler instance.
type Config struct {
	// DeckBucket is the object storage bucket for pitch decks.
	DeckBucket string

	// SubmittedMarkerKey and SubmittedMarkerTTL control the short-lived
	// marker that lets the site show a "submitted" notice after redirect.
	SubmittedMarkerKey string
	SubmittedMarkerTTL time.Duration

	// ApplyCacheKey is the cached apply page entry invalidated after a
	// successful insert.
	ApplyCacheKey string

	// Funnel labels metrics emitted by this handler.
	Funnel string
}

// NewConfig returns the production defaults.
func NewConfig(bucket string) Config {
	return Config{
		DeckBucket:         bucket,
		SubmittedMarkerKey: "form:submitted",
		SubmittedMarkerTTL: 60 * time.Second,
		ApplyCacheKey:      "page:apply",
		Funnel:             "application",
	}
}
