package intake

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailUnsafe   = regexp.MustCompile(`[^a-z0-9@._-]`)
	companyUnsafe = regexp.MustCompile(`[^a-z0-9]+`)
)

// SafeEmail lowercases an email and replaces every character outside
// [a-z0-9@._-] with an underscore. Empty input yields "anon".
func SafeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "anon"
	}
	return emailUnsafe.ReplaceAllString(email, "_")
}

// SafeCompany lowercases a company name and collapses every run of
// characters outside [a-z0-9] into a single underscore. Empty input yields
// "startup".
func SafeCompany(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "startup"
	}
	return companyUnsafe.ReplaceAllString(name, "_")
}

// DeckObjectPath derives the storage key for an uploaded pitch deck:
// {safeEmail}/{safeCompany}_pitch_deck_{YYYY-MM-DD}.{ext}. The extension is
// taken from the uploaded file name, defaulting to pdf.
func DeckObjectPath(email, company, fileName string, now time.Time) string {
	ext := "pdf"
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		ext = strings.ToLower(fileName[i+1:])
	}
	return fmt.Sprintf("%s/%s_pitch_deck_%s.%s",
		SafeEmail(email), SafeCompany(company), now.UTC().Format("2006-01-02"), ext)
}
