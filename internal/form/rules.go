package form

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlRegex      = regexp.MustCompile(`(?i)^(https?://|www\.)\S+$`)
	linkedinRegex = regexp.MustCompile(`(?i)^https?://(www\.)?linkedin\.com/`)
	numericStrip  = regexp.MustCompile(`[, ]`)
)

// Required fails when the scalar field is empty or whitespace.
func Required(message string) Rule {
	return func(f *Form, field string) *FieldError {
		if strings.TrimSpace(f.Field(field)) == "" {
			return &FieldError{Field: field, Code: "required", Message: message}
		}
		return nil
	}
}

// Email fails when a non-empty value is not a plausible email address.
func Email() Rule {
	return func(f *Form, field string) *FieldError {
		v := strings.TrimSpace(f.Field(field))
		if v == "" || emailRegex.MatchString(v) {
			return nil
		}
		return &FieldError{Field: field, Code: "email", Message: "Enter a valid email address"}
	}
}

// URL fails when a non-empty value lacks an https:// or www. prefix.
func URL() Rule {
	return func(f *Form, field string) *FieldError {
		v := strings.TrimSpace(f.Field(field))
		if v == "" || urlRegex.MatchString(v) {
			return nil
		}
		return &FieldError{Field: field, Code: "url", Message: "Enter a valid URL (including https:// or www.)"}
	}
}

// LinkedInURL fails when a non-empty value is not a linkedin.com URL.
func LinkedInURL() Rule {
	return func(f *Form, field string) *FieldError {
		v := strings.TrimSpace(f.Field(field))
		if v == "" || linkedinRegex.MatchString(v) {
			return nil
		}
		return &FieldError{Field: field, Code: "linkedin", Message: "Enter a valid LinkedIn URL"}
	}
}

// MinLen fails when a non-empty value is shorter than n characters.
func MinLen(n int) Rule {
	return func(f *Form, field string) *FieldError {
		v := strings.TrimSpace(f.Field(field))
		if v == "" || len([]rune(v)) >= n {
			return nil
		}
		return &FieldError{Field: field, Code: "min_length", Message: fmt.Sprintf("Must be at least %d characters", n)}
	}
}

// MaxLen fails when the value exceeds n characters.
func MaxLen(n int) Rule {
	return func(f *Form, field string) *FieldError {
		if len([]rune(f.Field(field))) <= n {
			return nil
		}
		return &FieldError{Field: field, Code: "max_length", Message: fmt.Sprintf("Must be at most %d characters", n)}
	}
}

// Enum fails when a non-empty value is not one of the allowed options.
func Enum(allowed func(string) bool, message string) Rule {
	return func(f *Form, field string) *FieldError {
		v := f.Field(field)
		if v == "" || allowed(v) {
			return nil
		}
		return &FieldError{Field: field, Code: "enum", Message: message}
	}
}

// YesNo fails unless the value is exactly "yes" or "no". Every eligibility
// question must be answered explicitly before submission.
func YesNo(message string) Rule {
	return func(f *Form, field string) *FieldError {
		v := f.Field(field)
		if v == "yes" || v == "no" {
			return nil
		}
		return &FieldError{Field: field, Code: "yes_no", Message: message}
	}
}

// Numeric fails when a non-empty value does not parse as a finite number
// after stripping comma and space separators. Submission is blocked on
// unparseable numbers; the server side independently maps them to null.
func Numeric() Rule {
	return func(f *Form, field string) *FieldError {
		v := strings.TrimSpace(f.Field(field))
		if v == "" {
			return nil
		}
		stripped := numericStrip.ReplaceAllString(v, "")
		n, err := strconv.ParseFloat(stripped, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return &FieldError{Field: field, Code: "numeric", Message: "Enter a valid number"}
		}
		return nil
	}
}

// ListMin fails when a list field has fewer than n entries.
func ListMin(n int, message string) Rule {
	return func(f *Form, field string) *FieldError {
		if len(f.List(field)) >= n {
			return nil
		}
		return &FieldError{Field: field, Code: "list_min", Message: message}
	}
}

// ListMax fails when a list field has more than n entries.
func ListMax(n int, message string) Rule {
	return func(f *Form, field string) *FieldError {
		if len(f.List(field)) <= n {
			return nil
		}
		return &FieldError{Field: field, Code: "list_max", Message: message}
	}
}

// ListEach fails when any list entry is outside the allowed options.
func ListEach(allowed func(string) bool, message string) Rule {
	return func(f *Form, field string) *FieldError {
		for _, v := range f.List(field) {
			if !allowed(v) {
				return &FieldError{Field: field, Code: "enum", Message: message}
			}
		}
		return nil
	}
}

// When applies rule only while cond holds, for conditionally required fields.
func When(cond func(f *Form) bool, rule Rule) Rule {
	return func(f *Form, field string) *FieldError {
		if !cond(f) {
			return nil
		}
		return rule(f, field)
	}
}
