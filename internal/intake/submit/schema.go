package submit

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema is the structural contract for the submission envelope.
// Field-level business rules live in the form package; this only rejects
// envelopes that cannot be a payload at all.
const payloadSchema = `{
	"type": "object",
	"required": ["partnersSelected", "founder", "company", "eligibility", "financials"],
	"properties": {
		"partnersSelected": {
			"type": "array",
			"items": {"type": "string"}
		},
		"competitionsSelected": {
			"type": "array",
			"items": {"type": "string"},
			"maxItems": 5
		},
		"programsSelected": {
			"type": "array",
			"items": {"type": "string"}
		},
		"founder": {
			"type": "object",
			"required": ["firstName", "lastName", "email"],
			"properties": {
				"firstName": {"type": "string"},
				"lastName": {"type": "string"},
				"email": {"type": "string"},
				"phone": {"type": "string"},
				"hasCoFounder": {"type": "string", "enum": ["yes", "no", ""]}
			}
		},
		"company": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string"},
				"website": {"type": "string"},
				"industries": {
					"type": "array",
					"items": {"type": "string"},
					"maxItems": 4
				},
				"region": {"type": "string"},
				"state": {"type": "string"},
				"elevatorPitch": {"type": "string", "maxLength": 300}
			}
		},
		"eligibility": {"type": "object"},
		"financials": {"type": "object"},
		"fundSpecific": {"type": "object"}
	}
}`

var compiledPayloadSchema = gojsonschema.NewStringLoader(payloadSchema)

// ValidatePayloadJSON checks a raw submission envelope against the payload
// schema before decoding. The returned error lists the first violation.
func ValidatePayloadJSON(raw []byte) error {
	result, err := gojsonschema.Validate(compiledPayloadSchema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("payload schema validation: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return fmt.Errorf("invalid payload: %s", errs[0].String())
		}
		return fmt.Errorf("invalid payload")
	}
	return nil
}
