package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrCodeOriginNotAllowed:         "SECURITY",
		ErrCodeCSRFInvalid:              "SECURITY",
		ErrCodePayloadParse:             "VALIDATION",
		ErrCodeValidationFailed:         "VALIDATION",
		ErrCodePartnerRequired:          "VALIDATION",
		ErrCodeInvalidUserType:          "VALIDATION",
		ErrCodeStorageUploadFailed:      "STORAGE",
		ErrCodeDatabaseConnectionFailed: "DATABASE",
		ErrCodeDatabaseInsertFailed:     "DATABASE",
		ErrCodeNotificationSendFailed:   "NOTIFICATION",
	}
	for code, want := range cases {
		assert.Equal(t, want, GetErrorCategory(code), string(code))
	}
	assert.Equal(t, "OTHER", GetErrorCategory("SOMETHING_ELSE"))
}

func TestIsSecurityError(t *testing.T) {
	assert.True(t, IsSecurityError(ErrCodeOriginNotAllowed))
	assert.True(t, IsSecurityError(ErrCodeCSRFInvalid))
	assert.False(t, IsSecurityError(ErrCodeValidationFailed))
	assert.False(t, IsSecurityError(ErrCodeDatabaseInsertFailed))
}

func TestConstructorsCarryDetails(t *testing.T) {
	upload := NewStorageUploadFailedError("a@b.c/acme_pitch_deck_2026-01-01.pdf", errors.New("bucket gone"))
	assert.Equal(t, ErrCodeStorageUploadFailed, upload.Code)
	assert.Contains(t, upload.Details, "bucket gone")
	assert.True(t, upload.Retryable)

	partner := NewPartnerRequiredError()
	assert.Equal(t, ErrCodePartnerRequired, partner.Code)
	assert.False(t, partner.Retryable)

	userType := NewInvalidUserTypeError("robot")
	assert.Contains(t, userType.Details, "robot")

	notif := NewNotificationSendFailedError("sms", errors.New("throttled"))
	assert.Contains(t, notif.Details, "channel: sms")
	assert.Contains(t, notif.Error(), string(ErrCodeNotificationSendFailed))
}
