package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueCSRFToken_Format(t *testing.T) {
	token, err := IssueCSRFToken()
	assert.NoError(t, err)
	assert.Len(t, token, 64) // 32 random bytes, hex encoded

	other, err := IssueCSRFToken()
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestValidateCSRFToken(t *testing.T) {
	token, err := IssueCSRFToken()
	assert.NoError(t, err)

	assert.NoError(t, ValidateCSRFToken(token, token))

	assert.ErrorIs(t, ValidateCSRFToken(token, ""), ErrInvalidCSRFToken)
	assert.ErrorIs(t, ValidateCSRFToken("", token), ErrInvalidCSRFToken)
	assert.ErrorIs(t, ValidateCSRFToken(token, token[:32]), ErrInvalidCSRFToken)
	assert.ErrorIs(t, ValidateCSRFToken(token, token[:63]+"0"), ErrInvalidCSRFToken)
}

func TestOriginAllowList(t *testing.T) {
	list := NewOriginAllowList([]string{
		"https://apply.example.com",
		"http://localhost:8080/",
		"",
	})

	assert.True(t, list.Allowed("https://apply.example.com"))
	assert.True(t, list.Allowed("http://localhost:8080"))
	assert.False(t, list.Allowed("https://evil.example.com"))
	assert.False(t, list.Allowed(""))
}
