package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAccessCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		code := NewAccessCode()
		assert.Len(t, code, accessCodeLength)
		assert.NoError(t, ValidateAccessCode(code))
		assert.False(t, seen[code], "codes must not repeat")
		seen[code] = true

		for _, r := range code {
			assert.True(t, strings.ContainsRune(accessCodeAlphabet, r),
				"unexpected rune %q", r)
		}
	}
}

func TestValidateAccessCode(t *testing.T) {
	assert.NoError(t, ValidateAccessCode("abc123"))
	assert.NoError(t, ValidateAccessCode("customCode!@#$%^&*()"))

	// too short, too long
	assert.Equal(t, ErrInvalidAccessCode, ValidateAccessCode("abcde"))
	assert.Equal(t, ErrInvalidAccessCode, ValidateAccessCode(strings.Repeat("a", 21)))

	// whitespace anywhere is refused
	assert.Equal(t, ErrInvalidAccessCode, ValidateAccessCode("abc def"))
	assert.Equal(t, ErrInvalidAccessCode, ValidateAccessCode("abc\tdef"))
	assert.Equal(t, ErrInvalidAccessCode, ValidateAccessCode("abcdef\n"))
}

func TestSecretHashing(t *testing.T) {
	hash, err := hashSecret("s3cret-code")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-code", hash)

	assert.True(t, compareSecret(hash, "s3cret-code"))
	assert.False(t, compareSecret(hash, "s3cret-codX"))
	assert.False(t, compareSecret("", "s3cret-code"))
}

func TestNewTrackingCode(t *testing.T) {
	code := newTrackingCode()
	assert.True(t, strings.HasPrefix(code, "AR-"))
	assert.Len(t, code, 13)
	assert.NotEqual(t, code, newTrackingCode())
}
