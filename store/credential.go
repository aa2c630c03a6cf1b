package store

import (
	"crypto/rand"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = fmt.Errorf("invalid phone or access code")
	ErrAccountSuspended   = fmt.Errorf("the account is suspended")
	ErrInvalidAccessCode  = fmt.Errorf("access code must be 6-20 characters without whitespace")
)

const (
	accessCodeAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"
	accessCodeLength   = 10

	AccessCodeMinLength = 6
	AccessCodeMaxLength = 20
)

// NewAccessCode generates an opaque bearer secret. It is returned to
// the caller exactly once, only its hash is stored.
func NewAccessCode() string {
	b := make([]byte, accessCodeLength)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = accessCodeAlphabet[int(b[i])%len(accessCodeAlphabet)]
	}
	return string(b)
}

// ValidateAccessCode checks the custom-code constraints: 6 to 20
// characters, anything but whitespace.
func ValidateAccessCode(code string) error {
	if len(code) < AccessCodeMinLength || len(code) > AccessCodeMaxLength {
		return ErrInvalidAccessCode
	}
	if strings.ContainsAny(code, " \t\n\r") {
		return ErrInvalidAccessCode
	}
	return nil
}

func hashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func compareSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
