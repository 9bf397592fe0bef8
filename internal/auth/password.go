package auth

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 32
)

var ErrWeakPassword = errors.New("password must be 8-32 characters and include upper case, lower case, number and special character")

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashSecurityAnswer hashes the answer after trimming and lowercasing it,
// so "Manila " and "manila" match.
func HashSecurityAnswer(answer string) (string, error) {
	return HashPassword(normalizeAnswer(answer))
}

func CheckSecurityAnswer(answer, hash string) bool {
	return CheckPasswordHash(normalizeAnswer(answer), hash)
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// ValidatePassword enforces the account password rule.
func ValidatePassword(password string) error {
	length := len([]rune(password))
	if length < MinPasswordLength || length > MaxPasswordLength {
		return ErrWeakPassword
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}
