package auth

import (
	"errors"
	"strings"
	"unicode"
)

const minPasswordLength = 8

var (
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrPasswordNumeric   = errors.New("password cannot be entirely numeric")
	ErrPasswordTooCommon = errors.New("password is too common")
	ErrPasswordSimilar   = errors.New("password is too similar to the username")
)

// commonPasswords is a short deny-list of the passwords people actually use.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"password123": {},
	"12345678":   {},
	"123456789":  {},
	"1234567890": {},
	"qwerty123":  {},
	"qwertyuiop": {},
	"letmein123": {},
	"iloveyou1":  {},
	"admin123":   {},
	"welcome1":   {},
	"abc12345":   {},
	"sunshine1":  {},
	"football1":  {},
}

// ValidatePassword enforces the account password policy: minimum length, not
// entirely numeric, not on the common-password list, and not just the
// username with trimmings.
func ValidatePassword(password, username string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ErrPasswordNumeric
	}

	lower := strings.ToLower(password)
	if _, ok := commonPasswords[lower]; ok {
		return ErrPasswordTooCommon
	}

	if username != "" {
		lowerUser := strings.ToLower(username)
		if lower == lowerUser || (len(lowerUser) >= 4 && strings.Contains(lower, lowerUser)) {
			return ErrPasswordSimilar
		}
	}
	return nil
}
