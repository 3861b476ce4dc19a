package entity

import (
	"regexp"
	"time"
	"unicode"
)

const MinPasswordChars = 8

var emailPattern = regexp.MustCompile(`^\w+@\w+\.\w+$`)

// Account is a registered user, identified by email.
type Account struct {
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt digest. Never leaves the server.
	CreatedAt    time.Time // Registration time.
}

// IsValidEmail reports whether email has the word@word.word shape accepted at registration.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStrongPassword reports whether password holds at least MinPasswordChars non-whitespace characters.
func IsStrongPassword(password string) bool {
	count := 0
	for _, r := range password {
		if unicode.IsSpace(r) {
			continue
		}
		count++
		if count >= MinPasswordChars {
			return true
		}
	}

	return false
}
