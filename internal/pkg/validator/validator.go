package validator

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const MinPasswordLength = 6

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRegex  = regexp.MustCompile(`^[\p{L}\s\-'\.]+$`)
)

var (
	ErrEmailRequired    = errors.New("Email is required")
	ErrEmailInvalid     = errors.New("Please enter a valid email address")
	ErrPasswordRequired = errors.New("Password is required")
	ErrPasswordShort    = errors.New("Password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrPasswordWeak     = errors.New("Password must be at least 8 characters and mix upper and lower case letters, numbers and symbols")
	ErrNameInvalid      = errors.New("Please enter a valid name")
	ErrLocationRequired = errors.New("Location is required")
)

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidName checks if the name contains only letters, spaces, and common punctuation
func IsValidName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return nameRegex.MatchString(name) && len(name) >= 2
}

// IsStrongPassword checks if the password mixes cases, digits and symbols
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

// Email returns the first problem with email, if any
func Email(email string) error {
	switch {
	case strings.TrimSpace(email) == "":
		return ErrEmailRequired
	case !IsValidEmail(strings.TrimSpace(email)):
		return ErrEmailInvalid
	}
	return nil
}

// PasswordPair checks a new password and its confirmation
func PasswordPair(password, confirm string) error {
	switch {
	case password == "":
		return ErrPasswordRequired
	case len(password) < MinPasswordLength:
		return ErrPasswordShort
	case password != confirm:
		return ErrPasswordMismatch
	}
	return nil
}
