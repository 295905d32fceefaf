package validation

import (
	"errors"
	"strings"

	"eduquest/internal/syllabus"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrFullNameRequired = errors.New("full name is required")
	ErrInvalidClass     = errors.New("class must be between 6 and 12")
)

// ValidateUsername checks signup username rules.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) < 3 {
		return ErrUsernameTooShort
	}
	return nil
}

// ValidatePassword checks signup password rules.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateFullName checks that a display name was given.
func ValidateFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrFullNameRequired
	}
	return nil
}

// ValidateClass checks the grade level is supported by the syllabus.
func ValidateClass(class int) error {
	if !syllabus.ValidClass(class) {
		return ErrInvalidClass
	}
	return nil
}
