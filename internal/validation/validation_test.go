package validation

import (
	"errors"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"valid", "ravi", nil},
		{"minimum length", "abc", nil},
		{"empty", "", ErrUsernameRequired},
		{"whitespace only", "   ", ErrUsernameRequired},
		{"too short", "ab", ErrUsernameTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "secret123", nil},
		{"minimum length", "abcdef", nil},
		{"empty", "", ErrPasswordRequired},
		{"too short", "abc12", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFullName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		wantErr  error
	}{
		{"valid", "Ravi Kumar", nil},
		{"empty", "", ErrFullNameRequired},
		{"whitespace only", "  \t ", ErrFullNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFullName(tt.fullName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFullName(%q) = %v, want %v", tt.fullName, err, tt.wantErr)
			}
		})
	}
}

func TestValidateClass(t *testing.T) {
	tests := []struct {
		name    string
		class   int
		wantErr error
	}{
		{"lowest", 6, nil},
		{"highest", 12, nil},
		{"below range", 5, ErrInvalidClass},
		{"above range", 13, ErrInvalidClass},
		{"zero", 0, ErrInvalidClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClass(tt.class)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateClass(%d) = %v, want %v", tt.class, err, tt.wantErr)
			}
		})
	}
}
