package helper

import (
	"errors"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validasi Email (regex simple)
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateRegisterInput memeriksa input register di luar tag validator.
func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" {
		return errors.New("user_name wajib diisi")
	}
	if !IsValidEmail(strings.TrimSpace(email)) {
		return errors.New("format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("password harus minimal 8 karakter")
	}
	return nil
}

// ValidateLoginInput memeriksa input login.
func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("identifier wajib diisi")
	}
	if password == "" {
		return errors.New("password wajib diisi")
	}
	return nil
}
