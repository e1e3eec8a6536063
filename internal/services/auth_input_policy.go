package services

import (
	"net/mail"
	"strings"
)

const (
	passwordMinLength = 8
	usernameMaxLength = 150
)

// FieldErrors collects validation messages per input field, mirroring the
// response body of the write endpoints.
type FieldErrors map[string][]string

func (errors FieldErrors) Add(field string, message string) {
	errors[field] = append(errors[field], message)
}

func (errors FieldErrors) HasErrors() bool {
	return len(errors) > 0
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// ValidateRegistrationInput checks the registration fields and reports every
// failure at once so the client can render them field by field.
func ValidateRegistrationInput(email string, username string, password string, passwordConfirm string) FieldErrors {
	fieldErrors := FieldErrors{}

	if email == "" {
		fieldErrors.Add("email", "email is required")
	} else if !IsValidEmail(email) {
		fieldErrors.Add("email", "enter a valid email address")
	}

	if strings.TrimSpace(username) == "" {
		fieldErrors.Add("username", "username is required")
	} else if len(username) > usernameMaxLength {
		fieldErrors.Add("username", "username is too long")
	}

	if password == "" {
		fieldErrors.Add("password", "password is required")
	} else if len(password) < passwordMinLength {
		fieldErrors.Add("password", "password must be at least 8 characters")
	}

	if passwordConfirm == "" {
		fieldErrors.Add("password_confirm", "password confirmation is required")
	} else if password != "" && password != passwordConfirm {
		fieldErrors.Add("password_confirm", "passwords do not match")
	}

	return fieldErrors
}

func ValidateLoginInput(email string, password string) FieldErrors {
	fieldErrors := FieldErrors{}

	if email == "" {
		fieldErrors.Add("email", "email is required")
	} else if !IsValidEmail(email) {
		fieldErrors.Add("email", "enter a valid email address")
	}

	if password == "" {
		fieldErrors.Add("password", "password is required")
	}

	return fieldErrors
}
