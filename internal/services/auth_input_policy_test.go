package services

import "testing"

func TestValidateRegistrationInput(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		username   string
		password   string
		confirm    string
		wantFields []string
	}{
		{
			name:     "valid input",
			email:    "user@example.com",
			username: "user",
			password: "Password1",
			confirm:  "Password1",
		},
		{
			name:       "missing everything",
			wantFields: []string{"email", "username", "password", "password_confirm"},
		},
		{
			name:       "malformed email",
			email:      "not-an-email",
			username:   "user",
			password:   "Password1",
			confirm:    "Password1",
			wantFields: []string{"email"},
		},
		{
			name:       "short password",
			email:      "user@example.com",
			username:   "user",
			password:   "short",
			confirm:    "short",
			wantFields: []string{"password"},
		},
		{
			name:       "password mismatch",
			email:      "user@example.com",
			username:   "user",
			password:   "Password1",
			confirm:    "Password2",
			wantFields: []string{"password_confirm"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			fieldErrors := ValidateRegistrationInput(testCase.email, testCase.username, testCase.password, testCase.confirm)
			if len(testCase.wantFields) == 0 {
				if fieldErrors.HasErrors() {
					t.Fatalf("expected no errors, got %v", fieldErrors)
				}
				return
			}
			if len(fieldErrors) != len(testCase.wantFields) {
				t.Fatalf("expected errors on %v, got %v", testCase.wantFields, fieldErrors)
			}
			for _, field := range testCase.wantFields {
				if len(fieldErrors[field]) == 0 {
					t.Fatalf("expected an error on field %q, got %v", field, fieldErrors)
				}
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	if fieldErrors := ValidateLoginInput("user@example.com", "Password1"); fieldErrors.HasErrors() {
		t.Fatalf("expected no errors, got %v", fieldErrors)
	}
	fieldErrors := ValidateLoginInput("", "")
	if len(fieldErrors["email"]) == 0 || len(fieldErrors["password"]) == 0 {
		t.Fatalf("expected errors on email and password, got %v", fieldErrors)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  User@Example.COM "); got != "user@example.com" {
		t.Fatalf("expected normalized email, got %q", got)
	}
}
