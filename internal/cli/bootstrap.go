package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kairoszero/satlog/internal/db"
	"github.com/kairoszero/satlog/internal/models"
	"github.com/kairoszero/satlog/internal/security"
)

// RunAdminBootstrapCommand creates the initial staff account when none
// exists yet. Credentials come from SUPERUSER_EMAIL, SUPERUSER_USERNAME and
// SUPERUSER_PASSWORD; an unset password is generated and printed exactly once.
func RunAdminBootstrapCommand(dbPath string) error {
	email := strings.ToLower(strings.TrimSpace(envOr("SUPERUSER_EMAIL", "admin@example.com")))
	username := strings.TrimSpace(envOr("SUPERUSER_USERNAME", "admin"))
	password := os.Getenv("SUPERUSER_PASSWORD")

	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid superuser email address: %w", err)
	}
	if username == "" {
		return errors.New("superuser username is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	users := db.NewUserRepository(database)

	staffCount, err := users.CountStaff()
	if err != nil {
		return fmt.Errorf("count staff users: %w", err)
	}
	if staffCount > 0 {
		fmt.Println("Staff user already exists, nothing to do.")
		return nil
	}

	generated := false
	if password == "" {
		password, err = security.GeneratePassword(12)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		generated = true
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(passwordHash),
		IsActive:     true,
		IsStaff:      true,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(&user); err != nil {
		return fmt.Errorf("create staff user: %w", err)
	}

	fmt.Printf("Created staff user %s (%s)\n", username, email)
	if generated {
		fmt.Printf("Generated password: %s\n", password)
		fmt.Println("Store it now; it will not be shown again.")
	}
	return nil
}

func envOr(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
