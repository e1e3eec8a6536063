package cli

import (
	"path/filepath"
	"testing"

	"github.com/kairoszero/satlog/internal/db"
	"github.com/kairoszero/satlog/internal/models"
)

func TestRunAdminBootstrapCommandCreatesStaffUserOnce(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "satlog-bootstrap-test.db")

	t.Setenv("SUPERUSER_EMAIL", "root@satlog.local")
	t.Setenv("SUPERUSER_USERNAME", "root")
	t.Setenv("SUPERUSER_PASSWORD", "BootstrapPass1")

	if err := RunAdminBootstrapCommand(databasePath); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	var user models.User
	if err := database.Where("email = ?", "root@satlog.local").First(&user).Error; err != nil {
		t.Fatalf("load staff user: %v", err)
	}
	if !user.IsStaff || !user.IsActive {
		t.Fatalf("expected active staff user, got %+v", user)
	}

	// A second run must not create a duplicate.
	if err := RunAdminBootstrapCommand(databasePath); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	var count int64
	if err := database.Model(&models.User{}).Where("is_staff = ?", true).Count(&count).Error; err != nil {
		t.Fatalf("count staff users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one staff user, got %d", count)
	}
}

func TestRunAdminBootstrapCommandRejectsInvalidEmail(t *testing.T) {
	t.Setenv("SUPERUSER_EMAIL", "not-an-email")
	t.Setenv("SUPERUSER_USERNAME", "root")
	t.Setenv("SUPERUSER_PASSWORD", "BootstrapPass1")

	err := RunAdminBootstrapCommand(filepath.Join(t.TempDir(), "satlog-bootstrap-invalid.db"))
	if err == nil {
		t.Fatal("expected an error for an invalid superuser email")
	}
}
