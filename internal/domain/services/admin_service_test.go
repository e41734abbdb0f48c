package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
)

func TestAdminAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig())

	admin := &models.AdminUser{
		Email:    "ops@terrawise.com",
		Password: "secret123",
		FullName: "Ops Admin",
	}
	if err := svc.CreateAdmin(admin); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}
	if !strings.Contains(admin.Password, ".") {
		t.Error("Expected stored password to be hashed")
	}

	got, err := svc.Authenticate("ops@terrawise.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != admin.ID {
		t.Errorf("Expected admin %d, got %d", admin.ID, got.ID)
	}

	if _, err := svc.Authenticate("ops@terrawise.com", "wrong"); !errors.Is(err, ErrAdminCredentials) {
		t.Errorf("Expected ErrAdminCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@terrawise.com", "secret123"); !errors.Is(err, ErrAdminCredentials) {
		t.Errorf("Expected ErrAdminCredentials for unknown email, got %v", err)
	}
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig())

	if err := svc.CreateAdmin(&models.AdminUser{Email: "ops@terrawise.com", Password: "secret123"}); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}
	if err := svc.CreateAdmin(&models.AdminUser{Email: "ops@terrawise.com", Password: "other456"}); err == nil {
		t.Error("Expected error for duplicate admin email")
	}
}

func TestEnsureAdminExists(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAdminService(db, cfg)

	if err := svc.EnsureAdminExists(); err != nil {
		t.Fatalf("EnsureAdminExists failed: %v", err)
	}

	admin, err := svc.Authenticate(cfg.DefaultAdminEmail, cfg.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("Expected bootstrapped admin to authenticate: %v", err)
	}
	if admin.FullName != cfg.DefaultAdminName {
		t.Errorf("Expected full name %q, got %q", cfg.DefaultAdminName, admin.FullName)
	}

	// bootstrap is a no-op once any account exists
	if err := svc.EnsureAdminExists(); err != nil {
		t.Fatalf("EnsureAdminExists failed on second run: %v", err)
	}
	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 admin account, got %d", count)
	}
}
