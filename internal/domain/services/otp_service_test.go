package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
)

func TestCreateSessionReplacesPrior(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db, newTestConfig())

	first, err := svc.CreateSession("9876543210")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	second, err := svc.CreateSession("9876543210")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	var count int64
	db.Model(&models.OTPSession{}).Where("phone = ?", "9876543210").Count(&count)
	if count != 1 {
		t.Fatalf("Expected one live session per phone, got %d", count)
	}

	// The first code must no longer be redeemable
	if _, err := svc.VerifySession("9876543210", first.OTP); first.OTP != second.OTP && !errors.Is(err, ErrOTPInvalid) {
		t.Errorf("Expected replaced code to be rejected, got %v", err)
	}
}

func TestVerifySessionOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db, newTestConfig())

	session, err := svc.CreateSession("9876543210")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	verified, err := svc.VerifySession("9876543210", session.OTP)
	if err != nil {
		t.Fatalf("VerifySession failed: %v", err)
	}
	if !verified.Verified {
		t.Error("Expected session to be marked verified")
	}

	// Reuse of the same code fails
	if _, err := svc.VerifySession("9876543210", session.OTP); !errors.Is(err, ErrOTPInvalid) {
		t.Errorf("Expected reused code to be rejected, got %v", err)
	}
}

func TestVerifySessionWrongCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db, newTestConfig())

	if _, err := svc.CreateSession("9876543210"); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if _, err := svc.VerifySession("9876543210", "000000"); !errors.Is(err, ErrOTPInvalid) {
		// One-in-a-million collision with the real code is acceptable noise
		t.Errorf("Expected wrong code to be rejected, got %v", err)
	}
	if _, err := svc.VerifySession("9999999999", "123456"); !errors.Is(err, ErrOTPInvalid) {
		t.Errorf("Expected unknown phone to be rejected, got %v", err)
	}
}

func TestVerifySessionExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db, newTestConfig())

	session, err := svc.CreateSession("9876543210")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	db.Model(&models.OTPSession{}).Where("id = ?", session.ID).
		Update("expires_at", time.Now().Add(-time.Minute))

	if _, err := svc.VerifySession("9876543210", session.OTP); !errors.Is(err, ErrOTPInvalid) {
		t.Errorf("Expected expired code to be rejected, got %v", err)
	}
}

func TestCleanupExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db, newTestConfig())

	s1, _ := svc.CreateSession("9876543210")
	if _, err := svc.CreateSession("9876543211"); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	db.Model(&models.OTPSession{}).Where("id = ?", s1.ID).
		Update("expires_at", time.Now().Add(-time.Minute))

	removed, err := svc.CleanupExpired()
	if err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 expired session removed, got %d", removed)
	}
}
