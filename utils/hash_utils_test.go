package utils

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	parts := strings.Split(hash, ".")
	if len(parts) != 2 {
		t.Fatalf("Expected hash.salt format, got %q", hash)
	}
	if len(parts[0]) != scryptKeyLen*2 {
		t.Errorf("Expected %d hex chars of key, got %d", scryptKeyLen*2, len(parts[0]))
	}
	if len(parts[1]) != scryptSalt*2 {
		t.Errorf("Expected %d hex chars of salt, got %d", scryptSalt*2, len(parts[1]))
	}

	if !CheckPasswordHash("secret123", hash) {
		t.Error("Expected correct password to verify")
	}
	if CheckPasswordHash("secret124", hash) {
		t.Error("Expected wrong password to fail")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("Expected different hashes for the same password")
	}
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	cases := []string{"", "nodot", "a.b.c", "zz.zz", "deadbeef"}
	for _, stored := range cases {
		if CheckPasswordHash("whatever", stored) {
			t.Errorf("Expected malformed value %q to fail verification", stored)
		}
	}
}

func TestBcryptRoundTrip(t *testing.T) {
	hash, err := HashPasswordBcrypt("legacy-pass")
	if err != nil {
		t.Fatalf("HashPasswordBcrypt failed: %v", err)
	}
	if !CheckPasswordBcrypt("legacy-pass", hash) {
		t.Error("Expected correct password to verify")
	}
	if CheckPasswordBcrypt("other", hash) {
		t.Error("Expected wrong password to fail")
	}
}
