package token

import (
	"testing"
	"time"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewMakerRejectsShortKey(t *testing.T) {
	if _, err := NewMaker([]byte("too-short"), time.Hour); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	maker, err := NewMaker(testKey, time.Hour)
	if err != nil {
		t.Fatalf("NewMaker: %v", err)
	}

	tok, err := maker.Issue("64f1c0ffee", "admin", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	payload, err := maker.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if payload.UserID != "64f1c0ffee" {
		t.Errorf("user id = %q, want %q", payload.UserID, "64f1c0ffee")
	}
	if payload.Username != "admin" || payload.Role != "admin" {
		t.Errorf("username/role = %q/%q", payload.Username, payload.Role)
	}
	if !payload.ExpiresAt.After(payload.IssuedAt) {
		t.Error("expires_at should be after issued_at")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	maker, err := NewMaker(testKey, -time.Minute)
	if err != nil {
		t.Fatalf("NewMaker: %v", err)
	}
	// lifetime <= 0 kembali ke default, jadi buat maker manual
	maker.lifetime = -time.Minute

	tok, err := maker.Issue("id", "user", "user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := maker.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	maker, _ := NewMaker(testKey, time.Hour)
	other, _ := NewMaker([]byte("ffffffffffffffffffffffffffffffff"), time.Hour)

	tok, err := maker.Issue("id", "user", "user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := other.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	maker, _ := NewMaker(testKey, time.Hour)
	if _, err := maker.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
