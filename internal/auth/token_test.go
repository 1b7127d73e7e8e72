package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret")

	tok, err := m.Issue("alice@example.com", "user-123", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := m.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "alice@example.com")
	}
	if claims.UserID != "user-123" {
		t.Fatalf("user id mismatch: got %q want %q", claims.UserID, "user-123")
	}
}

func TestValidate_ZeroTTL(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret")
	tok, err := m.Issue("a@b.c", "u1", 0)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := m.Validate(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for zero-ttl token, got %v", err)
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret")
	tok, err := m.Issue("a@b.c", "u1", -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := m.Validate(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret").Issue("a@b.c", "u2", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewTokenManager("wrong-secret").Validate(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for forged token, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("k")
	if _, err := m.Validate("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
	if _, err := m.Validate(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestIssueDefault_Validates(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret")
	tok, err := m.IssueDefault("a@b.c", "u3")
	if err != nil {
		t.Fatalf("IssueDefault error: %v", err)
	}
	if _, err := m.Validate(tok); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}
