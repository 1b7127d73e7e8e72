package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}

	if !VerifyPassword("s3cret-pass", hash) {
		t.Fatal("correct password did not verify")
	}
	if VerifyPassword("wrong-pass", hash) {
		t.Fatal("wrong password verified")
	}
}

func TestVerifyPassword_EmptyHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("anything", "") {
		t.Fatal("empty hash must never verify")
	}
}

func TestHashPassword_TruncatesAt72Bytes(t *testing.T) {
	t.Parallel()

	prefix := strings.Repeat("a", 72)
	p1 := prefix + "tail-one"
	p2 := prefix + "tail-two"

	h1, err := HashPassword(p1)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	// the two differ only beyond the boundary, so both verify
	if !VerifyPassword(p1, h1) {
		t.Fatal("original long password did not verify")
	}
	if !VerifyPassword(p2, h1) {
		t.Fatal("password identical in first 72 bytes did not verify")
	}
	if !VerifyPassword(prefix, h1) {
		t.Fatal("72-byte prefix did not verify")
	}
}

func TestVerifyPassword_DiffersWithinBoundary(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword(strings.Repeat("a", 40))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword(strings.Repeat("b", 40), hash) {
		t.Fatal("different password within boundary verified")
	}
}
