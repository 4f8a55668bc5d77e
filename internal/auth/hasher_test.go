package auth

import (
	"testing"

	"github.com/shopcore/shopcore-be/internal/apperror"
)

func TestNewHasher_RejectsLowCost(t *testing.T) {
	t.Parallel()

	if _, err := NewHasher(MinBcryptCost - 1); err == nil {
		t.Fatalf("expected error for cost below %d, got nil", MinBcryptCost)
	}
	if _, err := NewHasher(MinBcryptCost); err != nil {
		t.Fatalf("NewHasher(%d) error: %v", MinBcryptCost, err)
	}
}

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	h, err := NewHasher(MinBcryptCost)
	if err != nil {
		t.Fatalf("NewHasher error: %v", err)
	}

	hashed, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hashed == "password1" {
		t.Fatal("hash equals plaintext")
	}

	ok, err := h.Verify("password1", hashed)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to verify")
	}

	ok, err = h.Verify("password2", hashed)
	if err != nil {
		t.Fatalf("Verify error on mismatch: %v", err)
	}
	if ok {
		t.Fatal("expected mismatched password to fail verification")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	h, err := NewHasher(MinBcryptCost)
	if err != nil {
		t.Fatalf("NewHasher error: %v", err)
	}

	_, err = h.Verify("password1", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatal("expected error for malformed stored hash, got nil")
	}
	if !apperror.IsKind(err, apperror.KindHash) {
		t.Fatalf("expected hash error kind, got %v", err)
	}
}
