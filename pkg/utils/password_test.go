package utils

import (
	"testing"
)

func TestHashAndCheckPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h == "pw123" || h == "" {
		t.Fatalf("hash must not be empty or equal to the plaintext")
	}

	ok, err := CheckPassword("pw123", h)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !ok {
		t.Fatalf("expected matching password to verify")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	ok, err := CheckPassword("battery staple", h)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch to verify as false")
	}
}

func TestHashPassword_SaltedDistinctHashes(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
}

func TestCheckPassword_CorruptHash(t *testing.T) {
	t.Parallel()

	_, err := CheckPassword("whatever", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatalf("expected error for a corrupt stored hash")
	}
}
