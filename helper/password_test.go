package helper

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "rahasia123" {
		t.Fatal("hash must not equal the plain password")
	}

	if !CheckPasswordHash("rahasia123", hash) {
		t.Error("expected correct password to verify")
	}
	if CheckPasswordHash("salah", hash) {
		t.Error("expected wrong password to fail")
	}
}
