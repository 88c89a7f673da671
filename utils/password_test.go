package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "secret123" || hash == "" {
		t.Fatal("hash must not be empty or plaintext")
	}

	ok, err := VerifyPassword(hash, "secret123")
	if err != nil || !ok {
		t.Errorf("expected matching password to verify, ok=%v err=%v", ok, err)
	}

	ok, _ = VerifyPassword(hash, "wrong-password")
	if ok {
		t.Error("expected wrong password to fail verification")
	}
}
