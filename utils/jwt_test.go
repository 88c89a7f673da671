package utils

import (
	"testing"

	"pizza-shop/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	token, err := GenerateToken(42, "alice@example.com", "customer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "alice@example.com" || claims.Role != "customer" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "first-secret", JWTExpiry: "1h"}
	token, err := GenerateToken(1, "a@x.com", "customer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	config.AppConfig = &config.Config{JWTSecret: "other-secret", JWTExpiry: "1h"}
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected error for token signed with different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "-1h"}
	token, err := GenerateToken(1, "a@x.com", "customer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("expected error for expired token")
	}
}
