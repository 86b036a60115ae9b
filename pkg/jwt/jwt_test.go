package jwt

import (
	"strings"
	"testing"
)

func TestTokenLifecycle(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "user@lottery.com", "Test User")
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error validating token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "user@lottery.com" {
		t.Fatalf("expected email user@lottery.com, got %s", claims.Email)
	}
	if claims.Name != "Test User" {
		t.Fatalf("expected name Test User, got %s", claims.Name)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "user@lottery.com", "Test User")
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	// Flip the signature segment
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	if _, err := ValidateToken(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(42, "user@lottery.com", "Test User")
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected garbage to be rejected")
	}
}
