package utils

import (
	"testing"
	"time"
)

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_AUD", "")
	t.Setenv("JWT_ISS", "")

	tokenStr, err := GenerateAccessToken(42, "who@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, claims, err := ValidateAccessToken(tokenStr)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if id, _ := claims["id"].(float64); uint(id) != 42 {
		t.Fatalf("expected id claim 42, got %v", claims["id"])
	}
	if email, _ := claims["email"].(string); email != "who@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
	exp, _ := claims["exp"].(float64)
	if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > AccessTokenTTL {
		t.Fatalf("expiry beyond the access TTL: %v", remaining)
	}
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, _, err := ValidateAccessToken("not-a-token"); err == nil {
		t.Fatal("garbage token must not validate")
	}
}
