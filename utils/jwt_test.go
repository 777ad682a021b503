package utils

import (
	"testing"
	"time"

	"github.com/dailyquil/dailyquil/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.SetForTesting(config.AppConfig{JWTSecret: "test-secret"})

	token, err := GenerateToken(7, "ada", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "ada" {
		t.Errorf("claims = (%d, %q), want (7, \"ada\")", claims.UserID, claims.Username)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	config.SetForTesting(config.AppConfig{JWTSecret: "test-secret"})

	token, err := GenerateToken(7, "ada", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Errorf("expired token should not parse")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	config.SetForTesting(config.AppConfig{JWTSecret: "secret-a"})
	token, err := GenerateToken(7, "ada", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	config.SetForTesting(config.AppConfig{JWTSecret: "secret-b"})
	if _, err := ParseToken(token); err == nil {
		t.Errorf("token signed with a different secret should not parse")
	}
	config.SetForTesting(config.AppConfig{JWTSecret: "secret-a"})
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	config.SetForTesting(config.AppConfig{JWTSecret: "test-secret"})
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Errorf("garbage input should not parse")
	}
}
