package jwt

import (
	"testing"
	"time"
)

var secret = []byte("unit-test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseRejectsWrongType(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "refresh", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected type mismatch error")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken([]byte("other-secret"), "access", token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected expiry error")
	}
}
