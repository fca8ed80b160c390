package token

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateValidate_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", 3600*time.Second)

	id := uuid.New()
	tok, err := svc.Generate(id, "Ada Lovelace", "https://www.gravatar.com/avatar/x")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tok == "" {
		t.Fatalf("empty token")
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != id {
		t.Fatalf("user id mismatch: %s != %s", claims.UserID, id)
	}
	if claims.Name != "Ada Lovelace" {
		t.Fatalf("name mismatch: %q", claims.Name)
	}
	if claims.Avatar != "https://www.gravatar.com/avatar/x" {
		t.Fatalf("avatar mismatch: %q", claims.Avatar)
	}
}

func TestValidate_Expired(t *testing.T) {
	svc := NewHMACService("test-secret", 3600*time.Second)

	issued := time.Now()
	svc.now = func() time.Time { return issued }

	tok, err := svc.Generate(uuid.New(), "Ada", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(3601 * time.Second) }
	if _, err := svc.Validate(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	svc.now = func() time.Time { return issued.Add(3599 * time.Second) }
	if _, err := svc.Validate(tok); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	a := NewHMACService("secret-a", time.Hour)
	b := NewHMACService("secret-b", time.Hour)

	tok, err := a.Generate(uuid.New(), "Ada", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := b.Validate(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.Validate("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
