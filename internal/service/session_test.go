package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/passforge/passforge-go/internal/crypto"
)

func TestSessionStart(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	resp, err := svc.Start()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(resp.UserID); err != nil {
		t.Errorf("user id %q is not a UUID: %v", resp.UserID, err)
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != resp.UserID {
		t.Errorf("token user %q, want %q", claims.UserID, resp.UserID)
	}
	if resp.ExpiresAt.Before(time.Now()) {
		t.Error("session already expired")
	}
}

func TestSessionStart_UniqueUsers(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	a, err := svc.Start()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := svc.Start()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.UserID == b.UserID {
		t.Error("two sessions share a user id")
	}
}
