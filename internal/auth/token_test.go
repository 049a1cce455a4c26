package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/model"
)

func testUser() *model.User {
	return &model.User{ID: uuid.New(), Email: "user@example.com"}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	user := testUser()

	token, err := tm.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != user.ID.String() {
		t.Fatalf("expected user id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewTokenManager("another-secret", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected parse to fail with a different secret")
	}
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)
	token, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := tm.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	if _, err := tm.Parse("not-a-token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
