package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Leganyst/labor-platform/internal/apperr"
)

func TestIdentityRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.identity.Register(ctx, RegisterInput{
		Email:     "User@Example.com",
		Password:  "password123",
		FirstName: "John",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("password stored in plain text")
	}

	// Email нормализуется, вход регистронезависимый.
	token, got, err := env.identity.Login(ctx, "user@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected signed token")
	}
	if got.ID != user.ID {
		t.Fatalf("logged in as wrong user")
	}

	if _, _, err := env.identity.Login(ctx, "user@example.com", "wrong-password"); err == nil {
		t.Fatalf("expected error for wrong password")
	}
}

func TestIdentityRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := RegisterInput{Email: "user@example.com", Password: "password123"}
	if _, err := env.identity.Register(ctx, input); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := env.identity.Register(ctx, input); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestIdentityRegister_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.identity.Register(ctx, RegisterInput{Email: "", Password: "password123"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for empty email, got %v", err)
	}
	if _, err := env.identity.Register(ctx, RegisterInput{Email: "a@b.c", Password: "short"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for short password, got %v", err)
	}
}

// Флаг IsProvider выводится из наличия профиля провайдера, без
// какого-либо состояния сессии.
func TestIdentityCurrentUser_IsProviderDerived(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.identity.Register(ctx, RegisterInput{
		Email:    "provider@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	identity, err := env.identity.CurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if identity.IsProvider {
		t.Fatalf("expected IsProvider == false before profile creation")
	}

	mustCreateProvider(t, env, validProviderInput(user.ID))

	identity, err = env.identity.CurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if !identity.IsProvider {
		t.Fatalf("expected IsProvider == true after profile creation")
	}
}
