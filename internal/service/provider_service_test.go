package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/apperr"
	"github.com/Leganyst/labor-platform/internal/model"
)

func TestProviderCreate_KeyedByUserID(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()

	p := mustCreateProvider(t, env, validProviderInput(userID))
	if p.ID != userID {
		t.Fatalf("expected provider id to equal user id, got %s", p.ID)
	}
}

func TestProviderCreate_DuplicateConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	mustCreateProvider(t, env, validProviderInput(userID))

	_, err := env.providers.Create(ctx, validProviderInput(userID))
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestProviderCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateProviderInput)
	}{
		{"nil user", func(in *CreateProviderInput) { in.UserID = uuid.Nil }},
		{"empty company", func(in *CreateProviderInput) { in.CompanyName = "" }},
		{"empty contact person", func(in *CreateProviderInput) { in.ContactPerson = " " }},
		{"empty specialization", func(in *CreateProviderInput) { in.Specialization = nil }},
		{"unknown specialization", func(in *CreateProviderInput) {
			in.Specialization = []model.Specialization{"pilot"}
		}},
		{"negative years", func(in *CreateProviderInput) { in.YearsInBusiness = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validProviderInput(uuid.New())
			tc.mutate(&input)
			if _, err := env.providers.Create(ctx, input); !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestProviderGetByID_NotFoundMeansNotAProvider(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.providers.GetByID(ctx, uuid.New())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	exists, err := env.providers.Exists(ctx, uuid.New())
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatalf("expected exists == false for unknown user")
	}
}

func TestProviderUpdate_MergesFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	mustCreateProvider(t, env, validProviderInput(userID))

	newName := "Smith & Sons"
	years := 12
	updated, err := env.providers.Update(ctx, userID, UpdateProviderInput{
		CompanyName:     &newName,
		YearsInBusiness: &years,
		Specialization: []model.Specialization{
			model.SpecializationWelder,
			model.SpecializationPlumber,
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.CompanyName != newName {
		t.Fatalf("expected company name updated, got %q", updated.CompanyName)
	}
	if updated.YearsInBusiness != 12 {
		t.Fatalf("expected years updated, got %d", updated.YearsInBusiness)
	}
	if len(updated.Specialization) != 2 {
		t.Fatalf("expected 2 specialization tags, got %v", updated.Specialization)
	}
	// Нетронутые поля сохраняются.
	if updated.Phone != validProviderInput(userID).Phone {
		t.Fatalf("expected phone untouched, got %q", updated.Phone)
	}
	if updated.ID != userID || updated.UserID != userID {
		t.Fatalf("id/user_id must be immutable")
	}

	// Обновление видно при следующем чтении.
	got, err := env.providers.GetByID(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CompanyName != newName {
		t.Fatalf("update not visible on read: %q", got.CompanyName)
	}
}

func TestProviderUpdate_NotFound(t *testing.T) {
	env := newTestEnv(t)

	name := "Ghost Inc"
	_, err := env.providers.Update(context.Background(), uuid.New(), UpdateProviderInput{
		CompanyName: &name,
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProviderUpdate_RejectsEmptyValues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	mustCreateProvider(t, env, validProviderInput(userID))

	empty := " "
	if _, err := env.providers.Update(ctx, userID, UpdateProviderInput{Phone: &empty}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for blank phone, got %v", err)
	}
	if _, err := env.providers.Update(ctx, userID, UpdateProviderInput{
		Specialization: []model.Specialization{},
	}); err == nil {
		t.Fatalf("expected error for empty specialization set")
	}
}
