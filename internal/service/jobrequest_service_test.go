package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/apperr"
	"github.com/Leganyst/labor-platform/internal/model"
)

//
// Создание и round-trip.
//

func TestJobRequestCreate_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := validJobInput(uuid.New())
	created := mustCreateJob(t, env, input)

	if created.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	got, err := env.jobs.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Title != input.Title ||
		got.Location != input.Location ||
		string(got.JobType) != input.JobType ||
		got.Duration != input.Duration ||
		got.Budget != input.Budget ||
		got.Workers != input.Workers ||
		got.Description != input.Description ||
		got.ContactInfo != input.ContactInfo ||
		got.UserID != input.UserID {
		t.Fatalf("stored record differs from input: %+v", got)
	}
}

func TestJobRequestCreate_MissingRequiredFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	cases := []struct {
		name   string
		mutate func(*CreateJobRequestInput)
	}{
		{"empty location", func(in *CreateJobRequestInput) { in.Location = " " }},
		{"bad job type", func(in *CreateJobRequestInput) { in.JobType = "gig" }},
		{"empty description", func(in *CreateJobRequestInput) { in.Description = "" }},
		{"empty contact", func(in *CreateJobRequestInput) { in.ContactInfo = "" }},
		{"nil user", func(in *CreateJobRequestInput) { in.UserID = uuid.Nil }},
		{"zero workers", func(in *CreateJobRequestInput) { in.Workers = 0 }},
		{"empty title", func(in *CreateJobRequestInput) { in.Title = "" }},
		{"no schedule", func(in *CreateJobRequestInput) { in.Duration = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validJobInput(userID)
			tc.mutate(&input)

			_, err := env.jobs.Create(ctx, input)
			if !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

//
// Инвариант categories/workers: рассогласованная пара не сохраняется.
//

func TestJobRequestCreate_RecomputesWorkersFromCategories(t *testing.T) {
	env := newTestEnv(t)

	input := validJobInput(uuid.New())
	input.Workers = 99 // заведомо не сумма
	input.Categories = []model.JobCategory{
		{Category: model.SpecializationWelder, Count: 2},
		{Category: model.SpecializationFitter, Count: 1},
	}

	job := mustCreateJob(t, env, input)
	if job.Workers != 3 {
		t.Fatalf("expected workers recomputed to 3, got %d", job.Workers)
	}
}

func TestJobRequestCreate_SynthesizesTitleFromCategories(t *testing.T) {
	env := newTestEnv(t)

	input := validJobInput(uuid.New())
	input.Title = ""
	input.Workers = 0
	input.Categories = []model.JobCategory{
		{Category: model.SpecializationWelder, Count: 2},
		{Category: model.SpecializationFitter, Count: 1},
	}

	job := mustCreateJob(t, env, input)
	if job.Title != "2 welder, 1 fitter" {
		t.Fatalf("expected synthesized title %q, got %q", "2 welder, 1 fitter", job.Title)
	}
}

func TestJobRequestCreate_SuppliedTitleKept(t *testing.T) {
	env := newTestEnv(t)

	input := validJobInput(uuid.New())
	input.Categories = []model.JobCategory{
		{Category: model.SpecializationPacker, Count: 4},
	}

	job := mustCreateJob(t, env, input)
	if job.Title != input.Title {
		t.Fatalf("expected supplied title kept, got %q", job.Title)
	}
	if job.Workers != 4 {
		t.Fatalf("expected workers 4, got %d", job.Workers)
	}
}

func TestJobRequestCreate_RejectsBadCategories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := validJobInput(uuid.New())
	input.Categories = []model.JobCategory{
		{Category: "astronaut", Count: 1},
	}
	if _, err := env.jobs.Create(ctx, input); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for unknown category, got %v", err)
	}

	input = validJobInput(uuid.New())
	input.Categories = []model.JobCategory{
		{Category: model.SpecializationWelder, Count: 0},
	}
	if _, err := env.jobs.Create(ctx, input); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for zero count, got %v", err)
	}
}

//
// Формы расписания.
//

func TestJobRequestCreate_DetailedSchedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tomorrow := dateIn(1)
	input := validJobInput(uuid.New())
	input.Duration = ""
	input.Budget = ""
	input.StartDate = &tomorrow
	input.StartTime = "08:00"
	input.HoursPerDay = 8
	input.NumberOfDays = 10

	if _, err := env.jobs.Create(ctx, input); err != nil {
		t.Fatalf("expected detailed schedule accepted, got %v", err)
	}
}

func TestJobRequestCreate_DetailedScheduleRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	base := func() CreateJobRequestInput {
		tomorrow := dateIn(1)
		in := validJobInput(uuid.New())
		in.Duration = ""
		in.Budget = ""
		in.StartDate = &tomorrow
		in.StartTime = "08:00"
		in.HoursPerDay = 8
		in.NumberOfDays = 10
		return in
	}

	cases := []struct {
		name   string
		mutate func(*CreateJobRequestInput)
	}{
		{"past start date", func(in *CreateJobRequestInput) { d := dateIn(-2); in.StartDate = &d }},
		{"minutes in start time", func(in *CreateJobRequestInput) { in.StartTime = "08:30" }},
		{"garbage start time", func(in *CreateJobRequestInput) { in.StartTime = "morning" }},
		{"too many hours", func(in *CreateJobRequestInput) { in.HoursPerDay = 13 }},
		{"zero days", func(in *CreateJobRequestInput) { in.NumberOfDays = 0 }},
		{"both forms", func(in *CreateJobRequestInput) { in.Duration = "3 months" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base()
			tc.mutate(&input)
			if _, err := env.jobs.Create(ctx, input); !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

//
// Сортировка и декорация списков.
//

func TestJobRequestList_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	var ids []int64
	for i := 0; i < 3; i++ {
		job := mustCreateJob(t, env, validJobInput(userID))
		ids = append(ids, job.ID)
		time.Sleep(5 * time.Millisecond) // разные created_at
	}

	views, err := env.jobs.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 records, got %d", len(views))
	}
	for i := range views {
		if views[i].ID != ids[len(ids)-1-i] {
			t.Fatalf("expected newest first, got order %v", viewIDs(views))
		}
	}
	for i := 1; i < len(views); i++ {
		if views[i].CreatedAt.After(views[i-1].CreatedAt) {
			t.Fatalf("created_at not descending at %d", i)
		}
	}
}

func TestJobRequestList_Decoration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	supplier, err := env.identity.Register(ctx, RegisterInput{
		Email:    "provider@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	provider := mustCreateProvider(t, env, validProviderInput(supplier.ID))

	job := mustCreateJob(t, env, validJobInput(uuid.New()))
	for i := 0; i < 2; i++ {
		if _, err := env.quotes.Submit(ctx, SubmitQuoteInput{
			JobRequestID: job.ID,
			ProviderID:   provider.ID,
			Amount:       "₹20,000 per worker",
			Timeline:     "1 month",
			Comments:     "Ready to start.",
		}); err != nil {
			t.Fatalf("submit quote: %v", err)
		}
	}

	env.jobs.now = func() time.Time { return job.CreatedAt.Add(72 * time.Hour) }

	views, err := env.jobs.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 record, got %d", len(views))
	}
	if views[0].Quotes != 2 {
		t.Fatalf("expected quote count 2, got %d", views[0].Quotes)
	}
	if views[0].PostedDate != "Posted 3 days ago" {
		t.Fatalf("expected %q, got %q", "Posted 3 days ago", views[0].PostedDate)
	}
}

func TestJobRequestListByUser_FiltersOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	mustCreateJob(t, env, validJobInput(alice))
	mustCreateJob(t, env, validJobInput(bob))
	mustCreateJob(t, env, validJobInput(alice))

	views, err := env.jobs.ListByUser(ctx, alice)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 records, got %d", len(views))
	}
	for _, v := range views {
		if v.UserID != alice {
			t.Fatalf("foreign record in user listing: %+v", v.JobRequest)
		}
	}
}

func TestJobRequestGetByID_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.jobs.GetByID(context.Background(), 12345)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func viewIDs(views []JobRequestView) []int64 {
	ids := make([]int64, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}
