package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/auth"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/repository"
)

// Тестовая БД — файл SQLite во временной директории: детерминированное
// хранилище за тем же интерфейсом репозиториев, что и Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

type testEnv struct {
	db        *gorm.DB
	jobs      *JobRequestService
	providers *ProviderService
	quotes    *QuoteService
	identity  *IdentityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	jobRepo := repository.NewGormJobRequestRepository(db)
	providerRepo := repository.NewGormProviderRepository(db)
	quoteRepo := repository.NewGormQuoteRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	providers := NewProviderService(providerRepo)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return &testEnv{
		db:        db,
		jobs:      NewJobRequestService(jobRepo),
		providers: providers,
		quotes:    NewQuoteService(quoteRepo, jobRepo, providerRepo),
		identity:  NewIdentityService(userRepo, providers, tokens),
	}
}

// dateIn — календарная дата через days дней от сегодня.
func dateIn(days int) datatypes.Date {
	return datatypes.Date(time.Now().UTC().AddDate(0, 0, days))
}

func validJobInput(userID uuid.UUID) CreateJobRequestInput {
	return CreateJobRequestInput{
		Title:       "Need Welders for Factory Maintenance",
		Location:    "Mumbai, Maharashtra",
		JobType:     string(model.JobTypeContract),
		Duration:    "3 months",
		Budget:      "₹25,000 per worker",
		Workers:     5,
		Description: "Maintenance work in a manufacturing plant.",
		ContactInfo: "contact@factory.com",
		UserID:      userID,
	}
}

func validProviderInput(userID uuid.UUID) CreateProviderInput {
	return CreateProviderInput{
		UserID:          userID,
		CompanyName:     "Smith Industries",
		ContactPerson:   "Jane Smith",
		Phone:           "9876543211",
		Email:           "provider@example.com",
		Address:         "Industrial Area, Sector 5, Mumbai",
		Description:     "Industrial labor provider.",
		Specialization:  []model.Specialization{model.SpecializationWelder},
		YearsInBusiness: 8,
	}
}

func mustCreateJob(t *testing.T, env *testEnv, input CreateJobRequestInput) *model.JobRequest {
	t.Helper()
	job, err := env.jobs.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create job request: %v", err)
	}
	return job
}

func mustCreateProvider(t *testing.T, env *testEnv, input CreateProviderInput) *model.Provider {
	t.Helper()
	p, err := env.providers.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create provider: %v", err)
	}
	return p
}
