package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/apperr"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/repository"
	"github.com/Leganyst/labor-platform/internal/timeutil"
)

// CreateJobRequestInput — входные данные создания заявки.
// ID и CreatedAt назначаются хранилищем.
type CreateJobRequestInput struct {
	Title    string
	Location string
	JobType  string

	// Простая форма расписания.
	Duration string
	Budget   string
	Deadline *datatypes.Date

	// Детальная форма расписания.
	StartDate    *datatypes.Date
	StartTime    string
	HoursPerDay  int
	NumberOfDays int

	Workers    int
	Categories []model.JobCategory

	Description string
	ContactInfo string
	UserID      uuid.UUID
}

// JobRequestView — заявка, декорированная для списков: количество
// предложений и строка давности публикации.
type JobRequestView struct {
	model.JobRequest
	Quotes     int64  `json:"quotes"`
	PostedDate string `json:"postedDate"`
}

// JobRequestService — операции над заявками на рабочую силу.
type JobRequestService struct {
	jobs repository.JobRequestRepository

	// Часы инжектируются, чтобы декорация PostedDate тестировалась
	// детерминированно.
	now func() time.Time
}

func NewJobRequestService(jobs repository.JobRequestRepository) *JobRequestService {
	return &JobRequestService{
		jobs: jobs,
		now:  time.Now,
	}
}

// Create валидирует входные данные и сохраняет новую заявку.
//
// Политика по категориям: при непустом Categories поле Workers всегда
// пересчитывается как сумма Count по категориям, а пустой Title
// синтезируется как "2 welder, 1 fitter". Рассогласованная пара
// workers/categories в хранилище не попадает никогда.
func (s *JobRequestService) Create(ctx context.Context, input CreateJobRequestInput) (*model.JobRequest, error) {
	if err := s.validateCreate(&input); err != nil {
		return nil, err
	}

	job := &model.JobRequest{
		Title:        input.Title,
		Location:     input.Location,
		JobType:      model.JobType(input.JobType),
		Duration:     input.Duration,
		Budget:       input.Budget,
		Deadline:     input.Deadline,
		StartDate:    input.StartDate,
		StartTime:    input.StartTime,
		HoursPerDay:  input.HoursPerDay,
		NumberOfDays: input.NumberOfDays,
		Workers:      input.Workers,
		Categories:   datatypes.NewJSONSlice(input.Categories),
		Description:  input.Description,
		ContactInfo:  input.ContactInfo,
		UserID:       input.UserID,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperr.Storage("create job request", err)
	}
	return job, nil
}

// List возвращает все заявки, новые первыми, с декорацией.
func (s *JobRequestService) List(ctx context.Context) ([]JobRequestView, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, apperr.Storage("list job requests", err)
	}
	return s.decorate(ctx, jobs)
}

// ListByUser — заявки одного пользователя, тот же порядок и декорация.
func (s *JobRequestService) ListByUser(ctx context.Context, userID uuid.UUID) ([]JobRequestView, error) {
	jobs, err := s.jobs.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Storage("list job requests by user", err)
	}
	return s.decorate(ctx, jobs)
}

// GetByID возвращает заявку или apperr.ErrNotFound.
func (s *JobRequestService) GetByID(ctx context.Context, id int64) (*model.JobRequest, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get job request", err)
	}
	return job, nil
}

func (s *JobRequestService) decorate(ctx context.Context, jobs []model.JobRequest) ([]JobRequestView, error) {
	now := s.now()
	views := make([]JobRequestView, 0, len(jobs))
	for _, job := range jobs {
		count, err := s.jobs.CountQuotes(ctx, job.ID)
		if err != nil {
			return nil, apperr.Storage("count quotes", err)
		}
		views = append(views, JobRequestView{
			JobRequest: job,
			Quotes:     count,
			PostedDate: timeutil.PostedLabel(now, job.CreatedAt),
		})
	}
	return views, nil
}

func (s *JobRequestService) validateCreate(input *CreateJobRequestInput) error {
	if strings.TrimSpace(input.Location) == "" {
		return apperr.Validation("location", "required")
	}
	if !model.KnownJobTypes[model.JobType(input.JobType)] {
		return apperr.Validation("job_type", "must be one of full-time, part-time, contract, one-time")
	}
	if strings.TrimSpace(input.Description) == "" {
		return apperr.Validation("description", "required")
	}
	if strings.TrimSpace(input.ContactInfo) == "" {
		return apperr.Validation("contact_info", "required")
	}
	if input.UserID == uuid.Nil {
		return apperr.Validation("user_id", "required")
	}

	if err := s.validateSchedule(input); err != nil {
		return err
	}

	if len(input.Categories) > 0 {
		return s.applyCategories(input)
	}

	if input.Workers < 1 {
		return apperr.Validation("workers", "must be at least 1")
	}
	if strings.TrimSpace(input.Title) == "" {
		return apperr.Validation("title", "required")
	}
	return nil
}

// validateSchedule требует ровно одну из двух форм расписания.
func (s *JobRequestService) validateSchedule(input *CreateJobRequestInput) error {
	simple := strings.TrimSpace(input.Duration) != ""
	detailed := input.StartDate != nil || input.StartTime != "" ||
		input.HoursPerDay != 0 || input.NumberOfDays != 0

	switch {
	case simple && detailed:
		return apperr.Validation("schedule", "duration and start_date forms are mutually exclusive")
	case simple:
		return nil
	case !detailed:
		return apperr.Validation("schedule", "either duration or start_date form is required")
	}

	if input.StartDate == nil {
		return apperr.Validation("start_date", "required")
	}
	startDate := time.Time(*input.StartDate)
	today := s.now().Truncate(24 * time.Hour)
	if startDate.Before(today) {
		return apperr.Validation("start_date", "must not be in the past")
	}
	if !validStartTime(input.StartTime) {
		return apperr.Validation("start_time", "must be an hour mark between 00:00 and 23:00")
	}
	if input.HoursPerDay < 1 || input.HoursPerDay > 12 {
		return apperr.Validation("hours_per_day", "must be between 1 and 12")
	}
	if input.NumberOfDays < 1 {
		return apperr.Validation("number_of_days", "must be a positive integer")
	}
	return nil
}

// applyCategories пересчитывает Workers и при необходимости синтезирует
// Title из списка категорий.
func (s *JobRequestService) applyCategories(input *CreateJobRequestInput) error {
	total := 0
	parts := make([]string, 0, len(input.Categories))
	for _, c := range input.Categories {
		if !model.KnownSpecializations[c.Category] {
			return apperr.Validation("categories", fmt.Sprintf("unknown category %q", c.Category))
		}
		if c.Count < 1 {
			return apperr.Validation("categories", "count must be a positive integer")
		}
		total += c.Count
		parts = append(parts, fmt.Sprintf("%d %s", c.Count, c.Category))
	}

	input.Workers = total
	if strings.TrimSpace(input.Title) == "" {
		input.Title = strings.Join(parts, ", ")
	}
	return nil
}

func validStartTime(v string) bool {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return false
	}
	return t.Minute() == 0
}
