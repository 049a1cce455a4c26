package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/model"
)

type JobRequestRepository interface {
	// Создать заявку.
	Create(ctx context.Context, job *model.JobRequest) error
	// Получить заявку по ID.
	GetByID(ctx context.Context, id int64) (*model.JobRequest, error)
	// Все заявки, новые первыми.
	List(ctx context.Context) ([]model.JobRequest, error)
	// Заявки конкретного пользователя, тот же порядок.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.JobRequest, error)
	// Количество предложений по заявке.
	CountQuotes(ctx context.Context, jobRequestID int64) (int64, error)
}

type GormJobRequestRepository struct {
	db *gorm.DB
}

func NewGormJobRequestRepository(db *gorm.DB) *GormJobRequestRepository {
	return &GormJobRequestRepository{db: db}
}

func (r *GormJobRequestRepository) Create(ctx context.Context, job *model.JobRequest) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *GormJobRequestRepository) GetByID(ctx context.Context, id int64) (*model.JobRequest, error) {
	var j model.JobRequest
	if err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *GormJobRequestRepository) List(ctx context.Context) ([]model.JobRequest, error) {
	var jobs []model.JobRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *GormJobRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.JobRequest, error) {
	var jobs []model.JobRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *GormJobRequestRepository) CountQuotes(ctx context.Context, jobRequestID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Quote{}).
		Where("job_request_id = ?", jobRequestID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
