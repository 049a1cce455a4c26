package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/model"
)

type QuoteRepository interface {
	// Создать предложение.
	Create(ctx context.Context, quote *model.Quote) error
	// Получить предложение по ID.
	GetByID(ctx context.Context, id int64) (*model.Quote, error)
	// Предложения по заявке, новые первыми, с профилем провайдера.
	ListByJobRequest(ctx context.Context, jobRequestID int64) ([]model.Quote, error)
	// Предложения провайдера, новые первыми, с родительской заявкой.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Quote, error)
	// Обновить статус предложения.
	UpdateStatus(ctx context.Context, id int64, status model.QuoteStatus) error
}

type GormQuoteRepository struct {
	db *gorm.DB
}

func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

func (r *GormQuoteRepository) Create(ctx context.Context, quote *model.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *GormQuoteRepository) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	var q model.Quote
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *GormQuoteRepository) ListByJobRequest(ctx context.Context, jobRequestID int64) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.WithContext(ctx).
		Where("job_request_id = ?", jobRequestID).
		Preload("Provider").
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *GormQuoteRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Preload("JobRequest").
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *GormQuoteRepository) UpdateStatus(ctx context.Context, id int64, status model.QuoteStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Quote{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}
