package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/model"
)

type ProviderRepository interface {
	// Создать профиль провайдера.
	Create(ctx context.Context, provider *model.Provider) error
	// Получить провайдера по ID (== user ID владельца).
	GetByID(ctx context.Context, id uuid.UUID) (*model.Provider, error)
	// Существует ли профиль для данного пользователя.
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
	// Частичное обновление полей профиля.
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) error
	// Все провайдеры. Порядок не гарантируется.
	List(ctx context.Context) ([]model.Provider, error)
}

type GormProviderRepository struct {
	db *gorm.DB
}

func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

func (r *GormProviderRepository) Create(ctx context.Context, provider *model.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *GormProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	var p model.Provider
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProviderRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Provider{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProviderRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Provider{}).
		Where("id = ?", id).
		Updates(patch).
		Error
}

func (r *GormProviderRepository) List(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	if err := r.db.WithContext(ctx).Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}
