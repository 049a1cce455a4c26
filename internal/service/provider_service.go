package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/apperr"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/repository"
)

// CreateProviderInput — входные данные регистрации провайдера.
type CreateProviderInput struct {
	UserID          uuid.UUID
	CompanyName     string
	ContactPerson   string
	Phone           string
	Email           string
	Address         string
	Description     string
	Specialization  []model.Specialization
	YearsInBusiness int
}

// UpdateProviderInput — частичное обновление профиля. nil-поле не
// трогается. ID и UserID менять нельзя, поэтому их здесь нет.
type UpdateProviderInput struct {
	CompanyName     *string
	ContactPerson   *string
	Phone           *string
	Email           *string
	Address         *string
	Description     *string
	Specialization  []model.Specialization
	YearsInBusiness *int
}

// ProviderService — операции над профилями провайдеров.
type ProviderService struct {
	providers repository.ProviderRepository
}

func NewProviderService(providers repository.ProviderRepository) *ProviderService {
	return &ProviderService{providers: providers}
}

// Create регистрирует профиль провайдера. Для пользователя, у которого
// профиль уже есть, возвращает apperr.ErrConflict — молчаливой
// перезаписи нет, существующий профиль обновляется через Update.
func (s *ProviderService) Create(ctx context.Context, input CreateProviderInput) (*model.Provider, error) {
	if err := validateProviderInput(input); err != nil {
		return nil, err
	}

	exists, err := s.providers.ExistsForUser(ctx, input.UserID)
	if err != nil {
		return nil, apperr.Storage("check provider exists", err)
	}
	if exists {
		return nil, apperr.ErrConflict
	}

	provider := &model.Provider{
		// Профиль ключуется идентичностью владельца.
		ID:              input.UserID,
		UserID:          input.UserID,
		CompanyName:     input.CompanyName,
		ContactPerson:   input.ContactPerson,
		Phone:           input.Phone,
		Email:           input.Email,
		Address:         input.Address,
		Description:     input.Description,
		Specialization:  datatypes.NewJSONSlice(input.Specialization),
		YearsInBusiness: input.YearsInBusiness,
	}

	if err := s.providers.Create(ctx, provider); err != nil {
		return nil, apperr.Storage("create provider", err)
	}
	return provider, nil
}

// GetByID возвращает провайдера или apperr.ErrNotFound. Вызывающие
// используют NotFound как "пользователь не провайдер", а не как сбой.
func (s *ProviderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get provider", err)
	}
	return p, nil
}

// Exists — производный запрос "является ли пользователь провайдером".
func (s *ProviderService) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	exists, err := s.providers.ExistsForUser(ctx, userID)
	if err != nil {
		return false, apperr.Storage("check provider exists", err)
	}
	return exists, nil
}

// Update вливает непустые поля input в существующий профиль.
func (s *ProviderService) Update(ctx context.Context, id uuid.UUID, input UpdateProviderInput) (*model.Provider, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	patch := map[string]any{}
	setString := func(column string, v *string) error {
		if v == nil {
			return nil
		}
		if strings.TrimSpace(*v) == "" {
			return apperr.Validation(column, "must not be empty")
		}
		patch[column] = *v
		return nil
	}

	fields := []struct {
		column string
		value  *string
	}{
		{"company_name", input.CompanyName},
		{"contact_person", input.ContactPerson},
		{"phone", input.Phone},
		{"email", input.Email},
		{"address", input.Address},
		{"description", input.Description},
	}
	for _, f := range fields {
		if err := setString(f.column, f.value); err != nil {
			return nil, err
		}
	}

	if input.Specialization != nil {
		if err := validateSpecialization(input.Specialization); err != nil {
			return nil, err
		}
		patch["specialization"] = datatypes.NewJSONSlice(input.Specialization)
	}
	if input.YearsInBusiness != nil {
		if *input.YearsInBusiness < 0 {
			return nil, apperr.Validation("years_in_business", "must not be negative")
		}
		patch["years_in_business"] = *input.YearsInBusiness
	}

	if len(patch) > 0 {
		if err := s.providers.Update(ctx, id, patch); err != nil {
			return nil, apperr.Storage("update provider", err)
		}
	}
	return s.GetByID(ctx, id)
}

// List — все провайдеры, порядок не гарантируется.
func (s *ProviderService) List(ctx context.Context) ([]model.Provider, error) {
	providers, err := s.providers.List(ctx)
	if err != nil {
		return nil, apperr.Storage("list providers", err)
	}
	return providers, nil
}

func validateProviderInput(input CreateProviderInput) error {
	if input.UserID == uuid.Nil {
		return apperr.Validation("user_id", "required")
	}

	required := []struct {
		field string
		value string
	}{
		{"company_name", input.CompanyName},
		{"contact_person", input.ContactPerson},
		{"phone", input.Phone},
		{"email", input.Email},
		{"address", input.Address},
		{"description", input.Description},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperr.Validation(f.field, "required")
		}
	}

	if err := validateSpecialization(input.Specialization); err != nil {
		return err
	}
	if input.YearsInBusiness < 0 {
		return apperr.Validation("years_in_business", "must not be negative")
	}
	return nil
}

func validateSpecialization(tags []model.Specialization) error {
	if len(tags) == 0 {
		return apperr.Validation("specialization", "at least one tag is required")
	}
	for _, tag := range tags {
		if !model.KnownSpecializations[tag] {
			return apperr.Validation("specialization", "unknown tag "+string(tag))
		}
	}
	return nil
}
