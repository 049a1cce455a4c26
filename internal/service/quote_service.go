package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/apperr"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/repository"
)

// SubmitQuoteInput — входные данные подачи предложения. Статус
// вызывающим не передаётся: новое предложение всегда pending.
type SubmitQuoteInput struct {
	JobRequestID int64
	ProviderID   uuid.UUID
	Amount       string
	Timeline     string
	Comments     string
}

// QuoteService — операции над предложениями провайдеров.
type QuoteService struct {
	quotes    repository.QuoteRepository
	jobs      repository.JobRequestRepository
	providers repository.ProviderRepository
}

func NewQuoteService(
	quotes repository.QuoteRepository,
	jobs repository.JobRequestRepository,
	providers repository.ProviderRepository,
) *QuoteService {
	return &QuoteService{
		quotes:    quotes,
		jobs:      jobs,
		providers: providers,
	}
}

// Submit сохраняет новое предложение. Заявка и провайдер должны
// существовать: подача против несуществующей заявки или от
// незарегистрированного провайдера — логическая ошибка, которую сервис
// ловит до записи.
func (s *QuoteService) Submit(ctx context.Context, input SubmitQuoteInput) (*model.Quote, error) {
	if strings.TrimSpace(input.Amount) == "" {
		return nil, apperr.Validation("amount", "required")
	}
	if strings.TrimSpace(input.Timeline) == "" {
		return nil, apperr.Validation("timeline", "required")
	}
	if strings.TrimSpace(input.Comments) == "" {
		return nil, apperr.Validation("comments", "required")
	}

	if _, err := s.jobs.GetByID(ctx, input.JobRequestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get job request", err)
	}
	if _, err := s.providers.GetByID(ctx, input.ProviderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get provider", err)
	}

	quote := &model.Quote{
		JobRequestID: input.JobRequestID,
		ProviderID:   input.ProviderID,
		Amount:       input.Amount,
		Timeline:     input.Timeline,
		Comments:     input.Comments,
		Status:       model.QuoteStatusPending,
	}

	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, apperr.Storage("create quote", err)
	}
	return quote, nil
}

// GetByID возвращает предложение или apperr.ErrNotFound.
func (s *QuoteService) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	q, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get quote", err)
	}
	return q, nil
}

// ListByJobRequest — предложения по заявке, новые первыми, с профилем
// подавшего провайдера в поле Provider.
func (s *QuoteService) ListByJobRequest(ctx context.Context, jobRequestID int64) ([]model.Quote, error) {
	quotes, err := s.quotes.ListByJobRequest(ctx, jobRequestID)
	if err != nil {
		return nil, apperr.Storage("list quotes by job request", err)
	}
	return quotes, nil
}

// ListByProvider — предложения провайдера, новые первыми, с родительской
// заявкой в поле JobRequest (для отображения минимум нужен её title).
func (s *QuoteService) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Quote, error) {
	quotes, err := s.quotes.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, apperr.Storage("list quotes by provider", err)
	}
	return quotes, nil
}

// UpdateStatus переводит предложение в accepted или rejected.
//
// pending как целевой статус — ошибка вызывающего. accepted и rejected
// терминальны: уже решённое предложение можно повторно перевести только
// в тот же статус (идемпотентность по значению), попытка сменить одно
// терминальное состояние на другое возвращает apperr.ErrConflict.
func (s *QuoteService) UpdateStatus(ctx context.Context, id int64, status model.QuoteStatus) (*model.Quote, error) {
	if status != model.QuoteStatusAccepted && status != model.QuoteStatusRejected {
		return nil, apperr.Validation("status", "must be accepted or rejected")
	}

	quote, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if quote.Status == status {
		return quote, nil
	}
	if quote.Status != model.QuoteStatusPending {
		return nil, apperr.ErrConflict
	}

	if err := s.quotes.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperr.Storage("update quote status", err)
	}
	quote.Status = status
	return quote, nil
}
