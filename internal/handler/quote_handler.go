package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/middleware"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/service"
)

type QuoteHandler struct {
	quotes    *service.QuoteService
	jobs      *service.JobRequestService
	providers *service.ProviderService
	authMW    fiber.Handler
}

func NewQuoteHandler(
	quotes *service.QuoteService,
	jobs *service.JobRequestService,
	providers *service.ProviderService,
	authMW fiber.Handler,
) *QuoteHandler {
	return &QuoteHandler{
		quotes:    quotes,
		jobs:      jobs,
		providers: providers,
		authMW:    authMW,
	}
}

func (h *QuoteHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/quotes", h.authMW, h.Submit)
	app.Get("/job-requests/:id/quotes", h.ListByJobRequest)
	app.Get("/providers/:id/quotes", h.ListByProvider)
	app.Patch("/quotes/:id/status", h.authMW, h.UpdateStatus)
}

type submitQuoteRequest struct {
	JobRequestID int64  `json:"job_request_id"`
	Amount       string `json:"amount"`
	Timeline     string `json:"timeline"`
	Comments     string `json:"comments"`
}

// Submit подаёт предложение от имени текущего пользователя. Подать
// может только зарегистрированный провайдер.
func (h *QuoteHandler) Submit(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	isProvider, err := h.providers.Exists(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	if !isProvider {
		return fiber.NewError(fiber.StatusForbidden, "not a provider")
	}

	var req submitQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	quote, err := h.quotes.Submit(c.Context(), service.SubmitQuoteInput{
		JobRequestID: req.JobRequestID,
		ProviderID:   userID,
		Amount:       req.Amount,
		Timeline:     req.Timeline,
		Comments:     req.Comments,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "quote submitted", quote)
}

func (h *QuoteHandler) ListByJobRequest(c *fiber.Ctx) error {
	jobRequestID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	quotes, err := h.quotes.ListByJobRequest(c.Context(), jobRequestID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", quotes)
}

func (h *QuoteHandler) ListByProvider(c *fiber.Ctx) error {
	providerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	quotes, err := h.quotes.ListByProvider(c.Context(), providerID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", quotes)
}

type updateQuoteStatusRequest struct {
	Status model.QuoteStatus `json:"status"`
}

// UpdateStatus принимает или отклоняет предложение. Разрешено только
// владельцу заявки, по которой оно подано.
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	quoteID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	quote, err := h.quotes.GetByID(c.Context(), quoteID)
	if err != nil {
		return respondError(c, err)
	}
	job, err := h.jobs.GetByID(c.Context(), quote.JobRequestID)
	if err != nil {
		return respondError(c, err)
	}
	if job.UserID != userID {
		return fiber.NewError(fiber.StatusForbidden, "not the job request owner")
	}

	var req updateQuoteStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	updated, err := h.quotes.UpdateStatus(c.Context(), quoteID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "quote status updated", updated)
}
