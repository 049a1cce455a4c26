package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/middleware"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/service"
)

type ProviderHandler struct {
	providers *service.ProviderService
	authMW    fiber.Handler
}

func NewProviderHandler(providers *service.ProviderService, authMW fiber.Handler) *ProviderHandler {
	return &ProviderHandler{providers: providers, authMW: authMW}
}

func (h *ProviderHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/providers", h.authMW, h.Create)
	app.Get("/providers", h.List)
	app.Get("/providers/:id", h.Get)
	app.Patch("/providers/:id", h.authMW, h.Update)
}

type createProviderRequest struct {
	CompanyName     string                 `json:"company_name"`
	ContactPerson   string                 `json:"contact_person"`
	Phone           string                 `json:"phone"`
	Email           string                 `json:"email"`
	Address         string                 `json:"address"`
	Description     string                 `json:"description"`
	Specialization  []model.Specialization `json:"specialization"`
	YearsInBusiness int                    `json:"years_in_business"`
}

func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	var req createProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	provider, err := h.providers.Create(c.Context(), service.CreateProviderInput{
		UserID:          userID,
		CompanyName:     req.CompanyName,
		ContactPerson:   req.ContactPerson,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		Description:     req.Description,
		Specialization:  req.Specialization,
		YearsInBusiness: req.YearsInBusiness,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "provider profile created", provider)
}

func (h *ProviderHandler) List(c *fiber.Ctx) error {
	providers, err := h.providers.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", providers)
}

func (h *ProviderHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	provider, err := h.providers.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", provider)
}

type updateProviderRequest struct {
	CompanyName     *string                `json:"company_name"`
	ContactPerson   *string                `json:"contact_person"`
	Phone           *string                `json:"phone"`
	Email           *string                `json:"email"`
	Address         *string                `json:"address"`
	Description     *string                `json:"description"`
	Specialization  []model.Specialization `json:"specialization"`
	YearsInBusiness *int                   `json:"years_in_business"`
}

// Update обновляет профиль. Разрешено только владельцу.
func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if id != userID {
		return fiber.NewError(fiber.StatusForbidden, "not the profile owner")
	}

	var req updateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	provider, err := h.providers.Update(c.Context(), id, service.UpdateProviderInput{
		CompanyName:     req.CompanyName,
		ContactPerson:   req.ContactPerson,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		Description:     req.Description,
		Specialization:  req.Specialization,
		YearsInBusiness: req.YearsInBusiness,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "provider profile updated", provider)
}
