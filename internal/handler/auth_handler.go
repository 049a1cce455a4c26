package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Leganyst/labor-platform/internal/middleware"
	"github.com/Leganyst/labor-platform/internal/service"
)

type AuthHandler struct {
	identity *service.IdentityService
	authMW   fiber.Handler
}

func NewAuthHandler(identity *service.IdentityService, authMW fiber.Handler) *AuthHandler {
	return &AuthHandler{identity: identity, authMW: authMW}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Get("/auth/me", h.authMW, h.Me)
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	user, err := h.identity.Register(c.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "registered", user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	token, user, err := h.identity.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		// Неверные учётные данные не раскрываем точнее.
		return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	}
	return respond(c, fiber.StatusOK, "signed in", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	identity, err := h.identity.CurrentUser(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{
		"user":        identity.User,
		"is_provider": identity.IsProvider,
	})
}
