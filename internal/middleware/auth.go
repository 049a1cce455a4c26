package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Leganyst/labor-platform/internal/auth"
)

// Ключ user ID в c.Locals.
const UserIDKey = "userID"

// Authenticate проверяет Bearer-токен и кладёт user ID в locals.
func Authenticate(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("Authorization")
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(tokenString, prefix) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token format")
		}

		claims, err := tokens.Parse(tokenString[len(prefix):])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// CurrentUserID достаёт user ID, положенный Authenticate.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(UserIDKey).(uuid.UUID)
	return id, ok
}
