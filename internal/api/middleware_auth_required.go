package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const contextUserKey = "current_user"

// AuthRequired guards administrative endpoints with a bearer token issued by
// Login.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	rawToken, found := strings.CutPrefix(authorization, "Bearer ")
	if !found || strings.TrimSpace(rawToken) == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	claims, err := handler.parseToken(strings.TrimSpace(rawToken))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.repositories.Users.FindByID(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}
