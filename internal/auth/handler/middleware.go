package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/shivamvijaywargi/auth-service/internal/auth/dto"
)

// UserIDKey is the request-local key the auth gate stores the verified
// user id under.
const UserIDKey = "userID"

// RequireAuth admits requests carrying a valid token in the `token`
// cookie or the Authorization header. The cookie takes precedence.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	token := c.Cookies(tokenCookieName)
	if token == "" {
		token = bearerToken(c.Get(fiber.HeaderAuthorization))
	}

	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
			Message: "Unauthorized",
		})
	}

	userID, err := h.tokenService.Verify(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
			Message: "Unauthorized",
		})
	}

	c.Locals(UserIDKey, userID)

	return c.Next()
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
