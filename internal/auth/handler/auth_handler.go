package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shivamvijaywargi/auth-service/internal/auth/domain"
	"github.com/shivamvijaywargi/auth-service/internal/auth/dto"
	"github.com/shivamvijaywargi/auth-service/internal/auth/service"
)

const tokenCookieName = "token"

type AuthHandler struct {
	userService      *service.UserService
	tokenService     service.TokenGenerator
	cookieExpiryDays int
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator, cookieExpiryDays int) *AuthHandler {
	return &AuthHandler{
		userService:      userService,
		tokenService:     tokenService,
		cookieExpiryDays: cookieExpiryDays,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "invalid input",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: err.Error(),
		})
	}

	return h.sendToken(c, user, fiber.StatusCreated)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "invalid input",
		})
	}

	user, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: err.Error(),
		})
	}

	return h.sendToken(c, user, fiber.StatusOK)
}

// Logout expires the cookie. The token itself stays valid until its own
// expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// Me returns the account the verified token points at. The account may
// have been deleted since the token was issued.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(UserIDKey).(string)

	user, err := h.userService.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Unauthorized",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.MeResponse{
		Success: true,
		Message: "Welcome",
		User:    toUserOutput(user),
	})
}

// sendToken issues a token for the user, sets it as an http-only cookie,
// and writes the auth response body.
func (h *AuthHandler) sendToken(c *fiber.Ctx, user *domain.User, status int) error {
	token, _, err := h.tokenService.Issue(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "failed to issue token",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(h.cookieExpiryDays) * 24 * time.Hour),
		HTTPOnly: true,
	})

	return c.Status(status).JSON(dto.AuthResponse{
		Success: true,
		User:    toUserOutput(user),
		Token:   token,
	})
}

func toUserOutput(user *domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
