package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/chm-desk/helpdesk/internal/api/dto"
	"github.com/chm-desk/helpdesk/internal/session"
	apperrors "github.com/chm-desk/helpdesk/pkg/util"
)

// SessionHandler manages login and logout. Any non-empty email is
// accepted; there are no stored credentials.
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login POST /auth/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	operator, token, err := h.sessions.Login(req.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token: token,
		Operator: dto.OperatorResponse{
			ID:     operator.ID,
			Name:   operator.Name,
			Email:  operator.Email,
			Role:   string(operator.Role),
			Avatar: operator.Avatar,
		},
	}})
}

// Logout POST /auth/logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.SendStatus(http.StatusNoContent)
}
