package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/chm-desk/helpdesk/internal/api/dto"
	"github.com/chm-desk/helpdesk/internal/notify"
)

// NotificationsHandler exposes the live toast to the view layer.
type NotificationsHandler struct {
	toasts *notify.Toaster
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(toasts *notify.Toaster) *NotificationsHandler {
	return &NotificationsHandler{toasts: toasts}
}

// Current GET /notifications/current.
func (h *NotificationsHandler) Current(c *fiber.Ctx) error {
	toast := h.toasts.Current()
	if toast == nil {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": dto.ToastResponse{
		ID:       toast.ID,
		Message:  toast.Message,
		Severity: string(toast.Severity),
	}})
}

// Dismiss DELETE /notifications/current.
func (h *NotificationsHandler) Dismiss(c *fiber.Ctx) error {
	h.toasts.Hide()
	return c.SendStatus(http.StatusNoContent)
}
