package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chm-desk/helpdesk/internal/store"
	"github.com/chm-desk/helpdesk/internal/views"
)

// AnalyticsHandler serves headline counts derived from the collection on
// every request; nothing is persisted.
type AnalyticsHandler struct {
	store *store.Store
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(ticketStore *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: ticketStore}
}

// Summary GET /analytics/summary.
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": views.Summarize(h.store.List())})
}
