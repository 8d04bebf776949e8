package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chm-desk/helpdesk/internal/api/dto"
	"github.com/chm-desk/helpdesk/internal/domain"
	"github.com/chm-desk/helpdesk/internal/sla"
	"github.com/chm-desk/helpdesk/internal/store"
	"github.com/chm-desk/helpdesk/internal/views"
	apperrors "github.com/chm-desk/helpdesk/pkg/util"
)

// TicketsHandler manages ticket endpoints. Input validation lives here at
// the boundary; the store assumes valid input.
type TicketsHandler struct {
	store *store.Store
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketStore *store.Store) *TicketsHandler {
	return &TicketsHandler{store: ticketStore}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	missing := map[string]any{}
	for field, value := range map[string]string{
		"subject":         req.Subject,
		"description":     req.Description,
		"requester_name":  req.RequesterName,
		"requester_email": req.RequesterEmail,
	} {
		if strings.TrimSpace(value) == "" {
			missing[field] = "required"
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields", missing)
	}

	deadline, err := time.Parse(time.RFC3339, req.SLADeadline)
	if err != nil {
		return apperrors.NewValidationError("sla_deadline must be RFC3339", nil)
	}

	priority := domain.Priority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityMedium
	} else if !priority.Valid() {
		return apperrors.NewValidationError("unknown priority", map[string]any{"priority": req.Priority})
	}

	ticket, err := h.store.Create(store.CreateInput{
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    priority,
		SLADeadline: deadline,
		Requester: domain.Requester{
			Name:     strings.TrimSpace(req.RequesterName),
			Email:    strings.TrimSpace(req.RequesterEmail),
			WhatsApp: strings.TrimSpace(req.RequesterWhatsApp),
		},
		CCEmails: req.CCEmails,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketDetail(&ticket, time.Now())})
}

// ListTickets GET /tickets?status=&q=.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	statusFilter := c.Query("status", views.StatusFilterAll)
	query := c.Query("q")

	now := time.Now()
	tickets := views.Filter(h.store.List(), statusFilter, query)
	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketSummary(&tickets[i], now))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(&ticket, time.Now())})
}

// UpdateTicket PATCH /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := store.UpdateInput{
		Subject:     req.Subject,
		Description: req.Description,
		CCEmails:    req.CCEmails,
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		if !priority.Valid() {
			return apperrors.NewValidationError("unknown priority", map[string]any{"priority": *req.Priority})
		}
		input.Priority = &priority
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !status.Valid() {
			return apperrors.NewValidationError("unknown status", map[string]any{"status": *req.Status})
		}
		input.Status = &status
	}
	if req.SLADeadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.SLADeadline)
		if err != nil {
			return apperrors.NewValidationError("sla_deadline must be RFC3339", nil)
		}
		input.SLADeadline = &deadline
	}
	if req.Requester != nil {
		if strings.TrimSpace(req.Requester.Name) == "" || strings.TrimSpace(req.Requester.Email) == "" {
			return apperrors.NewValidationError("requester name and email required", nil)
		}
		input.Requester = &domain.Requester{
			Name:     req.Requester.Name,
			Email:    req.Requester.Email,
			WhatsApp: req.Requester.WhatsApp,
		}
	}
	if req.Attachments != nil {
		attachments := make([]domain.Attachment, 0, len(req.Attachments))
		for _, att := range req.Attachments {
			attachments = append(attachments, domain.Attachment{
				Name:      att.Name,
				MimeType:  att.MimeType,
				SizeBytes: att.SizeBytes,
			})
		}
		input.Attachments = attachments
	}

	ticket, err := h.store.Update(c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(&ticket, time.Now())})
}

// DeleteTicket DELETE /tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	if err := h.store.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddMessage POST /tickets/:id/messages.
func (h *TicketsHandler) AddMessage(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Content) == "" {
		return apperrors.NewValidationError("content required", nil)
	}
	msgType := domain.MessageType(req.Type)
	if !msgType.Valid() {
		return apperrors.NewValidationError("type must be email or internal_note", map[string]any{"type": req.Type})
	}

	msg, err := h.store.AddMessage(c.Params("id"), req.Content, msgType)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": messageResponse(&msg)})
}

// UpdateStatus PATCH /tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status := domain.Status(req.Status)
	if !status.Valid() {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": req.Status})
	}

	ticket, err := h.store.UpdateStatus(c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(&ticket, time.Now())})
}

func slaBadge(deadline time.Time, now time.Time) dto.SLABadge {
	countdown := sla.Evaluate(deadline, now)
	return dto.SLABadge{
		Hours:   countdown.Hours,
		Minutes: countdown.Minutes,
		Urgency: string(countdown.Urgency),
		Label:   countdown.String(),
	}
}

func ticketSummary(ticket *domain.Ticket, now time.Time) dto.TicketSummary {
	return dto.TicketSummary{
		ID:            ticket.ID,
		Subject:       ticket.Subject,
		Status:        ticket.Status,
		Priority:      ticket.Priority,
		RequesterName: ticket.Requester.Name,
		CreatedAt:     ticket.CreatedAt,
		SLADeadline:   ticket.SLADeadline,
		SLA:           slaBadge(ticket.SLADeadline, now),
		MessageCount:  len(ticket.Messages),
	}
}

func ticketDetail(ticket *domain.Ticket, now time.Time) dto.TicketDetailResponse {
	attachments := make([]dto.AttachmentResponse, 0, len(ticket.Attachments))
	for _, att := range ticket.Attachments {
		attachments = append(attachments, dto.AttachmentResponse{
			Name:      att.Name,
			MimeType:  att.MimeType,
			SizeBytes: att.SizeBytes,
		})
	}
	messages := make([]dto.MessageResponse, 0, len(ticket.Messages))
	for i := range ticket.Messages {
		messages = append(messages, messageResponse(&ticket.Messages[i]))
	}
	return dto.TicketDetailResponse{
		ID:          ticket.ID,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		CreatedAt:   ticket.CreatedAt,
		SLADeadline: ticket.SLADeadline,
		SLA:         slaBadge(ticket.SLADeadline, now),
		Requester: dto.RequesterResponse{
			Name:     ticket.Requester.Name,
			Email:    ticket.Requester.Email,
			WhatsApp: ticket.Requester.WhatsApp,
		},
		CCEmails:    ticket.CCEmails,
		Attachments: attachments,
		Messages:    messages,
	}
}

func messageResponse(msg *domain.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
		Type:       msg.Type,
		Internal:   msg.Internal,
	}
}
