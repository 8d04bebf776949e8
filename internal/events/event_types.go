package events

import (
	"time"

	"github.com/chm-desk/helpdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketUpdated       EventType = "ticket_updated"
	EventTicketDeleted       EventType = "ticket_deleted"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketMessageAdded  EventType = "ticket_message_added"
	EventSLAExpired          EventType = "sla_expired"
)

// Actor identifies who triggered an event. System actions carry the
// fallback system identity.
type Actor struct {
	OperatorID string `json:"operator_id"`
	Name       string `json:"name"`
}

// Event represents a domain event emitted by the ticket store.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Subject  string          `json:"subject"`
	Priority domain.Priority `json:"priority"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	Fields []string `json:"fields"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	Subject string `json:"subject"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.Status `json:"old_status"`
	NewStatus domain.Status `json:"new_status"`
	Automatic bool          `json:"automatic"`
}

// TicketMessageAddedPayload payload.
type TicketMessageAddedPayload struct {
	MessageID   string             `json:"message_id"`
	MessageType domain.MessageType `json:"message_type"`
	BodyPreview string             `json:"body_preview"`
}

// SLAExpiredPayload payload.
type SLAExpiredPayload struct {
	Deadline time.Time `json:"deadline"`
}
