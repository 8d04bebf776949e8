package dto

import (
	"time"

	"github.com/chm-desk/helpdesk/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject           string   `json:"subject"`
	Description       string   `json:"description"`
	Priority          string   `json:"priority"`
	SLADeadline       string   `json:"sla_deadline"`
	RequesterName     string   `json:"requester_name"`
	RequesterEmail    string   `json:"requester_email"`
	RequesterWhatsApp string   `json:"requester_whatsapp,omitempty"`
	CCEmails          []string `json:"cc_emails"`
}

// UpdateTicketRequest carries a partial merge; absent fields stay as-is.
type UpdateTicketRequest struct {
	Subject     *string             `json:"subject"`
	Description *string             `json:"description"`
	Priority    *string             `json:"priority"`
	Status      *string             `json:"status"`
	SLADeadline *string             `json:"sla_deadline"`
	Requester   *RequesterRequest   `json:"requester"`
	CCEmails    []string            `json:"cc_emails"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// RequesterRequest payload.
type RequesterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// AttachmentRequest describes attachment metadata input.
type AttachmentRequest struct {
	Name      string `json:"name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// CreateMessageRequest payload.
type CreateMessageRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SLABadge is the countdown display state computed at response time.
type SLABadge struct {
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Urgency string `json:"urgency"`
	Label   string `json:"label"`
}

// TicketSummary is the list item shape.
type TicketSummary struct {
	ID            string          `json:"id"`
	Subject       string          `json:"subject"`
	Status        domain.Status   `json:"status"`
	Priority      domain.Priority `json:"priority"`
	RequesterName string          `json:"requester_name"`
	CreatedAt     time.Time       `json:"created_at"`
	SLADeadline   time.Time       `json:"sla_deadline"`
	SLA           SLABadge        `json:"sla"`
	MessageCount  int             `json:"message_count"`
}

// TicketDetailResponse provides full ticket info with the conversation
// thread.
type TicketDetailResponse struct {
	ID          string               `json:"id"`
	Subject     string               `json:"subject"`
	Description string               `json:"description"`
	Status      domain.Status        `json:"status"`
	Priority    domain.Priority      `json:"priority"`
	CreatedAt   time.Time            `json:"created_at"`
	SLADeadline time.Time            `json:"sla_deadline"`
	SLA         SLABadge             `json:"sla"`
	Requester   RequesterResponse    `json:"requester"`
	CCEmails    []string             `json:"cc_emails"`
	Attachments []AttachmentResponse `json:"attachments"`
	Messages    []MessageResponse    `json:"messages"`
}

// RequesterResponse shape.
type RequesterResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// AttachmentResponse metadata.
type AttachmentResponse struct {
	Name      string `json:"name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// MessageResponse represents one thread entry.
type MessageResponse struct {
	ID         string             `json:"id"`
	SenderID   string             `json:"sender_id"`
	SenderName string             `json:"sender_name"`
	Content    string             `json:"content"`
	Timestamp  time.Time          `json:"timestamp"`
	Type       domain.MessageType `json:"type"`
	Internal   bool               `json:"internal"`
}
