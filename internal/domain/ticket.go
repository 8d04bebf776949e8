package domain

import "time"

// Status enumerates lifecycle states for tickets.
type Status string

const (
	StatusOpen         Status = "Open"
	StatusInProgress   Status = "In Progress"
	StatusWaitingReply Status = "Waiting Reply"
	StatusResolved     Status = "Resolved"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusWaitingReply, StatusResolved}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// Priority enumerates SLA urgency.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Requester identifies the external party who raised a ticket. It is an
// embedded value with no lifecycle of its own.
type Requester struct {
	Name     string
	Email    string
	WhatsApp string
}

// Attachment stores file metadata only; binary content is out of scope.
type Attachment struct {
	Name      string
	MimeType  string
	SizeBytes int64
}

// Ticket is the aggregate for support requests. Messages are append-only
// and ordered by insertion.
type Ticket struct {
	ID          string
	Subject     string
	Description string
	Status      Status
	Priority    Priority
	CreatedAt   time.Time
	SLADeadline time.Time
	Requester   Requester
	CCEmails    []string
	Attachments []Attachment
	Messages    []Message
}

// Clone returns a deep copy so callers can hold snapshots without
// observing later mutations.
func (t *Ticket) Clone() Ticket {
	copied := *t
	copied.CCEmails = append([]string(nil), t.CCEmails...)
	copied.Attachments = append([]Attachment(nil), t.Attachments...)
	copied.Messages = append([]Message(nil), t.Messages...)
	return copied
}
