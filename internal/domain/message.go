package domain

import "time"

// MessageType differentiates requester-facing correspondence from
// staff-only annotations.
type MessageType string

const (
	MessageTypeEmail        MessageType = "email"
	MessageTypeInternalNote MessageType = "internal_note"
)

// Valid reports whether m is a known message type.
func (m MessageType) Valid() bool {
	return m == MessageTypeEmail || m == MessageTypeInternalNote
}

// Message captures one entry of a ticket's conversation thread. A message
// is immutable once appended and is owned exclusively by its ticket.
type Message struct {
	ID         string
	SenderID   string
	SenderName string
	Content    string
	Timestamp  time.Time
	Type       MessageType
	Internal   bool
}
