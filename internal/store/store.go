// Package store owns the authoritative in-memory ticket collection. All
// mutations go through the Store and run atomically under its lock; every
// other component reads snapshots.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chm-desk/helpdesk/internal/domain"
	"github.com/chm-desk/helpdesk/internal/events"
	"github.com/chm-desk/helpdesk/internal/observability"
	apperrors "github.com/chm-desk/helpdesk/pkg/util"
)

const ticketKeyPrefix = "CHM-"

// System identity used for message authorship when nobody is logged in.
const (
	systemSenderID   = "system"
	systemSenderName = "System"
)

// IdentitySource resolves the operator acting on the store.
type IdentitySource interface {
	Current() *domain.Operator
}

// Dependencies bundles collaborators for the store.
type Dependencies struct {
	Logger     *zap.Logger
	Dispatcher events.Dispatcher
	Identity   IdentitySource
	Metrics    *observability.Metrics

	// Clock overrides time.Now in tests.
	Clock func() time.Time
	// StartSeq is the first ticket number handed out. Defaults to 1000 so
	// generated keys have four digits.
	StartSeq int
}

// Store is the sole owner and mutator of the ticket collection. Tickets
// are held newest-first, which is also the display convention.
type Store struct {
	mu      sync.RWMutex
	tickets []*domain.Ticket
	seq     int

	logger     *zap.Logger
	dispatcher events.Dispatcher
	identity   IdentitySource
	metrics    *observability.Metrics
	now        func() time.Time
}

// New constructs the store.
func New(deps Dependencies) *Store {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	seq := deps.StartSeq
	if seq <= 0 {
		seq = 1000
	}
	return &Store{
		seq:        seq,
		logger:     logger,
		dispatcher: deps.Dispatcher,
		identity:   deps.Identity,
		metrics:    deps.Metrics,
		now:        now,
	}
}

// CreateInput describes the ticket creation payload. Callers validate it
// at the boundary; the store assumes required fields are present.
type CreateInput struct {
	Subject     string
	Description string
	Priority    domain.Priority
	SLADeadline time.Time
	Requester   domain.Requester
	CCEmails    []string
}

// Create adds a new ticket: generated key, status Open, no attachments,
// and one system-authored internal note summarizing the description. The
// ticket is prepended so listings stay newest-first.
func (s *Store) Create(input CreateInput) (domain.Ticket, error) {
	now := s.now()
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	s.mu.Lock()
	ticket := &domain.Ticket{
		ID:          s.nextKeyLocked(),
		Subject:     strings.TrimSpace(input.Subject),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.StatusOpen,
		Priority:    priority,
		CreatedAt:   now,
		SLADeadline: input.SLADeadline,
		Requester:   input.Requester,
		CCEmails:    append([]string(nil), input.CCEmails...),
		Attachments: []domain.Attachment{},
		Messages: []domain.Message{{
			ID:         uuid.NewString(),
			SenderID:   systemSenderID,
			SenderName: systemSenderName,
			Content:    fmt.Sprintf("Ticket created. Description: %s", strings.TrimSpace(input.Description)),
			Timestamp:  now,
			Type:       domain.MessageTypeInternalNote,
			Internal:   true,
		}},
	}
	s.tickets = append([]*domain.Ticket{ticket}, s.tickets...)
	snapshot := ticket.Clone()
	s.mu.Unlock()

	s.metrics.RecordMutation("create_ticket")
	s.logger.Info("ticket created",
		zap.String("ticket_id", snapshot.ID),
		zap.String("priority", string(snapshot.Priority)))
	s.publish(events.EventTicketCreated, snapshot.ID, events.TicketCreatedPayload{
		Subject:  snapshot.Subject,
		Priority: snapshot.Priority,
	})
	return snapshot, nil
}

// UpdateInput carries a partial merge; nil fields stay untouched. The id
// is immutable and messages only change through AddMessage.
type UpdateInput struct {
	Subject     *string
	Description *string
	Priority    *domain.Priority
	Status      *domain.Status
	SLADeadline *time.Time
	Requester   *domain.Requester
	CCEmails    []string
	Attachments []domain.Attachment
}

// Update merges the given fields into the matching ticket.
func (s *Store) Update(id string, input UpdateInput) (domain.Ticket, error) {
	s.mu.Lock()
	ticket := s.findLocked(id)
	if ticket == nil {
		s.mu.Unlock()
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}

	var changed []string
	if input.Subject != nil {
		ticket.Subject = *input.Subject
		changed = append(changed, "subject")
	}
	if input.Description != nil {
		ticket.Description = *input.Description
		changed = append(changed, "description")
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
		changed = append(changed, "priority")
	}
	if input.Status != nil {
		ticket.Status = *input.Status
		changed = append(changed, "status")
	}
	if input.SLADeadline != nil {
		ticket.SLADeadline = *input.SLADeadline
		changed = append(changed, "sla_deadline")
	}
	if input.Requester != nil {
		ticket.Requester = *input.Requester
		changed = append(changed, "requester")
	}
	if input.CCEmails != nil {
		ticket.CCEmails = append([]string(nil), input.CCEmails...)
		changed = append(changed, "cc_emails")
	}
	if input.Attachments != nil {
		ticket.Attachments = append([]domain.Attachment(nil), input.Attachments...)
		changed = append(changed, "attachments")
	}
	snapshot := ticket.Clone()
	s.mu.Unlock()

	s.metrics.RecordMutation("update_ticket")
	s.logger.Info("ticket updated", zap.String("ticket_id", id), zap.Strings("fields", changed))
	s.publish(events.EventTicketUpdated, id, events.TicketUpdatedPayload{Fields: changed})
	return snapshot, nil
}

// Delete removes the ticket with that id, preserving the relative order of
// the rest. Hard delete, no tombstone.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	idx := -1
	for i, ticket := range s.tickets {
		if ticket.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	subject := s.tickets[idx].Subject
	s.tickets = append(s.tickets[:idx], s.tickets[idx+1:]...)
	s.mu.Unlock()

	s.metrics.RecordMutation("delete_ticket")
	s.logger.Info("ticket deleted", zap.String("ticket_id", id))
	s.publish(events.EventTicketDeleted, id, events.TicketDeletedPayload{Subject: subject})
	return nil
}

// AddMessage appends a message authored by the current operator, or the
// system identity when nobody is logged in. A public reply while the
// ticket is Open advances it to Waiting Reply; nothing else moves. This
// operation deliberately raises no toast.
func (s *Store) AddMessage(ticketID, content string, msgType domain.MessageType) (domain.Message, error) {
	sender := s.sender()
	now := s.now()

	s.mu.Lock()
	ticket := s.findLocked(ticketID)
	if ticket == nil {
		s.mu.Unlock()
		return domain.Message{}, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
	}

	msg := domain.Message{
		ID:         uuid.NewString(),
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Content:    content,
		Timestamp:  now,
		Type:       msgType,
		Internal:   msgType == domain.MessageTypeInternalNote,
	}
	ticket.Messages = append(ticket.Messages, msg)

	transitioned := false
	var oldStatus domain.Status
	if msgType == domain.MessageTypeEmail && ticket.Status == domain.StatusOpen {
		oldStatus = ticket.Status
		ticket.Status = domain.StatusWaitingReply
		transitioned = true
	}
	s.mu.Unlock()

	s.metrics.RecordMutation("add_message")
	s.logger.Info("message added",
		zap.String("ticket_id", ticketID),
		zap.String("message_type", string(msgType)))
	s.publish(events.EventTicketMessageAdded, ticketID, events.TicketMessageAddedPayload{
		MessageID:   msg.ID,
		MessageType: msg.Type,
		BodyPreview: preview(msg.Content, 120),
	})
	if transitioned {
		s.publish(events.EventTicketStatusChanged, ticketID, events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: domain.StatusWaitingReply,
			Automatic: true,
		})
	}
	return msg, nil
}

// UpdateStatus sets the status directly. Any transition is allowed; this
// is the explicit operator override.
func (s *Store) UpdateStatus(ticketID string, status domain.Status) (domain.Ticket, error) {
	s.mu.Lock()
	ticket := s.findLocked(ticketID)
	if ticket == nil {
		s.mu.Unlock()
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
	}
	oldStatus := ticket.Status
	ticket.Status = status
	snapshot := ticket.Clone()
	s.mu.Unlock()

	s.metrics.RecordMutation("update_status")
	s.logger.Info("status changed",
		zap.String("ticket_id", ticketID),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(status)))
	s.publish(events.EventTicketStatusChanged, ticketID, events.TicketStatusChangedPayload{
		OldStatus: oldStatus,
		NewStatus: status,
	})
	return snapshot, nil
}

// List returns a snapshot of the collection in display order.
func (s *Store) List() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ticket, 0, len(s.tickets))
	for _, ticket := range s.tickets {
		out = append(out, ticket.Clone())
	}
	return out
}

// Get returns a snapshot of one ticket.
func (s *Store) Get(id string) (domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ticket := s.findLocked(id)
	if ticket == nil {
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	return ticket.Clone(), nil
}

// Seed loads tickets without raising events or toasts, and bumps the key
// sequence past any numeric suffix already in use.
func (s *Store) Seed(tickets []*domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ticket := range tickets {
		clone := ticket.Clone()
		s.tickets = append(s.tickets, &clone)
		if n, ok := keyNumber(ticket.ID); ok && n >= s.seq {
			s.seq = n + 1
		}
	}
}

func (s *Store) findLocked(id string) *domain.Ticket {
	for _, ticket := range s.tickets {
		if ticket.ID == id {
			return ticket
		}
	}
	return nil
}

func (s *Store) nextKeyLocked() string {
	key := fmt.Sprintf("%s%04d", ticketKeyPrefix, s.seq)
	s.seq++
	return key
}

func keyNumber(id string) (int, bool) {
	if !strings.HasPrefix(id, ticketKeyPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, ticketKeyPrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *Store) sender() domain.Operator {
	if s.identity != nil {
		if operator := s.identity.Current(); operator != nil {
			return *operator
		}
	}
	return domain.Operator{ID: systemSenderID, Name: systemSenderName}
}

func (s *Store) publish(eventType events.EventType, ticketID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	actor := events.Actor{OperatorID: systemSenderID, Name: systemSenderName}
	if s.identity != nil {
		if operator := s.identity.Current(); operator != nil {
			actor = events.Actor{OperatorID: operator.ID, Name: operator.Name}
		}
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		TicketID:  ticketID,
		Actor:     actor,
		Timestamp: s.now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(context.Background(), event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(eventType)), zap.Error(err))
	}
}

func preview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
