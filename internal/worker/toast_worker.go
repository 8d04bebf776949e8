// Package worker hosts the event subscribers that run alongside the HTTP
// surface: the toast relay translating store events into user feedback,
// and the SLA monitor loop started from main.
package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chm-desk/helpdesk/internal/events"
	"github.com/chm-desk/helpdesk/internal/notify"
)

// ToastRelay turns ticket store events into toasts. Keeping the wording
// here leaves the store free of UI concerns. Message additions raise no
// toast so active conversations are not interrupted.
type ToastRelay struct {
	dispatcher events.Dispatcher
	toasts     *notify.Toaster
	logger     *zap.Logger
}

// NewToastRelay creates the relay.
func NewToastRelay(dispatcher events.Dispatcher, toasts *notify.Toaster, logger *zap.Logger) *ToastRelay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToastRelay{dispatcher: dispatcher, toasts: toasts, logger: logger}
}

// RegisterHandlers subscribes to store events.
func (r *ToastRelay) RegisterHandlers() {
	if r.dispatcher == nil {
		return
	}
	r.dispatcher.Subscribe(events.EventTicketCreated, r.handleTicketCreated)
	r.dispatcher.Subscribe(events.EventTicketUpdated, r.handleTicketUpdated)
	r.dispatcher.Subscribe(events.EventTicketDeleted, r.handleTicketDeleted)
	r.dispatcher.Subscribe(events.EventTicketStatusChanged, r.handleStatusChanged)
	r.dispatcher.Subscribe(events.EventTicketMessageAdded, r.handleMessageAdded)
}

func (r *ToastRelay) handleTicketCreated(ctx context.Context, event events.Event) error {
	r.logger.Info("TicketCreated", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	r.toasts.Show("Ticket created successfully!", notify.SeveritySuccess)
	return nil
}

func (r *ToastRelay) handleTicketUpdated(ctx context.Context, event events.Event) error {
	r.logger.Info("TicketUpdated", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	r.toasts.Show("Ticket updated successfully!", notify.SeveritySuccess)
	return nil
}

func (r *ToastRelay) handleTicketDeleted(ctx context.Context, event events.Event) error {
	r.logger.Info("TicketDeleted", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	r.toasts.Show("Ticket deleted.", notify.SeverityInfo)
	return nil
}

func (r *ToastRelay) handleStatusChanged(ctx context.Context, event events.Event) error {
	r.logger.Info("TicketStatusChanged", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		return nil
	}
	// The automatic Open -> Waiting Reply flip rides on AddMessage, which
	// never toasts.
	if payload.Automatic {
		return nil
	}
	r.toasts.Show(fmt.Sprintf("Status changed to %s", payload.NewStatus), notify.SeverityInfo)
	return nil
}

func (r *ToastRelay) handleMessageAdded(ctx context.Context, event events.Event) error {
	r.logger.Info("TicketMessageAdded", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}
