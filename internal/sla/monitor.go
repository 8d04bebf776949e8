package sla

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chm-desk/helpdesk/internal/domain"
	"github.com/chm-desk/helpdesk/internal/events"
)

// TicketSource provides a read-only snapshot of the ticket collection.
type TicketSource interface {
	List() []domain.Ticket
}

// Monitor re-evaluates every ticket's deadline on a fixed cadence. It only
// reads deadlines; the countdown itself stays a pure function of wall-clock
// time computed where it is displayed.
type Monitor struct {
	source     TicketSource
	dispatcher events.Dispatcher
	logger     *zap.Logger
	interval   time.Duration

	reported map[string]struct{}
}

// NewMonitor constructs the monitor.
func NewMonitor(source TicketSource, dispatcher events.Dispatcher, logger *zap.Logger, interval time.Duration) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		source:     source,
		dispatcher: dispatcher,
		logger:     logger,
		interval:   interval,
		reported:   make(map[string]struct{}),
	}
}

// Run ticks until the context is cancelled. Each tick scans the snapshot
// once and publishes a single sla_expired event per newly expired ticket.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.scan(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.scan(ctx, now)
		}
	}
}

func (m *Monitor) scan(ctx context.Context, now time.Time) {
	live := make(map[string]struct{})
	for _, ticket := range m.source.List() {
		live[ticket.ID] = struct{}{}
		countdown := Evaluate(ticket.SLADeadline, now)
		if !countdown.Expired() {
			continue
		}
		if _, seen := m.reported[ticket.ID]; seen {
			continue
		}
		m.reported[ticket.ID] = struct{}{}
		m.logger.Warn("sla deadline expired",
			zap.String("ticket_id", ticket.ID),
			zap.Time("deadline", ticket.SLADeadline))
		if m.dispatcher != nil {
			_ = m.dispatcher.Publish(ctx, events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventSLAExpired,
				TicketID:  ticket.ID,
				Timestamp: now,
				Payload:   events.SLAExpiredPayload{Deadline: ticket.SLADeadline},
			})
		}
	}

	// drop marks for tickets that no longer exist
	for id := range m.reported {
		if _, ok := live[id]; !ok {
			delete(m.reported, id)
		}
	}
}
