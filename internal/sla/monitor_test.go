package sla

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chm-desk/helpdesk/internal/domain"
	"github.com/chm-desk/helpdesk/internal/events"
)

type staticSource struct {
	tickets []domain.Ticket
}

func (s *staticSource) List() []domain.Ticket { return s.tickets }

func TestMonitorReportsExpiredTicketOnce(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	source := &staticSource{tickets: []domain.Ticket{
		{ID: "CHM-1001", SLADeadline: now.Add(-time.Minute)},
		{ID: "CHM-1002", SLADeadline: now.Add(5 * time.Hour)},
	}}

	bus := events.NewMemoryBus()
	var seen []events.Event
	bus.Subscribe(events.EventSLAExpired, func(ctx context.Context, e events.Event) error {
		seen = append(seen, e)
		return nil
	})

	monitor := NewMonitor(source, bus, nil, time.Minute)
	monitor.scan(context.Background(), now)
	monitor.scan(context.Background(), now.Add(time.Minute))

	require.Len(t, seen, 1)
	assert.Equal(t, "CHM-1001", seen[0].TicketID)
}

func TestMonitorForgetsDeletedTickets(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	source := &staticSource{tickets: []domain.Ticket{
		{ID: "CHM-1001", SLADeadline: now.Add(-time.Minute)},
	}}

	monitor := NewMonitor(source, nil, nil, time.Minute)
	monitor.scan(context.Background(), now)
	require.Contains(t, monitor.reported, "CHM-1001")

	source.tickets = nil
	monitor.scan(context.Background(), now.Add(time.Minute))
	assert.NotContains(t, monitor.reported, "CHM-1001")
}
