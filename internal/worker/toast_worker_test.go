package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chm-desk/helpdesk/internal/domain"
	"github.com/chm-desk/helpdesk/internal/events"
	"github.com/chm-desk/helpdesk/internal/notify"
)

func newRelay(t *testing.T) (events.Dispatcher, *notify.Toaster) {
	t.Helper()
	dispatcher := events.NewMemoryBus()
	toasts := notify.NewToaster(time.Minute, nil)
	NewToastRelay(dispatcher, toasts, nil).RegisterHandlers()
	return dispatcher, toasts
}

func TestCreatedEventRaisesSuccessToast(t *testing.T) {
	dispatcher, toasts := newRelay(t)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventTicketCreated,
		TicketID: "CHM-1000",
		Payload:  events.TicketCreatedPayload{Subject: "x", Priority: domain.PriorityHigh},
	})
	require.NoError(t, err)

	toast := toasts.Current()
	require.NotNil(t, toast)
	assert.Equal(t, notify.SeveritySuccess, toast.Severity)
	assert.Equal(t, "Ticket created successfully!", toast.Message)
}

func TestDeletedEventRaisesInfoToast(t *testing.T) {
	dispatcher, toasts := newRelay(t)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: "CHM-1000",
	})
	require.NoError(t, err)

	toast := toasts.Current()
	require.NotNil(t, toast)
	assert.Equal(t, notify.SeverityInfo, toast.Severity)
	assert.Equal(t, "Ticket deleted.", toast.Message)
}

func TestStatusChangeToastNamesNewStatus(t *testing.T) {
	dispatcher, toasts := newRelay(t)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: "CHM-1000",
		Payload: events.TicketStatusChangedPayload{
			OldStatus: domain.StatusOpen,
			NewStatus: domain.StatusResolved,
		},
	})
	require.NoError(t, err)

	toast := toasts.Current()
	require.NotNil(t, toast)
	assert.Equal(t, "Status changed to Resolved", toast.Message)
}

// The automatic Open -> Waiting Reply flip rides on AddMessage, which
// never notifies.
func TestAutomaticStatusChangeIsSilent(t *testing.T) {
	dispatcher, toasts := newRelay(t)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: "CHM-1000",
		Payload: events.TicketStatusChangedPayload{
			OldStatus: domain.StatusOpen,
			NewStatus: domain.StatusWaitingReply,
			Automatic: true,
		},
	})
	require.NoError(t, err)
	assert.Nil(t, toasts.Current())
}

func TestMessageAddedIsSilent(t *testing.T) {
	dispatcher, toasts := newRelay(t)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventTicketMessageAdded,
		TicketID: "CHM-1000",
		Payload:  events.TicketMessageAddedPayload{MessageID: "m1", MessageType: domain.MessageTypeEmail},
	})
	require.NoError(t, err)
	assert.Nil(t, toasts.Current())
}
