package store

import (
	"time"

	"github.com/chm-desk/helpdesk/internal/domain"
)

// Fixtures returns the demo tickets the dashboard boots with. Creation
// times and deadlines are expressed relative to now so the SLA badges show
// a meaningful mix: one expiring soon, one comfortable, one expired.
func Fixtures(now time.Time) []*domain.Ticket {
	return []*domain.Ticket{
		{
			ID:          "CHM-1001",
			Subject:     "Cannot access the VPN remotely",
			Description: "Trying to connect to the VPN with the new credentials but I get a 403 error.",
			Status:      domain.StatusOpen,
			Priority:    domain.PriorityHigh,
			CreatedAt:   now.Add(-2 * time.Hour),
			SLADeadline: now.Add(2 * time.Hour),
			Requester: domain.Requester{
				Name:     "Sarah Jenkins",
				Email:    "sarah.j@client.com",
				WhatsApp: "+15550119999",
			},
			CCEmails: []string{"manager@client.com"},
			Attachments: []domain.Attachment{
				{Name: "error_screenshot.png", MimeType: "image/png", SizeBytes: 1_200_000},
			},
			Messages: []domain.Message{
				{
					ID:         "msg-1001-1",
					SenderID:   "sarah.j@client.com",
					SenderName: "Sarah Jenkins",
					Content:    "Hi, I cannot access the VPN. Screenshot attached.",
					Timestamp:  now.Add(-2 * time.Hour),
					Type:       domain.MessageTypeEmail,
				},
			},
		},
		{
			ID:          "CHM-1002",
			Subject:     "Software license request",
			Description: "We need a Figma license for the new designer starting next week.",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityMedium,
			CreatedAt:   now.Add(-24 * time.Hour),
			SLADeadline: now.Add(48 * time.Hour),
			Requester: domain.Requester{
				Name:  "Mike Ross",
				Email: "mike.r@design.com",
			},
			CCEmails:    []string{},
			Attachments: []domain.Attachment{},
			Messages: []domain.Message{
				{
					ID:         "msg-1002-1",
					SenderID:   "mike.r@design.com",
					SenderName: "Mike Ross",
					Content:    "Hi team, please provision a Figma license.",
					Timestamp:  now.Add(-24 * time.Hour),
					Type:       domain.MessageTypeEmail,
				},
				{
					ID:         "msg-1002-2",
					SenderID:   "op-1",
					SenderName: "Alex Operator",
					Content:    "Forwarded to finance for approval. Will follow up shortly.",
					Timestamp:  now.Add(-23 * time.Hour),
					Type:       domain.MessageTypeEmail,
				},
			},
		},
		{
			ID:          "CHM-1003",
			Subject:     "Server outage - Critical",
			Description: "Production server US-East-1 is not responding.",
			Status:      domain.StatusResolved,
			Priority:    domain.PriorityCritical,
			CreatedAt:   now.Add(-48 * time.Hour),
			SLADeadline: now.Add(-40 * time.Hour),
			Requester: domain.Requester{
				Name:  "System Alert",
				Email: "alerts@sys.com",
			},
			CCEmails:    []string{"cto@company.com"},
			Attachments: []domain.Attachment{},
			Messages: []domain.Message{
				{
					ID:         "msg-1003-1",
					SenderID:   "alerts@sys.com",
					SenderName: "System Alert",
					Content:    "CRITICAL: Heartbeat lost on US-East-1.",
					Timestamp:  now.Add(-48 * time.Hour),
					Type:       domain.MessageTypeEmail,
				},
				{
					ID:         "msg-1003-2",
					SenderID:   "op-1",
					SenderName: "Alex Operator",
					Content:    "Services restarted. Monitoring.",
					Timestamp:  now.Add(-47 * time.Hour),
					Type:       domain.MessageTypeEmail,
				},
				{
					ID:         "msg-1003-3",
					SenderID:   "op-1",
					SenderName: "Alex Operator",
					Content:    "Resolved. Root cause: memory leak in the worker node.",
					Timestamp:  now.Add(-46 * time.Hour),
					Type:       domain.MessageTypeInternalNote,
					Internal:   true,
				},
			},
		},
	}
}
