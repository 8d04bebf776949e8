// Package views holds pure derived computations over the ticket
// collection. Nothing here mutates state; every function recomputes from
// the snapshot it is handed.
package views

import (
	"strings"

	"github.com/chm-desk/helpdesk/internal/domain"
)

// StatusFilterAll matches every status.
const StatusFilterAll = "All"

// Filter returns the tickets whose status matches the filter (or all when
// the filter is All) and whose subject, requester name, or id contains the
// query, case-insensitively. Relative order is preserved.
func Filter(tickets []domain.Ticket, statusFilter string, query string) []domain.Ticket {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if statusFilter != StatusFilterAll && string(ticket.Status) != statusFilter {
			continue
		}
		if query != "" && !matchesQuery(ticket, query) {
			continue
		}
		out = append(out, ticket)
	}
	return out
}

func matchesQuery(ticket domain.Ticket, query string) bool {
	return strings.Contains(strings.ToLower(ticket.Subject), query) ||
		strings.Contains(strings.ToLower(ticket.Requester.Name), query) ||
		strings.Contains(strings.ToLower(ticket.ID), query)
}

// Summary aggregates headline counts for the analytics view.
type Summary struct {
	Total    int `json:"total"`
	Resolved int `json:"resolved"`
	Open     int `json:"open"`
}

// Summarize counts tickets by a single linear scan.
func Summarize(tickets []domain.Ticket) Summary {
	summary := Summary{Total: len(tickets)}
	for _, ticket := range tickets {
		switch ticket.Status {
		case domain.StatusResolved:
			summary.Resolved++
		case domain.StatusOpen:
			summary.Open++
		}
	}
	return summary
}
