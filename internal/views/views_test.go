package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chm-desk/helpdesk/internal/domain"
)

func sampleTickets() []domain.Ticket {
	return []domain.Ticket{
		{ID: "CHM-1001", Subject: "Cannot access the VPN remotely", Status: domain.StatusOpen,
			Requester: domain.Requester{Name: "Sarah Jenkins"}},
		{ID: "CHM-1002", Subject: "Software license request", Status: domain.StatusInProgress,
			Requester: domain.Requester{Name: "Mike Ross"}},
		{ID: "CHM-1003", Subject: "Server outage - Critical", Status: domain.StatusResolved,
			Requester: domain.Requester{Name: "System Alert"}},
		{ID: "CHM-1004", Subject: "VPN certificate renewal", Status: domain.StatusOpen,
			Requester: domain.Requester{Name: "Sarah Jenkins"}},
	}
}

func ids(tickets []domain.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterByStatus(t *testing.T) {
	got := Filter(sampleTickets(), string(domain.StatusOpen), "")
	assert.Equal(t, []string{"CHM-1001", "CHM-1004"}, ids(got))
}

func TestFilterAllPassesEverything(t *testing.T) {
	got := Filter(sampleTickets(), StatusFilterAll, "")
	assert.Len(t, got, 4)
}

func TestFilterQueryMatchesSubjectRequesterAndID(t *testing.T) {
	tickets := sampleTickets()

	assert.Equal(t, []string{"CHM-1001", "CHM-1004"}, ids(Filter(tickets, StatusFilterAll, "vpn")))
	assert.Equal(t, []string{"CHM-1001", "CHM-1004"}, ids(Filter(tickets, StatusFilterAll, "sarah")))
	assert.Equal(t, []string{"CHM-1002"}, ids(Filter(tickets, StatusFilterAll, "chm-1002")))
	assert.Empty(t, Filter(tickets, StatusFilterAll, "no such thing"))
}

// Applying both filters together must equal intersecting the two
// individually filtered sets.
func TestFilterCommutes(t *testing.T) {
	tickets := sampleTickets()
	status := string(domain.StatusOpen)
	query := "vpn"

	combined := ids(Filter(tickets, status, query))
	statusThenQuery := ids(Filter(Filter(tickets, status, ""), StatusFilterAll, query))
	queryThenStatus := ids(Filter(Filter(tickets, StatusFilterAll, query), status, ""))

	assert.Equal(t, combined, statusThenQuery)
	assert.Equal(t, combined, queryThenStatus)
}

func TestSummarize(t *testing.T) {
	got := Summarize(sampleTickets())
	assert.Equal(t, Summary{Total: 4, Resolved: 1, Open: 2}, got)

	assert.Equal(t, Summary{}, Summarize(nil))
}
