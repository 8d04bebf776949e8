package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/chm-desk/helpdesk/internal/api/http"
	"github.com/chm-desk/helpdesk/internal/api/http/handlers"
	"github.com/chm-desk/helpdesk/internal/config"
	"github.com/chm-desk/helpdesk/internal/events"
	"github.com/chm-desk/helpdesk/internal/notify"
	"github.com/chm-desk/helpdesk/internal/observability"
	"github.com/chm-desk/helpdesk/internal/session"
	"github.com/chm-desk/helpdesk/internal/store"
	"github.com/chm-desk/helpdesk/internal/worker"
)

type testEnv struct {
	app    *fiber.App
	store  *store.Store
	toasts *notify.Toaster
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	dispatcher := events.NewMemoryBus()
	toasts := notify.NewToaster(3*time.Second, logger)
	sessions := session.NewManager(config.SessionConfig{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
		OperatorID:      "op-1",
		OperatorName:    "Alex Operator",
		OperatorRole:    "operator",
	}, logger)

	ticketStore := store.New(store.Dependencies{
		Logger:     logger,
		Dispatcher: dispatcher,
		Identity:   sessions,
		Metrics:    metrics,
	})
	worker.NewToastRelay(dispatcher, toasts, logger).RegisterHandlers()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, toasts, 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler("helpdesk", "test", ticketStore),
		Session:       handlers.NewSessionHandler(sessions),
		Tickets:       handlers.NewTicketsHandler(ticketStore),
		Analytics:     handlers.NewAnalyticsHandler(ticketStore),
		Notifications: handlers.NewNotificationsHandler(toasts),
		Middleware:    session.NewMiddleware(sessions.Tokens()),
	})

	return &testEnv{app: app, store: ticketStore, toasts: toasts}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, token string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	envelope := map[string]json.RawMessage{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	}
	return resp, envelope
}

func createPayload() map[string]any {
	return map[string]any{
		"subject":         "VPN down",
		"description":     "Cannot reach the VPN gateway.",
		"priority":        "Critical",
		"sla_deadline":    time.Now().Add(time.Hour).Format(time.RFC3339),
		"requester_name":  "Sarah Jenkins",
		"requester_email": "sarah.j@client.com",
		"cc_emails":       []string{"manager@client.com"},
	}
}

func TestCreateAndListTickets(t *testing.T) {
	env := newTestEnv(t)

	resp, envelope := env.request(t, http.MethodPost, "/tickets", createPayload(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID       string `json:"id"`
		Status   string `json:"status"`
		Messages []struct {
			Type     string `json:"type"`
			Internal bool   `json:"internal"`
		} `json:"messages"`
		SLA struct {
			Urgency string `json:"urgency"`
		} `json:"sla"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &created))
	assert.Equal(t, "CHM-1000", created.ID)
	assert.Equal(t, "Open", created.Status)
	require.Len(t, created.Messages, 1)
	assert.True(t, created.Messages[0].Internal)
	assert.Equal(t, "urgent", created.SLA.Urgency)

	resp, envelope = env.request(t, http.MethodGet, "/tickets", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "CHM-1000", listed[0].ID)

	// success toast raised by the mutation
	toast := env.toasts.Current()
	require.NotNil(t, toast)
	assert.Equal(t, notify.SeveritySuccess, toast.Severity)
}

func TestCreateTicketValidation(t *testing.T) {
	env := newTestEnv(t)

	payload := createPayload()
	payload["subject"] = ""
	resp, envelope := env.request(t, http.MethodPost, "/tickets", payload, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(envelope["error"]), "VALIDATION_FAILED")

	payload = createPayload()
	payload["sla_deadline"] = "tomorrow-ish"
	resp, _ = env.request(t, http.MethodPost, "/tickets", payload, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Empty(t, env.store.List())
}

func TestStatusPatchAndFilter(t *testing.T) {
	env := newTestEnv(t)
	_, envelope := env.request(t, http.MethodPost, "/tickets", createPayload(), "")
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &created))

	resp, envelope := env.request(t, http.MethodPatch, "/tickets/"+created.ID+"/status",
		map[string]any{"status": "Resolved"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &updated))
	assert.Equal(t, "Resolved", updated.Status)

	toast := env.toasts.Current()
	require.NotNil(t, toast)
	assert.Equal(t, "Status changed to Resolved", toast.Message)

	resp, envelope = env.request(t, http.MethodGet, "/tickets?status=Resolved", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &listed))
	assert.Len(t, listed, 1)

	resp, envelope = env.request(t, http.MethodGet, "/tickets?status=Open", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &listed))
	assert.Empty(t, listed)
}

func TestDeleteMissingTicketReturnsNotFoundWithErrorToast(t *testing.T) {
	env := newTestEnv(t)

	resp, envelope := env.request(t, http.MethodDelete, "/tickets/CHM-9999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(envelope["error"]), "NOT_FOUND")

	toast := env.toasts.Current()
	require.NotNil(t, toast)
	assert.Equal(t, notify.SeverityError, toast.Severity)
}

func TestLoginAttachesMessageAuthorship(t *testing.T) {
	env := newTestEnv(t)

	resp, envelope := env.request(t, http.MethodPost, "/auth/login",
		map[string]any{"email": "alex@company.com"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token    string `json:"token"`
		Operator struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"operator"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "alex@company.com", login.Operator.Email)

	_, envelope = env.request(t, http.MethodPost, "/tickets", createPayload(), login.Token)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &created))

	resp, envelope = env.request(t, http.MethodPost, "/tickets/"+created.ID+"/messages",
		map[string]any{"content": "We are investigating", "type": "email"}, login.Token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var msg struct {
		SenderID   string `json:"sender_id"`
		SenderName string `json:"sender_name"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &msg))
	assert.Equal(t, "op-1", msg.SenderID)
	assert.Equal(t, "Alex Operator", msg.SenderName)
}

func TestAnalyticsSummary(t *testing.T) {
	env := newTestEnv(t)
	env.store.Seed(store.Fixtures(time.Now()))

	resp, envelope := env.request(t, http.MethodGet, "/analytics/summary", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary struct {
		Total    int `json:"total"`
		Resolved int `json:"resolved"`
		Open     int `json:"open"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &summary))
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Resolved)
	assert.Equal(t, 1, summary.Open)
}

func TestNotificationLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	resp, envelope := env.request(t, http.MethodGet, "/notifications/current", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", string(envelope["data"]))

	env.request(t, http.MethodPost, "/tickets", createPayload(), "")

	resp, envelope = env.request(t, http.MethodGet, "/notifications/current", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toast struct {
		Message  string `json:"message"`
		Severity string `json:"severity"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &toast))
	assert.Equal(t, "Ticket created successfully!", toast.Message)

	resp, _ = env.request(t, http.MethodDelete, "/notifications/current", nil, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Nil(t, env.toasts.Current())
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.request(t, http.MethodGet, "/health/live", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.request(t, http.MethodGet, "/health/ready", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
