package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Severity classifies a toast.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Toast is an ephemeral status message surfaced after a store mutation.
type Toast struct {
	ID       string
	Message  string
	Severity Severity
}

// Toaster owns the single live toast. Showing a new toast replaces the
// current one and restarts the auto-hide countdown; the replaced toast's
// pending timer becomes a no-op.
type Toaster struct {
	mu      sync.Mutex
	current *Toast
	timer   *time.Timer
	ttl     time.Duration
	logger  *zap.Logger
}

// NewToaster creates the channel with the given auto-hide lifetime.
func NewToaster(ttl time.Duration, logger *zap.Logger) *Toaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Toaster{ttl: ttl, logger: logger}
}

// Show replaces any live toast and schedules auto-hide after the TTL.
func (t *Toaster) Show(message string, severity Severity) Toast {
	toast := Toast{ID: uuid.NewString(), Message: message, Severity: severity}

	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.current = &toast
	id := toast.ID
	t.timer = time.AfterFunc(t.ttl, func() { t.expire(id) })
	t.mu.Unlock()

	t.logger.Debug("toast shown",
		zap.String("severity", string(severity)),
		zap.String("message", message))
	return toast
}

// Hide clears the current toast immediately and cancels the pending
// auto-hide.
func (t *Toaster) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.current = nil
}

// Current returns a copy of the live toast, or nil when none is shown.
func (t *Toaster) Current() *Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return nil
	}
	copied := *t.current
	return &copied
}

// expire clears the toast only if it is still the one the timer was armed
// for; a newer toast must not be cleared by a stale timer.
func (t *Toaster) expire(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil && t.current.ID == id {
		t.current = nil
		t.timer = nil
	}
}
