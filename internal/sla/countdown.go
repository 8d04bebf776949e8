package sla

import (
	"fmt"
	"time"
)

// Urgency is the tri-valued tag of an SLA countdown.
type Urgency string

const (
	UrgencyExpired Urgency = "expired"
	UrgencyUrgent  Urgency = "urgent"
	UrgencyNormal  Urgency = "normal"
)

// A deadline closer than this is flagged urgent.
const urgentThreshold = 2 * time.Hour

// Countdown is the derived display state of an SLA deadline. It is never
// stored on a ticket; callers recompute it from wall-clock time.
type Countdown struct {
	Hours   int
	Minutes int
	Urgency Urgency
}

// Evaluate derives the countdown for a deadline at the given instant.
func Evaluate(deadline, now time.Time) Countdown {
	diff := deadline.Sub(now)
	if diff <= 0 {
		return Countdown{Urgency: UrgencyExpired}
	}

	hours := int(diff / time.Hour)
	minutes := int((diff % time.Hour) / time.Minute)

	urgency := UrgencyNormal
	if diff < urgentThreshold {
		urgency = UrgencyUrgent
	}
	return Countdown{Hours: hours, Minutes: minutes, Urgency: urgency}
}

// Expired reports whether the deadline has passed.
func (c Countdown) Expired() bool {
	return c.Urgency == UrgencyExpired
}

// String renders the badge text shown next to a ticket.
func (c Countdown) String() string {
	if c.Expired() {
		return "Expired"
	}
	return fmt.Sprintf("%dh %dm", c.Hours, c.Minutes)
}
