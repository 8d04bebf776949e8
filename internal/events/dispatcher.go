package events

import (
	"context"
	"errors"
	"sync"
)

// Handler handles a published event.
type Handler func(context.Context, Event) error

// Dispatcher allows event publication and subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler Handler)
}

// memoryBus is a synchronous in-process dispatcher. Handlers run in
// subscription order on the publisher's goroutine, so subscribers observe
// store mutations already applied.
type memoryBus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewMemoryBus creates a dispatcher instance.
func NewMemoryBus() Dispatcher {
	return &memoryBus{handlers: make(map[EventType][]Handler)}
}

// Publish invokes every handler registered for the event type. Handler
// errors are collected, not short-circuited.
func (b *memoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers a handler for the given event type.
func (b *memoryBus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
