package events

import "fmt"

// EventBus is a simple interface for publishing events between UI
// services and the model.
type EventBus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

// Bus is a simple event bus for UI services. Dispatch is synchronous:
// all search, selection and dispatch state lives on the interactive
// loop, so handlers must run inline before the next input event.
type Bus struct {
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type. The event type is
// the event value's Go type name, as produced by %T.
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners for its type.
func (b *Bus) Publish(event interface{}) {
	eventType := fmt.Sprintf("%T", event)
	for _, handler := range b.listeners[eventType] {
		handler(event)
	}
}

// NullBus is a no-op implementation of EventBus.
type NullBus struct{}

func (n *NullBus) Publish(event interface{})                             {}
func (n *NullBus) Subscribe(eventType string, handler func(interface{})) {}
