package testutil

import (
	"sync"

	"github.com/mcoot/cornergame/internal/model"
)

// EventRecorder collects published events for assertions
type EventRecorder struct {
	mu     sync.Mutex
	events []model.Event
}

// Publish records an event
func (r *EventRecorder) Publish(event model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns everything recorded so far
func (r *EventRecorder) Events() []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.Event, len(r.events))
	copy(result, r.events)
	return result
}

// Types returns the recorded event types in order
func (r *EventRecorder) Types() []model.EventType {
	events := r.Events()
	types := make([]model.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

// Last returns the most recent event of the given type
func (r *EventRecorder) Last(eventType model.EventType) (model.Event, bool) {
	events := r.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == eventType {
			return events[i], true
		}
	}
	return model.Event{}, false
}
