package activity

import (
	"context"
	"sync"

	"renohub/internal/domain/entities"
	"renohub/internal/usecase/interfaces"
)

// MemorySink collects events in memory. Used in tests and as the sink of
// last resort when Redis is not configured.
type MemorySink struct {
	mu     sync.Mutex
	events []entities.ActivityEvent
}

var _ interfaces.IActivitySink = (*MemorySink)(nil)

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Emit(_ context.Context, event entities.ActivityEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > maxEntries {
		s.events = s.events[len(s.events)-maxEntries:]
	}
}

// Events returns a copy of everything emitted so far.
func (s *MemorySink) Events() []entities.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.ActivityEvent, len(s.events))
	copy(out, s.events)
	return out
}
