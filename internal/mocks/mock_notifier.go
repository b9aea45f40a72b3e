package mocks

import (
	"context"
	"sync"

	"github.com/cinetix/booking-engine/internal/domain"
)

// MockNotifier records emitted events for assertions.
type MockNotifier struct {
	mu     sync.Mutex
	events []domain.Event
}

func (m *MockNotifier) Notify(ctx context.Context, event domain.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, event)
}

func (m *MockNotifier) Events() []domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]domain.Event(nil), m.events...)
}
