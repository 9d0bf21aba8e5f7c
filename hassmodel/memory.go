package hassmodel

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// ServiceCall is a service invocation recorded by MemoryContext.
type ServiceCall struct {
	Domain  string
	Service string
	Target  ServiceTarget
	Data    any
}

// MemoryContext is an in-memory HaContext. Entity ids are listed in
// insertion order.
type MemoryContext struct {
	mu     sync.RWMutex
	ids    []string
	states map[string]*RawState
	calls  []ServiceCall
}

var _ HaContext = (*MemoryContext)(nil)

// NewMemoryContext returns an empty MemoryContext.
func NewMemoryContext() *MemoryContext {
	return &MemoryContext{states: make(map[string]*RawState)}
}

// SetState stores the state of entityID. attrs is marshalled to JSON; a nil
// attrs leaves the attributes empty.
func (m *MemoryContext) SetState(entityID, state string, attrs any) error {
	var raw json.RawMessage
	if attrs != nil {
		b, err := json.Marshal(attrs)
		if err != nil {
			return err
		}
		raw = b
	}
	now := time.Now().UTC()
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.states[entityID]
	if !ok {
		m.ids = append(m.ids, entityID)
	}
	s := &RawState{EntityID: entityID, State: state, Attributes: raw, LastChanged: now, LastUpdated: now}
	if ok && prev.State == state {
		s.LastChanged = prev.LastChanged
	}
	m.states[entityID] = s
	return nil
}

// GetState implements HaContext.
func (m *MemoryContext) GetState(entityID string) *RawState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.states[entityID]
	if !ok {
		return nil
	}
	c := *s
	return &c
}

// EntityIDs implements HaContext.
func (m *MemoryContext) EntityIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.ids...)
}

// CallService implements HaContext. Calls are recorded, never executed.
// Targeting an entity without a state fails with a *NotFoundError.
func (m *MemoryContext) CallService(ctx context.Context, domain, service string, target ServiceTarget, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range target.EntityIDs {
		if _, ok := m.states[id]; !ok {
			return NewNotFoundError(id)
		}
	}
	m.calls = append(m.calls, ServiceCall{Domain: domain, Service: service, Target: target, Data: data})
	return nil
}

// Calls returns the recorded service calls.
func (m *MemoryContext) Calls() []ServiceCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]ServiceCall(nil), m.calls...)
}
