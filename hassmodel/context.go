package hassmodel

import (
	"context"
	"encoding/json"
	"time"
)

// HaContext is the accessor context generated code is bound to. It knows how
// to reach the live entity set of the platform.
type HaContext interface {
	// GetState returns the current raw state of an entity, or nil if the
	// entity is unknown.
	GetState(entityID string) *RawState
	// EntityIDs returns the ids of all live entities.
	EntityIDs() []string
	// CallService invokes a platform service.
	CallService(ctx context.Context, domain, service string, target ServiceTarget, data any) error
}

// RawState is an entity state as reported by the platform.
type RawState struct {
	EntityID    string          `json:"entity_id"`
	State       string          `json:"state"`
	Attributes  json.RawMessage `json:"attributes,omitempty"`
	LastChanged time.Time       `json:"last_changed"`
	LastUpdated time.Time       `json:"last_updated"`
}

// ServiceTarget selects the entities a service call applies to.
type ServiceTarget struct {
	EntityIDs []string `json:"entity_id,omitempty"`
}
