package hassmodel

import (
	"encoding/json"
	"strconv"
	"time"
)

// EntityState is a decoded entity state.
type EntityState[A any] struct {
	EntityID    string
	State       string
	Attributes  *A
	LastChanged time.Time
	LastUpdated time.Time
}

func newEntityState[A any](raw *RawState) *EntityState[A] {
	if raw == nil {
		return nil
	}
	s := &EntityState[A]{
		EntityID:    raw.EntityID,
		State:       raw.State,
		LastChanged: raw.LastChanged,
		LastUpdated: raw.LastUpdated,
	}
	if len(raw.Attributes) > 0 {
		var attrs A
		if err := json.Unmarshal(raw.Attributes, &attrs); err == nil {
			s.Attributes = &attrs
		}
	}
	return s
}

// NumericEntityState is an entity state whose value parses as a number.
type NumericEntityState[A any] struct {
	EntityState[A]
	// Value is nil when the state is not numeric ("unavailable", "unknown").
	Value *float64
}

func newNumericEntityState[A any](s *EntityState[A]) *NumericEntityState[A] {
	if s == nil {
		return nil
	}
	ns := &NumericEntityState[A]{EntityState: *s}
	if v, err := strconv.ParseFloat(s.State, 64); err == nil {
		ns.Value = &v
	}
	return ns
}
