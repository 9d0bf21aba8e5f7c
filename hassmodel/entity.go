package hassmodel

import (
	"context"
	"strings"
)

// EntityCore is the minimal handle shared by every entity type.
type EntityCore interface {
	HaContext() HaContext
	EntityID() string
}

// Entity is the base of non-numeric generated entity records.
type Entity[A any] struct {
	haContext HaContext
	entityID  string
}

// NewEntity returns an entity handle for entityID.
func NewEntity[A any](haContext HaContext, entityID string) *Entity[A] {
	return &Entity[A]{haContext: haContext, entityID: entityID}
}

// EntityFromCore rebinds an existing handle to the attribute type A.
func EntityFromCore[A any](core EntityCore) *Entity[A] {
	return NewEntity[A](core.HaContext(), core.EntityID())
}

// HaContext returns the context the entity is bound to.
func (e *Entity[A]) HaContext() HaContext { return e.haContext }

// EntityID returns the entity id.
func (e *Entity[A]) EntityID() string { return e.entityID }

// Domain returns the domain part of the entity id.
func (e *Entity[A]) Domain() string {
	domain, _, _ := strings.Cut(e.entityID, ".")
	return domain
}

// EntityState returns the current state, or nil if the entity is unknown.
func (e *Entity[A]) EntityState() *EntityState[A] {
	return newEntityState[A](e.haContext.GetState(e.entityID))
}

// State returns the current state value, or nil if the entity is unknown.
func (e *Entity[A]) State() *string {
	s := e.EntityState()
	if s == nil {
		return nil
	}
	return &s.State
}

// Attributes returns the decoded attributes, or nil if unavailable.
func (e *Entity[A]) Attributes() *A {
	s := e.EntityState()
	if s == nil {
		return nil
	}
	return s.Attributes
}

// CallService calls service in the entity's domain, targeting this entity.
// Failures are returned as a *ServiceError.
func (e *Entity[A]) CallService(ctx context.Context, service string, data any) error {
	target := ServiceTarget{EntityIDs: []string{e.entityID}}
	if err := e.haContext.CallService(ctx, e.Domain(), service, target, data); err != nil {
		return &ServiceError{Domain: e.Domain(), Service: service, EntityIDs: target.EntityIDs, Err: err}
	}
	return nil
}

// NumericEntity is the base of numeric generated entity records.
type NumericEntity[A any] struct {
	*Entity[A]
}

// NewNumericEntity returns a numeric entity handle for entityID.
func NewNumericEntity[A any](haContext HaContext, entityID string) *NumericEntity[A] {
	return &NumericEntity[A]{Entity: NewEntity[A](haContext, entityID)}
}

// NumericEntityFromCore rebinds an existing handle to the attribute type A.
func NumericEntityFromCore[A any](core EntityCore) *NumericEntity[A] {
	return &NumericEntity[A]{Entity: EntityFromCore[A](core)}
}

// EntityState returns the current state with its parsed numeric value.
func (e *NumericEntity[A]) EntityState() *NumericEntityState[A] {
	return newNumericEntityState(e.Entity.EntityState())
}

// State returns the numeric state value, or nil if unknown or not a number.
func (e *NumericEntity[A]) State() *float64 {
	s := e.EntityState()
	if s == nil {
		return nil
	}
	return s.Value
}
