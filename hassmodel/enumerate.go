package hassmodel

import (
	"encoding/json"
	"iter"
	"strings"
)

// EnumerateDomain yields every live entity of domain, wrapped by wrap.
// The sequence reads the context when iterated, not when created.
func EnumerateDomain[T any](haContext HaContext, domain string, wrap func(EntityCore) T) iter.Seq[T] {
	return enumerate(haContext, domain, wrap, func(string) bool { return true })
}

// EnumerateNumericDomain yields the live entities of domain that report a
// unit of measurement.
func EnumerateNumericDomain[T any](haContext HaContext, domain string, wrap func(EntityCore) T) iter.Seq[T] {
	return enumerate(haContext, domain, wrap, func(id string) bool {
		return hasUnitOfMeasurement(haContext.GetState(id))
	})
}

func enumerate[T any](haContext HaContext, domain string, wrap func(EntityCore) T, keep func(string) bool) iter.Seq[T] {
	prefix := domain + "."
	return func(yield func(T) bool) {
		for _, id := range haContext.EntityIDs() {
			if !strings.HasPrefix(id, prefix) || !keep(id) {
				continue
			}
			if !yield(wrap(NewEntity[struct{}](haContext, id))) {
				return
			}
		}
	}
}

func hasUnitOfMeasurement(raw *RawState) bool {
	if raw == nil || len(raw.Attributes) == 0 {
		return false
	}
	var attrs struct {
		UnitOfMeasurement *string `json:"unit_of_measurement"`
	}
	if err := json.Unmarshal(raw.Attributes, &attrs); err != nil {
		return false
	}
	return attrs.UnitOfMeasurement != nil
}
