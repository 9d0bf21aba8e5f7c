package gen

// EnumerationStrategy decides which enumeration accessors a domain struct
// declares. Strategies are registered per domain on the Config.
type EnumerationStrategy interface {
	// Name identifies the strategy in logs and errors.
	Name() string
	// Validate checks the strategy's structural requirements on the group.
	Validate(g *Group) error
	// Generated returns the accessors yielding the entities known at
	// generation time.
	Generated(g *Group) []*Method
	// Runtime returns the accessors yielding the live entities of the domain.
	Runtime(g *Group) []*Method
}

// ConcatStrategy enumerates every entity of every entry of the group in
// input order under a single EnumerateAllGenerated accessor.
type ConcatStrategy struct{}

// Name implements EnumerationStrategy.
func (ConcatStrategy) Name() string { return "concat" }

// Validate implements EnumerationStrategy.
func (ConcatStrategy) Validate(*Group) error { return nil }

// Generated implements EnumerationStrategy.
func (ConcatStrategy) Generated(g *Group) []*Method {
	return []*Method{generatedMethod("EnumerateAllGenerated", g.Entries...)}
}

// Runtime implements EnumerationStrategy.
func (ConcatStrategy) Runtime(g *Group) []*Method {
	wrap := g.Entries[0]
	for _, e := range g.Entries {
		if !e.Numeric() {
			wrap = e
			break
		}
	}
	return []*Method{runtimeMethod("EnumerateAll", g.Domain, wrap, false)}
}

// NumericSplitStrategy enumerates the numeric and the non-numeric entry of a
// group separately. The group must hold exactly one entry of each kind.
type NumericSplitStrategy struct{}

// Name implements EnumerationStrategy.
func (NumericSplitStrategy) Name() string { return "numeric-split" }

// Validate implements EnumerationStrategy.
func (NumericSplitStrategy) Validate(g *Group) error {
	if len(g.Entries) != 2 {
		return g.errorf("", "numeric split requires exactly one numeric and one non-numeric entry, got %d entries", len(g.Entries))
	}
	numeric, other := split(g)
	if numeric == nil || other == nil {
		return g.errorf("", "numeric split requires exactly one numeric and one non-numeric entry")
	}
	ids := make(map[string]struct{}, len(numeric.Metadata.Entities))
	for _, e := range numeric.Metadata.Entities {
		ids[e.ID] = struct{}{}
	}
	for _, e := range other.Metadata.Entities {
		if _, dup := ids[e.ID]; dup {
			return g.errorf(e.ID, "entity is listed as both numeric and non-numeric")
		}
	}
	return nil
}

// Generated implements EnumerationStrategy.
func (NumericSplitStrategy) Generated(g *Group) []*Method {
	numeric, other := split(g)
	return []*Method{
		generatedMethod("EnumerateAllNumericGenerated", numeric),
		generatedMethod("EnumerateAllNonNumericGenerated", other),
	}
}

// Runtime implements EnumerationStrategy.
func (NumericSplitStrategy) Runtime(g *Group) []*Method {
	numeric, other := split(g)
	return []*Method{
		runtimeMethod("EnumerateAll", g.Domain, other, false),
		runtimeMethod("EnumerateAllNumeric", g.Domain, numeric, true),
	}
}

// split returns the numeric and the non-numeric entry of a validated group.
func split(g *Group) (numeric, other *Entry) {
	for _, e := range g.Entries {
		switch {
		case e.Numeric() && numeric == nil:
			numeric = e
		case !e.Numeric() && other == nil:
			other = e
		}
	}
	return numeric, other
}

func generatedMethod(name string, entries ...*Entry) *Method {
	m := &Method{Kind: GeneratedEnumeration, Name: name, Elem: elemOf(entries)}
	for _, e := range entries {
		for _, p := range e.Properties {
			m.Yields = append(m.Yields, p.Name)
		}
	}
	return m
}

func runtimeMethod(name, domain string, wrap *Entry, numericOnly bool) *Method {
	return &Method{
		Kind:        RuntimeEnumeration,
		Name:        name,
		Elem:        Local(wrap.EntityType),
		Domain:      domain,
		Wrap:        wrap.EntityType,
		NumericOnly: numericOnly,
	}
}

// elemOf returns the shared entity record of entries, or the runtime
// EntityCore when the entries disagree.
func elemOf(entries []*Entry) TypeRef {
	for _, e := range entries[1:] {
		if e.EntityType != entries[0].EntityType {
			return RuntimeType(RuntimeEntityCore)
		}
	}
	return Local(entries[0].EntityType)
}
