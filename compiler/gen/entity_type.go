package gen

// entityRecord declares the typed handle of a metadata entry.
func entityRecord(g *Group, e *Entry) *Record {
	r := &Record{
		Kind:          EntityRecord,
		Name:          e.EntityType,
		GroupKey:      g.Key,
		Domain:        g.Domain,
		Base:          RuntimeEntity,
		State:         RuntimeEntityState,
		StateAlias:    e.EntityType + "State",
		Attributes:    e.AttributesType,
		CoreInterface: e.Metadata.CoreInterfaceName,
		Constructors: []Constructor{
			{Name: ConstructorName(e.EntityType)},
			{Name: FromCoreName(e.EntityType), FromCore: true},
		},
	}
	if e.Numeric() {
		r.Base, r.State = RuntimeNumericEntity, RuntimeNumericEntityState
	}
	return r
}
