package gen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/syssam/hassgen/compiler/load"
)

// Entry is one metadata entry with its resolved names.
type Entry struct {
	Metadata *load.EntityDomainMetadata
	// EntityType and AttributesType are the resolved record names.
	EntityType     string
	AttributesType string
	// Properties holds one accessor per entity, in input order.
	Properties []*Property

	group *Group
}

// Numeric reports whether the entry uses the numeric base family.
func (e *Entry) Numeric() bool { return e.Metadata.IsNumeric }

// Group is the set of entries sharing a grouping key. All entries of a group
// share one domain.
type Group struct {
	Key      string
	Domain   string
	Property string
	Entries  []*Entry
}

// Properties returns the accessors of all entries in order.
func (g *Group) Properties() []*Property {
	var props []*Property
	for _, e := range g.Entries {
		props = append(props, e.Properties...)
	}
	return props
}

// errorf returns a MetadataError scoped to the group.
func (g *Group) errorf(entity, format string, args ...any) *MetadataError {
	return NewMetadataError(g.Domain, g.Key, entity, fmt.Sprintf(format, args...))
}

// reservedMethods are the method names a domain struct may declare besides
// its entity accessors.
var reservedMethods = map[string]struct{}{
	"EnumerateAll":                    {},
	"EnumerateAllNumeric":             {},
	"EnumerateAllGenerated":           {},
	"EnumerateAllNumericGenerated":    {},
	"EnumerateAllNonNumericGenerated": {},
}

// model is the validated, name-resolved view of the input.
type model struct {
	namer   *Namer
	entries []*Entry
	groups  []*Group
}

// buildModel groups entries by their grouping key in first-seen order and
// checks every invariant that does not depend on the enumeration strategy.
func buildModel(namer *Namer, metadata []*load.EntityDomainMetadata) (*model, error) {
	m := &model{namer: namer}
	byKey := make(map[string]*Group)
	keyOfDomain := make(map[string]string)
	domainOfProperty := make(map[string]string)
	for i, md := range metadata {
		if md == nil {
			return nil, NewMetadataError("", "", "", "entry "+strconv.Itoa(i)+" is nil")
		}
		if md.Domain == "" {
			return nil, NewMetadataError("", md.EntitiesForDomainClassName, "", "entry "+strconv.Itoa(i)+" has an empty domain")
		}
		property := namer.DomainToPropertyName(md.Domain)
		if property == "" {
			return nil, NewMetadataError(md.Domain, "", "", "domain does not yield a Go identifier")
		}
		key := md.EntitiesForDomainClassName
		if key == "" {
			key = namer.DomainToClassName(md.Domain)
		}
		g, ok := byKey[key]
		switch {
		case !ok:
			if prev, seen := keyOfDomain[md.Domain]; seen {
				return nil, NewMetadataError(md.Domain, key, "", "domain is already grouped under "+prev)
			}
			if other, taken := domainOfProperty[property]; taken {
				return nil, NewMetadataError(md.Domain, key, "", "domain "+other+" maps to the same property name "+property)
			}
			g = &Group{Key: key, Domain: md.Domain, Property: property}
			byKey[key] = g
			keyOfDomain[md.Domain] = key
			domainOfProperty[property] = md.Domain
			m.groups = append(m.groups, g)
		case g.Domain != md.Domain:
			return nil, g.errorf("", "entry for domain %s shares the grouping key", md.Domain)
		}
		e := &Entry{
			Metadata:       md,
			EntityType:     md.EntityClassName,
			AttributesType: md.AttributesClassName,
			group:          g,
		}
		if e.EntityType == "" {
			e.EntityType = namer.EntityClassName(md.Domain, md.IsNumeric)
		}
		if e.AttributesType == "" {
			e.AttributesType = namer.AttributesClassName(md.Domain, md.IsNumeric)
		}
		g.Entries = append(g.Entries, e)
		m.entries = append(m.entries, e)
	}
	for _, g := range m.groups {
		if err := m.resolveProperties(g); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// resolveProperties assigns accessor names. Explicit names are claimed first
// and must be unique; derived names are disambiguated by numeric suffix in
// input order.
func (m *model) resolveProperties(g *Group) error {
	type pending struct {
		entry  *Entry
		entity *load.EntityMetaData
		name   string
	}
	var (
		all   []*pending
		taken = make(map[string]struct{})
		ids   = make(map[string]struct{})
	)
	for _, e := range g.Entries {
		for j, ent := range e.Metadata.Entities {
			if ent == nil {
				return g.errorf("", "entity entry %d of %s is nil", j, e.EntityType)
			}
			if ent.ID == "" {
				return g.errorf("", "entity with empty id in %s", e.EntityType)
			}
			if _, dup := ids[ent.ID]; dup {
				return g.errorf(ent.ID, "duplicate entity id")
			}
			ids[ent.ID] = struct{}{}
			name, explicit, err := m.namer.EntityAccessorName(g.Domain, ent)
			if err != nil {
				var mdErr *MetadataError
				if errors.As(err, &mdErr) {
					mdErr.Group = g.Key
				}
				return err
			}
			p := &pending{entry: e, entity: ent}
			if explicit {
				if _, reserved := reservedMethods[name]; reserved {
					return g.errorf(ent.ID, "accessor name %s is reserved", name)
				}
				if _, dup := taken[name]; dup {
					return g.errorf(ent.ID, "duplicate accessor name %s", name)
				}
				taken[name] = struct{}{}
				p.name = name
			}
			all = append(all, p)
		}
	}
	for _, p := range all {
		if p.name != "" {
			continue
		}
		name, _, _ := m.namer.EntityAccessorName(g.Domain, p.entity)
		p.name = unique(name, taken)
		taken[p.name] = struct{}{}
	}
	for _, p := range all {
		p.entry.Properties = append(p.entry.Properties, &Property{
			Name:         p.name,
			Type:         Local(p.entry.EntityType),
			New:          NewExpr{Type: p.entry.EntityType, EntityID: p.entity.ID},
			FriendlyName: p.entity.FriendlyName,
		})
	}
	return nil
}

// unique returns name, or name with the smallest numeric suffix from 2 that
// is neither taken nor reserved.
func unique(name string, taken map[string]struct{}) string {
	free := func(s string) bool {
		_, used := taken[s]
		_, reserved := reservedMethods[s]
		return !used && !reserved
	}
	if free(name) {
		return name
	}
	for i := 2; ; i++ {
		if s := name + strconv.Itoa(i); free(s) {
			return s
		}
	}
}
