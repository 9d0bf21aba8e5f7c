package gen

import (
	"go/token"

	"github.com/syssam/hassgen/compiler/load"
)

// Generate maps entity-domain metadata to the declarations of the typed
// accessor API. Output order is: root interface, root struct, one domain
// struct per group in first-seen order, then for every metadata entry its
// entity record followed by its attribute record.
//
// Generate is a pure function of cfg and metadata. A nil cfg means
// DefaultConfig. Every invariant violation is reported as a *MetadataError
// and no declarations are returned.
func Generate(cfg *Config, metadata []*load.EntityDomainMetadata) ([]Decl, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	namer := NewNamer(cfg.Acronyms...)
	m, err := buildModel(namer, metadata)
	if err != nil {
		return nil, err
	}
	for _, g := range m.groups {
		if err := cfg.Strategy(g.Domain).Validate(g); err != nil {
			return nil, err
		}
	}
	iface, class := cfg.rootNames()
	props := rootProperties(m.groups)
	decls := make([]Decl, 0, 2+len(m.groups)+2*len(m.entries))
	decls = append(decls,
		&Interface{Name: iface, Properties: props},
		&Class{Name: class, Implements: iface, Properties: props},
	)
	runtime := cfg.HasFeature(FeatureRuntimeEnumeration.Name)
	for _, g := range m.groups {
		decls = append(decls, domainClass(cfg.Strategy(g.Domain), g, runtime))
	}
	for _, e := range m.entries {
		attrs, err := attributesRecord(namer, e.group, e)
		if err != nil {
			return nil, err
		}
		decls = append(decls, entityRecord(e.group, e), attrs)
	}
	if err := checkIdents(decls); err != nil {
		return nil, err
	}
	return decls, nil
}

// rootProperties returns one accessor per domain, each building a fresh
// domain struct bound to the shared context.
func rootProperties(groups []*Group) []*Property {
	props := make([]*Property, 0, len(groups))
	for _, g := range groups {
		props = append(props, &Property{
			Name: g.Property,
			Type: Local(g.Key),
			New:  NewExpr{Type: g.Key},
		})
	}
	return props
}

// domainClass declares the struct of a group: runtime enumeration first,
// then generated enumeration, then one accessor per entity.
func domainClass(s EnumerationStrategy, g *Group, runtime bool) *Class {
	c := &Class{
		Name:       g.Key,
		GroupKey:   g.Key,
		Domain:     g.Domain,
		Properties: g.Properties(),
	}
	if runtime {
		c.Methods = append(c.Methods, s.Runtime(g)...)
	}
	c.Methods = append(c.Methods, s.Generated(g)...)
	return c
}

// checkIdents verifies that every package-level identifier the declarations
// introduce is a valid exported Go identifier declared once.
func checkIdents(decls []Decl) error {
	seen := make(map[string]struct{})
	claim := func(d Decl, name string) error {
		domain := ""
		switch d := d.(type) {
		case *Class:
			domain = d.Domain
		case *Record:
			domain = d.Domain
		}
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return invalidIdentError(domain, d.Group(), "", "type name", name)
		}
		if _, dup := seen[name]; dup {
			return NewMetadataError(domain, d.Group(), "", "identifier "+name+" is declared more than once")
		}
		seen[name] = struct{}{}
		return nil
	}
	for _, d := range decls {
		names := []string{d.Ident()}
		switch d := d.(type) {
		case *Class:
			names = append(names, ConstructorName(d.Name))
		case *Record:
			if d.Kind == EntityRecord {
				names = append(names, d.StateAlias)
				for _, c := range d.Constructors {
					names = append(names, c.Name)
				}
				if d.CoreInterface != "" && !token.IsIdentifier(d.CoreInterface) {
					return NewMetadataError(d.Domain, d.GroupKey, "", "core interface "+d.CoreInterface+" is not a Go identifier")
				}
			}
		}
		for _, name := range names {
			if err := claim(d, name); err != nil {
				return err
			}
		}
	}
	return nil
}
