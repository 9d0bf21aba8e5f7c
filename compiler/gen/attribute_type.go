package gen

import (
	"go/token"
	"strconv"
	"strings"

	"github.com/syssam/hassgen/compiler/load"
)

// attributesRecord declares the attribute payload of a metadata entry.
// Without an attribute schema the record is an empty skeleton.
func attributesRecord(n *Namer, g *Group, e *Entry) (*Record, error) {
	r := &Record{
		Kind:     AttributesRecord,
		Name:     e.AttributesType,
		GroupKey: g.Key,
		Domain:   g.Domain,
	}
	var (
		jsonNames = make(map[string]struct{})
		explicit  = make(map[string]struct{})
		taken     = make(map[string]struct{})
	)
	for i, a := range e.Metadata.Attributes {
		if a == nil {
			return nil, g.errorf("", "attribute entry %d of %s is nil", i, r.Name)
		}
		if a.JSONName == "" {
			return nil, g.errorf("", "attribute of %s has an empty json name", r.Name)
		}
		if strings.ContainsAny(a.JSONName, ",\"`") {
			return nil, g.errorf("", "attribute %q of %s is not a valid json key", a.JSONName, r.Name)
		}
		if _, dup := jsonNames[a.JSONName]; dup {
			return nil, g.errorf("", "duplicate attribute %s in %s", a.JSONName, r.Name)
		}
		jsonNames[a.JSONName] = struct{}{}
		if a.Name != "" {
			if !token.IsIdentifier(a.Name) || !token.IsExported(a.Name) {
				return nil, invalidIdentError(g.Domain, g.Key, "", "attribute field name of "+r.Name, a.Name)
			}
			if _, dup := explicit[a.Name]; dup {
				return nil, g.errorf("", "duplicate attribute field name %s in %s", a.Name, r.Name)
			}
			explicit[a.Name] = struct{}{}
			taken[a.Name] = struct{}{}
		}
	}
	for _, a := range e.Metadata.Attributes {
		name := a.Name
		if name == "" {
			name = n.FieldName(a)
			if name == "" {
				return nil, g.errorf("", "attribute %s of %s does not yield a Go identifier", a.JSONName, r.Name)
			}
			name = uniqueField(name, taken)
			taken[name] = struct{}{}
		}
		typ := a.Type
		if !typ.Known() {
			typ = load.TypeAny
		}
		r.Fields = append(r.Fields, &Field{Name: name, JSONName: a.JSONName, Type: typ})
	}
	return r, nil
}

func uniqueField(name string, taken map[string]struct{}) string {
	if _, used := taken[name]; !used {
		return name
	}
	for i := 2; ; i++ {
		s := name + strconv.Itoa(i)
		if _, used := taken[s]; !used {
			return s
		}
	}
}
