package gen

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/syssam/hassgen/compiler/load"
)

// acronyms upper-cased as a whole word by default.
var defaultAcronyms = []string{
	"API", "CO2", "HTTP", "HVAC", "ID", "IP", "JSON", "LED", "RGB", "TV", "URL", "USB", "UV",
}

var defaultNamer = NewNamer()

// Namer turns platform names into Go identifiers. A Namer is immutable once
// built and safe for concurrent use.
type Namer struct {
	rules *inflect.Ruleset
}

// NewNamer returns a Namer that knows the default acronyms plus extra.
func NewNamer(extra ...string) *Namer {
	n := &Namer{rules: inflect.NewDefaultRuleset()}
	for _, w := range append(append([]string(nil), defaultAcronyms...), extra...) {
		n.rules.AddAcronym(strings.ToUpper(w))
	}
	return n
}

// Pascal converts s to PascalCase using the default Namer.
func Pascal(s string) string { return defaultNamer.Pascal(s) }

// DomainToClassName returns the domain struct name of a domain using the
// default Namer ("light" becomes "LightEntities").
func DomainToClassName(domain string) string { return defaultNamer.DomainToClassName(domain) }

// DomainToPropertyName returns the root accessor name of a domain using the
// default Namer ("binary_sensor" becomes "BinarySensor").
func DomainToPropertyName(domain string) string { return defaultNamer.DomainToPropertyName(domain) }

// Pascal converts s to PascalCase. Words are separated by '_', '-', '.' and
// spaces; diacritics are folded and characters not valid in identifiers are
// dropped. Registered acronyms are upper-cased as a whole.
func (n *Namer) Pascal(s string) string {
	words := strings.FieldsFunc(fold(s), func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})
	var b strings.Builder
	for _, w := range words {
		w = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, w)
		if w == "" {
			continue
		}
		if upper := strings.ToUpper(w); n.isAcronym(upper) {
			b.WriteString(upper)
			continue
		}
		b.WriteString(n.capitalize(w))
	}
	return b.String()
}

// DomainToClassName returns Pascal(domain) + "Entities".
func (n *Namer) DomainToClassName(domain string) string {
	return n.DomainToPropertyName(domain) + "Entities"
}

// DomainToPropertyName returns Pascal(domain).
func (n *Namer) DomainToPropertyName(domain string) string {
	return exported("Domain", n.Pascal(domain))
}

// EntityClassName returns the default entity record name of a domain.
func (n *Namer) EntityClassName(domain string, numeric bool) string {
	name := n.DomainToPropertyName(domain) + "Entity"
	if numeric {
		name = "Numeric" + name
	}
	return name
}

// AttributesClassName returns the default attribute record name of a domain.
func (n *Namer) AttributesClassName(domain string, numeric bool) string {
	name := n.DomainToPropertyName(domain) + "Attributes"
	if numeric {
		name = "Numeric" + name
	}
	return name
}

// EntityAccessorName returns the accessor name of an entity. An explicit
// Name is used as is and reported with explicit set; otherwise the name is
// derived from the object part of the entity id, falling back to the
// friendly name.
func (n *Namer) EntityAccessorName(domain string, e *load.EntityMetaData) (name string, explicit bool, err error) {
	if e.Name != "" {
		if !token.IsIdentifier(e.Name) || !token.IsExported(e.Name) {
			return "", true, invalidIdentError(domain, "", e.ID, "accessor name", e.Name)
		}
		return e.Name, true, nil
	}
	prefix := n.DomainToPropertyName(domain)
	_, object, found := strings.Cut(e.ID, ".")
	if !found {
		object = e.ID
	}
	if name := n.Pascal(object); name != "" {
		return exported(prefix, name), false, nil
	}
	if name := n.Pascal(e.FriendlyName); name != "" {
		return exported(prefix, name), false, nil
	}
	return prefix + "Entity", false, nil
}

// FieldName returns the Go field name of an attribute.
func (n *Namer) FieldName(a *load.AttributeMetaData) string {
	if a.Name != "" {
		return a.Name
	}
	return exported("Attr", n.Pascal(a.JSONName))
}

// isAcronym reports whether the upper-cased word is a registered acronym.
// The ruleset splits an all-caps word at every letter unless an acronym rule
// folds the word into a single one ("HVAC" becomes "hvac", "ABC" "a_b_c").
func (n *Namer) isAcronym(upper string) bool {
	return !strings.Contains(n.rules.Underscore(upper), "_")
}

func (n *Namer) capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r < utf8.RuneSelf {
		return n.rules.Capitalize(w)
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// exported prefixes name when it does not start with an upper-case letter,
// e.g. names that start with a digit.
func exported(prefix, name string) string {
	if name == "" || token.IsExported(name) {
		return name
	}
	return prefix + name
}

// fold strips diacritics ("Küche" becomes "Kuche").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
