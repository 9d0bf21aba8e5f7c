package gen

import "github.com/syssam/hassgen/compiler/load"

// Decl is a declaration produced by Generate. The concrete type is one of
// *Interface, *Class or *Record.
type Decl interface {
	// Ident returns the declared type name.
	Ident() string
	// Group returns the grouping key the declaration originates from, or ""
	// for the root declarations.
	Group() string
	decl()
}

// TypeRef references a type by name, either declared by Generate or
// exported by the runtime package.
type TypeRef struct {
	Name    string
	Runtime bool
}

// Local references a generated type.
func Local(name string) TypeRef { return TypeRef{Name: name} }

// RuntimeType references a type of the runtime package.
func RuntimeType(name string) TypeRef { return TypeRef{Name: name, Runtime: true} }

// Names of runtime package identifiers referenced by declarations.
const (
	RuntimeContext            = "HaContext"
	RuntimeEntityCore         = "EntityCore"
	RuntimeEntity             = "Entity"
	RuntimeNumericEntity      = "NumericEntity"
	RuntimeEntityState        = "EntityState"
	RuntimeNumericEntityState = "NumericEntityState"
)

// Property is a read-only accessor that builds a fresh value on every call.
type Property struct {
	// Name of the accessor method.
	Name string
	// Type is the type the accessor returns (as a pointer).
	Type TypeRef
	// New describes how the value is constructed.
	New NewExpr
	// FriendlyName is used in the doc comment, if set.
	FriendlyName string
}

// NewExpr constructs Type from the shared accessor context and, for entity
// records, the bound entity id.
type NewExpr struct {
	Type     string
	EntityID string
}

// MethodKind distinguishes enumeration accessors.
type MethodKind int

const (
	// GeneratedEnumeration yields a fixed list of properties known at
	// generation time.
	GeneratedEnumeration MethodKind = iota + 1
	// RuntimeEnumeration yields the live entities of a domain reported by the
	// accessor context.
	RuntimeEnumeration
)

// Method is an enumeration accessor returning a lazy, restartable sequence.
type Method struct {
	Kind MethodKind
	Name string
	// Elem is the element type of the sequence.
	Elem TypeRef
	// Yields lists property names in yield order (GeneratedEnumeration).
	Yields []string
	// Domain, Wrap and NumericOnly configure a RuntimeEnumeration. Wrap is
	// the entity record whose FromCore constructor wraps each live entity.
	Domain      string
	Wrap        string
	NumericOnly bool
}

// Interface is the root aggregation interface.
type Interface struct {
	Name       string
	Properties []*Property
}

// Class is a struct holding the shared accessor context.
type Class struct {
	Name     string
	GroupKey string
	Domain   string
	// Implements names the interface the class satisfies, if any.
	Implements string
	Methods    []*Method
	Properties []*Property
}

// RecordKind distinguishes the two record declarations emitted per
// metadata entry.
type RecordKind int

const (
	// EntityRecord is the typed per-entity handle.
	EntityRecord RecordKind = iota + 1
	// AttributesRecord is the attribute payload of an entity record.
	AttributesRecord
)

// Constructor describes a constructor function of an entity record.
type Constructor struct {
	Name string
	// FromCore constructors take an existing EntityCore instead of a
	// context and an entity id.
	FromCore bool
}

// Field is a field of an attribute record.
type Field struct {
	Name     string
	JSONName string
	Type     load.AttributeType
}

// Record is a per-entry type declaration.
type Record struct {
	Kind     RecordKind
	Name     string
	GroupKey string
	Domain   string

	// Entity record settings.
	Base          string // RuntimeEntity or RuntimeNumericEntity
	State         string // RuntimeEntityState or RuntimeNumericEntityState
	StateAlias    string // name of the state alias, e.g. "LightEntityState"
	Attributes    string // attribute record type argument
	CoreInterface string // runtime interface the record implements, if any
	Constructors  []Constructor

	// Attribute record fields.
	Fields []*Field
}

// Numeric reports whether an entity record derives from the numeric family.
func (r *Record) Numeric() bool { return r.Base == RuntimeNumericEntity }

func (d *Interface) Ident() string { return d.Name }
func (d *Class) Ident() string     { return d.Name }
func (d *Record) Ident() string    { return d.Name }

func (*Interface) Group() string { return "" }
func (d *Class) Group() string   { return d.GroupKey }
func (d *Record) Group() string  { return d.GroupKey }

func (*Interface) decl() {}
func (*Class) decl()     {}
func (*Record) decl()    {}

// ConstructorName returns the name of the constructor of a class.
func ConstructorName(class string) string { return "New" + class }

// FromCoreName returns the name of the FromCore constructor of an entity record.
func FromCoreName(record string) string { return record + "FromCore" }
