package load

// Metadata is the envelope of a metadata snapshot produced by the collector.
// A snapshot may also be a bare list of domains, in which case PlatformVersion
// is left empty.
type Metadata struct {
	PlatformVersion string                  `json:"platform_version,omitempty" yaml:"platform_version,omitempty" msgpack:"platform_version,omitempty"`
	Domains         []*EntityDomainMetadata `json:"domains" yaml:"domains" msgpack:"domains"`
}

// EntityDomainMetadata describes one family of entities of a platform domain.
// Several entries may share EntitiesForDomainClassName, in which case they are
// merged into one generated domain struct.
type EntityDomainMetadata struct {
	// Domain is the platform domain key, e.g. "light" or "sensor".
	Domain string `json:"domain" yaml:"domain" msgpack:"domain"`
	// IsNumeric selects the numeric base family for the entity record.
	IsNumeric bool `json:"is_numeric,omitempty" yaml:"is_numeric,omitempty" msgpack:"is_numeric,omitempty"`
	// EntityClassName is the name of the generated entity record.
	EntityClassName string `json:"entity_class_name,omitempty" yaml:"entity_class_name,omitempty" msgpack:"entity_class_name,omitempty"`
	// AttributesClassName is the name of the generated attribute record.
	AttributesClassName string `json:"attributes_class_name,omitempty" yaml:"attributes_class_name,omitempty" msgpack:"attributes_class_name,omitempty"`
	// EntitiesForDomainClassName is the grouping key and the name of the
	// generated domain struct.
	EntitiesForDomainClassName string `json:"entities_for_domain_class_name,omitempty" yaml:"entities_for_domain_class_name,omitempty" msgpack:"entities_for_domain_class_name,omitempty"`
	// CoreInterfaceName is an optional runtime interface the entity record implements.
	CoreInterfaceName string `json:"core_interface_name,omitempty" yaml:"core_interface_name,omitempty" msgpack:"core_interface_name,omitempty"`
	// Entities in collector order.
	Entities []*EntityMetaData `json:"entities,omitempty" yaml:"entities,omitempty" msgpack:"entities,omitempty"`
	// Attributes is the resolved attribute schema, if the collector provided one.
	Attributes []*AttributeMetaData `json:"attributes,omitempty" yaml:"attributes,omitempty" msgpack:"attributes,omitempty"`
}

// EntityMetaData describes a single entity.
type EntityMetaData struct {
	// ID is the entity id, e.g. "light.kitchen".
	ID string `json:"id" yaml:"id" msgpack:"id"`
	// Name is the accessor name. Derived from ID when empty.
	Name string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	// FriendlyName is the display name reported by the platform.
	FriendlyName string `json:"friendly_name,omitempty" yaml:"friendly_name,omitempty" msgpack:"friendly_name,omitempty"`
}

// AttributeMetaData describes one field of an attribute record.
type AttributeMetaData struct {
	// JSONName is the attribute key in the platform state payload.
	JSONName string `json:"json_name" yaml:"json_name" msgpack:"json_name"`
	// Name is the Go field name. Derived from JSONName when empty.
	Name string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	// Type is one of the AttributeType values.
	Type AttributeType `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
}

// AttributeType is the value kind of an attribute.
type AttributeType string

// Attribute kinds understood by the generator. Anything else is treated as TypeAny.
const (
	TypeString  AttributeType = "string"
	TypeNumber  AttributeType = "number"
	TypeInteger AttributeType = "integer"
	TypeBool    AttributeType = "bool"
	TypeList    AttributeType = "list"
	TypeObject  AttributeType = "object"
	TypeAny     AttributeType = "any"
)

// Known reports whether t is one of the declared attribute kinds.
func (t AttributeType) Known() bool {
	switch t {
	case TypeString, TypeNumber, TypeInteger, TypeBool, TypeList, TypeObject, TypeAny:
		return true
	default:
		return false
	}
}
