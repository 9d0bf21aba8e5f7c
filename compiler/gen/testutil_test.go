package gen

import "github.com/syssam/hassgen/compiler/load"

// lightMetadata returns a single light entry with two entities.
func lightMetadata() []*load.EntityDomainMetadata {
	return []*load.EntityDomainMetadata{
		{
			Domain:                     "light",
			EntityClassName:            "LightEntity",
			AttributesClassName:        "LightAttributes",
			EntitiesForDomainClassName: "LightEntities",
			CoreInterfaceName:          "LightEntityCore",
			Entities: []*load.EntityMetaData{
				{ID: "light.kitchen", Name: "Kitchen", FriendlyName: "Kitchen"},
				{ID: "light.hall", Name: "Hall", FriendlyName: "Hall"},
			},
		},
	}
}

// sensorMetadata returns a numeric and a non-numeric sensor entry.
func sensorMetadata() []*load.EntityDomainMetadata {
	return []*load.EntityDomainMetadata{
		{
			Domain:                     "sensor",
			IsNumeric:                  true,
			EntityClassName:            "NumericSensorEntity",
			AttributesClassName:        "NumericSensorAttributes",
			EntitiesForDomainClassName: "SensorEntities",
			Entities: []*load.EntityMetaData{
				{ID: "sensor.temperature", FriendlyName: "Temperature"},
				{ID: "sensor.humidity", FriendlyName: "Humidity"},
			},
			Attributes: []*load.AttributeMetaData{
				{JSONName: "unit_of_measurement", Type: load.TypeString},
			},
		},
		{
			Domain:                     "sensor",
			EntityClassName:            "SensorEntity",
			AttributesClassName:        "SensorAttributes",
			EntitiesForDomainClassName: "SensorEntities",
			Entities: []*load.EntityMetaData{
				{ID: "sensor.status", FriendlyName: "Status"},
			},
		},
	}
}

// entry builds a metadata entry that relies on derived names.
func entry(domain string, ids ...string) *load.EntityDomainMetadata {
	md := &load.EntityDomainMetadata{Domain: domain}
	for _, id := range ids {
		md.Entities = append(md.Entities, &load.EntityMetaData{ID: id})
	}
	return md
}

func classByName(decls []Decl, name string) *Class {
	for _, d := range decls {
		if c, ok := d.(*Class); ok && c.Name == name {
			return c
		}
	}
	return nil
}

func recordByName(decls []Decl, name string) *Record {
	for _, d := range decls {
		if r, ok := d.(*Record); ok && r.Name == name {
			return r
		}
	}
	return nil
}

func methodNames(c *Class) []string {
	var names []string
	for _, m := range c.Methods {
		names = append(names, m.Name)
	}
	return names
}

func propertyNames(props []*Property) []string {
	var names []string
	for _, p := range props {
		names = append(names, p.Name)
	}
	return names
}

func method(c *Class, name string) *Method {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}
