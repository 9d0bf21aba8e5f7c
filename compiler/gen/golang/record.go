package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/hassgen/compiler/gen"
	"github.com/syssam/hassgen/compiler/load"
)

// genEntityRecord generates the typed handle of a metadata entry: the struct
// embedding the runtime base, its state alias, the core interface assertion
// and both constructors.
func genEntityRecord(f *jen.File, rt string, d *gen.Record) {
	attrs := jen.Id(d.Attributes)
	base := jen.Qual(rt, d.Base).Types(attrs)

	if d.Numeric() {
		f.Commentf("%s is a typed handle on a numeric %s entity.", d.Name, d.Domain)
	} else {
		f.Commentf("%s is a typed handle on a %s entity.", d.Name, d.Domain)
	}
	f.Type().Id(d.Name).Struct(jen.Op("*").Add(base))
	f.Line()

	f.Commentf("%s is the state of a %s.", d.StateAlias, d.Name)
	f.Type().Id(d.StateAlias).Op("=").Qual(rt, d.State).Types(attrs)
	f.Line()

	if d.CoreInterface != "" {
		assertImpl(f, jen.Qual(rt, d.CoreInterface), d.Name)
		f.Line()
	}

	for _, c := range d.Constructors {
		if c.FromCore {
			f.Commentf("%s wraps an existing entity handle as a %s.", c.Name, d.Name)
			f.Func().Id(c.Name).Params(jen.Id("entity").Qual(rt, gen.RuntimeEntityCore)).Op("*").Id(d.Name).Block(
				jen.Return(jen.Op("&").Id(d.Name).Values(jen.Dict{
					jen.Id(d.Base): jen.Qual(rt, d.Base+"FromCore").Types(attrs).Call(jen.Id("entity")),
				})),
			)
		} else {
			f.Commentf("%s returns a %s bound to entityID.", c.Name, d.Name)
			f.Func().Id(c.Name).Params(
				jen.Id("haContext").Qual(rt, gen.RuntimeContext),
				jen.Id("entityID").String(),
			).Op("*").Id(d.Name).Block(
				jen.Return(jen.Op("&").Id(d.Name).Values(jen.Dict{
					jen.Id(d.Base): jen.Qual(rt, "New"+d.Base).Types(attrs).Call(jen.Id("haContext"), jen.Id("entityID")),
				})),
			)
		}
		f.Line()
	}
}

// genAttributesRecord generates the attribute payload of a metadata entry.
func genAttributesRecord(f *jen.File, d *gen.Record) {
	f.Commentf("%s holds the attributes of a %s entity.", d.Name, d.Domain)
	f.Type().Id(d.Name).StructFunc(func(g *jen.Group) {
		for _, fd := range d.Fields {
			g.Id(fd.Name).Add(fieldType(fd.Type)).Tag(map[string]string{
				"json": fd.JSONName + ",omitempty",
			})
		}
	})
	f.Line()
}

// fieldType returns the Go type of an attribute field. Scalars are pointers
// so that an absent attribute is distinguishable from its zero value.
func fieldType(t load.AttributeType) jen.Code {
	switch t {
	case load.TypeString:
		return jen.Op("*").String()
	case load.TypeNumber:
		return jen.Op("*").Float64()
	case load.TypeInteger:
		return jen.Op("*").Int64()
	case load.TypeBool:
		return jen.Op("*").Bool()
	case load.TypeList:
		return jen.Index().Any()
	case load.TypeObject:
		return jen.Map(jen.String()).Any()
	default:
		return jen.Any()
	}
}
