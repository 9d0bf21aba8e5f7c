package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/hassgen/compiler/gen"
)

// contextField is the field holding the shared accessor context.
const contextField = "haContext"

// genInterface generates the root aggregation interface.
func genInterface(f *jen.File, d *gen.Interface) {
	f.Commentf("%s gives typed access to the entities of every domain.", d.Name)
	f.Type().Id(d.Name).InterfaceFunc(func(g *jen.Group) {
		for _, p := range d.Properties {
			g.Id(p.Name).Params().Op("*").Id(p.Type.Name)
		}
	})
	f.Line()
}

// genClass generates a struct bound to the accessor context, its
// constructor, its enumeration methods and its property accessors.
func genClass(f *jen.File, rt string, d *gen.Class) {
	if d.Domain != "" {
		f.Commentf("%s gives typed access to the %s entities.", d.Name, d.Domain)
	} else {
		f.Commentf("%s gives typed access to all entities through a shared context.", d.Name)
	}
	f.Type().Id(d.Name).Struct(
		jen.Id(contextField).Qual(rt, gen.RuntimeContext),
	)
	f.Line()

	ctor := gen.ConstructorName(d.Name)
	f.Commentf("%s returns a %s bound to haContext.", ctor, d.Name)
	f.Func().Id(ctor).Params(jen.Id(contextField).Qual(rt, gen.RuntimeContext)).Op("*").Id(d.Name).Block(
		jen.Return(jen.Op("&").Id(d.Name).Values(jen.Dict{
			jen.Id(contextField): jen.Id(contextField),
		})),
	)
	f.Line()

	if d.Implements != "" {
		assertImpl(f, jen.Id(d.Implements), d.Name)
		f.Line()
	}

	for _, m := range d.Methods {
		switch m.Kind {
		case gen.RuntimeEnumeration:
			genRuntimeEnumeration(f, rt, d, m)
		case gen.GeneratedEnumeration:
			genGeneratedEnumeration(f, rt, d, m)
		}
	}
	for _, p := range d.Properties {
		genProperty(f, d, p)
	}
}

// genRuntimeEnumeration generates an accessor over the live entities of the
// domain:
//
//	func (e *SensorEntities) EnumerateAll() iter.Seq[*SensorEntity] {
//		return hassmodel.EnumerateDomain(e.haContext, "sensor", SensorEntityFromCore)
//	}
func genRuntimeEnumeration(f *jen.File, rt string, d *gen.Class, m *gen.Method) {
	helper := "EnumerateDomain"
	if m.NumericOnly {
		helper = "EnumerateNumericDomain"
		f.Commentf("%s yields every live %s entity that reports a unit of measurement.", m.Name, m.Domain)
	} else {
		f.Commentf("%s yields every live %s entity.", m.Name, m.Domain)
	}
	f.Func().Params(jen.Id("e").Op("*").Id(d.Name)).Id(m.Name).Params().
		Qual("iter", "Seq").Types(typeRef(rt, m.Elem)).
		Block(
			jen.Return(jen.Qual(rt, helper).Call(
				jen.Id("e").Dot(contextField),
				jen.Lit(m.Domain),
				jen.Id(gen.FromCoreName(m.Wrap)),
			)),
		)
	f.Line()
}

// genGeneratedEnumeration generates an accessor over the entities known at
// generation time:
//
//	func (e *LightEntities) EnumerateAllGenerated() iter.Seq[*LightEntity] {
//		return func(yield func(*LightEntity) bool) {
//			if !yield(e.Kitchen()) {
//				return
//			}
//		}
//	}
func genGeneratedEnumeration(f *jen.File, rt string, d *gen.Class, m *gen.Method) {
	f.Commentf("%s yields the %s entities known at generation time.", m.Name, d.Domain)
	elem := typeRef(rt, m.Elem)
	f.Func().Params(jen.Id("e").Op("*").Id(d.Name)).Id(m.Name).Params().
		Qual("iter", "Seq").Types(elem).
		Block(
			jen.Return(jen.Func().Params(jen.Id("yield").Func().Params(elem).Bool()).BlockFunc(func(g *jen.Group) {
				for _, name := range m.Yields {
					g.If(jen.Op("!").Id("yield").Call(jen.Id("e").Dot(name).Call())).Block(jen.Return())
				}
			})),
		)
	f.Line()
}

// genProperty generates an accessor that builds a fresh value bound to the
// shared context.
func genProperty(f *jen.File, d *gen.Class, p *gen.Property) {
	args := []jen.Code{jen.Id("e").Dot(contextField)}
	switch {
	case p.New.EntityID == "":
		f.Commentf("%s returns the %s.", p.Name, p.New.Type)
	case p.FriendlyName != "":
		f.Commentf("%s returns the %q entity (%s).", p.Name, p.FriendlyName, p.New.EntityID)
	default:
		f.Commentf("%s returns the %s entity.", p.Name, p.New.EntityID)
	}
	if p.New.EntityID != "" {
		args = append(args, jen.Lit(p.New.EntityID))
	}
	f.Func().Params(jen.Id("e").Op("*").Id(d.Name)).Id(p.Name).Params().Op("*").Id(p.Type.Name).Block(
		jen.Return(jen.Id(gen.ConstructorName(p.New.Type)).Call(args...)),
	)
	f.Line()
}
