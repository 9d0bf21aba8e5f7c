// Package golang renders hassgen declarations as Go source with Jennifer.
//
// This package implements the gen.Emitter interface.
//
// Usage:
//
//	import (
//	    "github.com/syssam/hassgen/compiler/gen"
//	    "github.com/syssam/hassgen/compiler/gen/golang"
//	)
//
//	generator := gen.NewGenerator(cfg)
//	generator.WithEmitter(golang.NewEmitter(generator))
//	generator.Generate(ctx, metadata)
//
// Generated code structure:
//
//	{target}/
//	├── entities.go          # Root interface and struct (everything without split)
//	└── {group}.go           # Domain struct, entity and attribute records (split)
package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/hassgen/compiler/gen"
)

// Emitter implements gen.Emitter for Go source.
// An Emitter holds no mutable state and may render files concurrently.
type Emitter struct {
	helper gen.GeneratorHelper
}

// NewEmitter creates a new Go emitter.
// The helper parameter should be a *gen.Generator.
func NewEmitter(helper gen.GeneratorHelper) *Emitter {
	return &Emitter{helper: helper}
}

// Name returns the emitter name.
func (e *Emitter) Name() string {
	return "golang"
}

// Emit renders decls, in order, into one file.
func (e *Emitter) Emit(decls []gen.Decl) (*jen.File, error) {
	f := e.helper.NewFile()
	rt := e.helper.RuntimePkg()
	for _, d := range decls {
		switch d := d.(type) {
		case *gen.Interface:
			genInterface(f, d)
		case *gen.Class:
			genClass(f, rt, d)
		case *gen.Record:
			switch d.Kind {
			case gen.EntityRecord:
				genEntityRecord(f, rt, d)
			case gen.AttributesRecord:
				genAttributesRecord(f, d)
			default:
				return nil, fmt.Errorf("golang: unknown record kind %d of %s", d.Kind, d.Name)
			}
		default:
			return nil, fmt.Errorf("golang: unsupported declaration %T", d)
		}
	}
	return f, nil
}

// Verify Emitter implements gen.Emitter at compile time.
var _ gen.Emitter = (*Emitter)(nil)

// typeRef returns the Go type of a property or sequence element. Generated
// types are referenced by pointer, runtime interfaces by value.
func typeRef(rt string, ref gen.TypeRef) jen.Code {
	if ref.Runtime {
		return jen.Qual(rt, ref.Name)
	}
	return jen.Op("*").Id(ref.Name)
}

// assertImpl renders "var _ iface = (*impl)(nil)".
func assertImpl(f *jen.File, iface jen.Code, impl string) {
	f.Var().Id("_").Add(iface).Op("=").Parens(jen.Op("*").Id(impl)).Call(jen.Nil())
}
