package gen

import "github.com/dave/jennifer/jen"

// Emitter renders declarations into Go source.
//
// Architecture:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                        Generator                            │
//	│  (Orchestration: layout, parallel rendering, file writing)  │
//	└─────────────────────────┬───────────────────────────────────┘
//	                          │ calls Generate, then
//	                          ▼
//	┌─────────────────────────────────────────────────────────────┐
//	│                         Emitter                             │
//	│  (Interface: turns []Decl into one *jen.File)               │
//	└─────────────────────────┬───────────────────────────────────┘
//	                          │ implemented by
//	                          ▼
//	                 ┌─────────────────┐
//	                 │ golang.Emitter  │
//	                 │ (gen/golang)    │
//	                 └─────────────────┘
//
// Usage:
//
//	import "github.com/syssam/hassgen/compiler/gen/golang"
//
//	generator := gen.NewGenerator(cfg)
//	generator.WithEmitter(golang.NewEmitter(generator))
//	generator.Generate(ctx, metadata)
type Emitter interface {
	// Name returns the emitter name (e.g., "golang").
	Name() string
	// Emit renders decls, in order, into a single file.
	Emit(decls []Decl) (*jen.File, error)
}

// GeneratorHelper provides helper methods for emitter implementations.
// Generator implements this interface, allowing emitter packages to use
// the configuration without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile() *jen.File

	// Pkg returns the output package name.
	Pkg() string

	// RuntimePkg returns the import path of the runtime base types.
	RuntimePkg() string

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool
}
