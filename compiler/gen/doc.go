// Package gen provides code generation for typed entity accessors.
//
// Given the entity-domain metadata of a home-automation platform, the package
// produces the declarations of a typed accessor API: calling code writes
// entities.Light().Kitchen() instead of passing the string "light.kitchen"
// around.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Metadata snapshot (json, yaml or msgpack)
//	        ↓
//	   load.Metadata
//	        ↓
//	   Generate (pure: metadata → []Decl)
//	        ↓
//	   Emitter (declarations → *jen.File)
//	        ↓
//	   Generator (format, write, remove stale files)
//
// # Key Types
//
// The package provides several key types:
//
//   - Decl: A generated declaration, one of *Interface, *Class or *Record
//   - Group: Metadata entries sharing a grouping key, i.e. one domain struct
//   - EnumerationStrategy: Decides which enumeration accessors a domain gets
//   - Namer: Turns platform names into Go identifiers
//   - Config: Global configuration for code generation
//
// # Declarations
//
// For a metadata list holding one "light" entry with entities light.kitchen
// and light.hall, Generate returns:
//
//	Interface Entities     { Light }
//	Class     AllEntities  { Light }              implements Entities
//	Class     LightEntities
//	  EnumerateAll          (runtime, feature "enumerate/runtime")
//	  EnumerateAllGenerated (yields Kitchen, Hall)
//	  Kitchen, Hall
//	Record    LightEntity      (entity, base Entity[LightAttributes])
//	Record    LightAttributes  (attributes)
//
// Domains registered with NumericSplitStrategy ("sensor" by default) must
// consist of one numeric and one non-numeric entry and get separate
// numeric and non-numeric enumeration accessors.
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - MetadataError: Invariant violations in the metadata
//   - ConfigError: Configuration errors
//   - GenerationError: Rendering, formatting and writing errors
//
// Example error handling:
//
//	decls, err := gen.Generate(cfg, metadata)
//	if errors.Is(err, gen.ErrMalformedMetadata) {
//	    var mdErr *gen.MetadataError
//	    errors.As(err, &mdErr)
//	    log.Fatalf("domain %s: %s", mdErr.Domain, mdErr.Message)
//	}
package gen
