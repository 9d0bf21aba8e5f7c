package gen

import (
	"runtime"
	"slices"

	"go.uber.org/zap"
)

const (
	// GeneratedHeader is the first line of every generated file. The writer
	// uses it to recognise files it owns.
	GeneratedHeader = "Code generated by hassgen. DO NOT EDIT."

	// DefaultPackage is the package name of the generated code.
	DefaultPackage = "entities"

	// DefaultRuntimePackage is the import path of the runtime base types.
	DefaultRuntimePackage = "github.com/syssam/hassgen/hassmodel"

	// DefaultRootInterface and DefaultRootClass name the root declarations.
	DefaultRootInterface = "Entities"
	DefaultRootClass     = "AllEntities"
)

// Config holds the configuration for code generation.
type Config struct {
	// Package is the package name of the generated files.
	Package string

	// RuntimePackage is the import path of the package holding HaContext,
	// Entity, NumericEntity and the core interfaces.
	RuntimePackage string

	// Target is the output directory.
	Target string

	// Header is an optional comment written below GeneratedHeader.
	Header string

	// RootInterface and RootClass name the root aggregation declarations.
	RootInterface string
	RootClass     string

	// Features holds the enabled feature-flags.
	Features []Feature

	// Strategies maps a domain to its enumeration strategy. Domains without
	// an entry use ConcatStrategy.
	Strategies map[string]EnumerationStrategy

	// Acronyms are upper-cased as a whole when building identifiers, in
	// addition to the built-in set.
	Acronyms []string

	// PlatformVersion is stamped into the header of generated files.
	PlatformVersion string

	// Workers bounds the number of files written in parallel.
	Workers int

	// Logger receives progress information from the Generator. The pure
	// Generate function never logs.
	Logger *zap.Logger
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Package:        DefaultPackage,
		RuntimePackage: DefaultRuntimePackage,
		RootInterface:  DefaultRootInterface,
		RootClass:      DefaultRootClass,
		Features:       defaultFeatures(),
		Strategies: map[string]EnumerationStrategy{
			"sensor": NumericSplitStrategy{},
		},
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// FeatureEnabled reports if the given feature name is enabled.
// It returns an error if the feature is not registered.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	if _, ok := LookupFeature(name); !ok {
		return false, NewConfigError("Feature", name, "unknown feature")
	}
	return c.HasFeature(name), nil
}

// HasFeature reports if the feature is in the enabled set.
func (c *Config) HasFeature(name string) bool {
	return slices.ContainsFunc(c.Features, func(f Feature) bool {
		return f.Name == name
	})
}

// Strategy returns the enumeration strategy for domain.
func (c *Config) Strategy(domain string) EnumerationStrategy {
	if s, ok := c.Strategies[domain]; ok && s != nil {
		return s
	}
	return ConcatStrategy{}
}

// rootNames returns the root interface and class names, falling back to the
// defaults for zero-value configs.
func (c *Config) rootNames() (string, string) {
	iface, class := c.RootInterface, c.RootClass
	if iface == "" {
		iface = DefaultRootInterface
	}
	if class == "" {
		class = DefaultRootClass
	}
	return iface, class
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
