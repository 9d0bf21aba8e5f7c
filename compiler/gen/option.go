package gen

import (
	"errors"
	"go/token"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/syssam/hassgen/internal/version"
)

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the package name of the generated files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		if !token.IsIdentifier(pkg) {
			return NewConfigError("Package", pkg, "package must be a valid Go identifier")
		}
		c.Package = pkg
		return nil
	}
}

// WithRuntimePackage sets the import path of the runtime base types.
// For example: "github.com/org/project/hassmodel".
func WithRuntimePackage(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("RuntimePackage", nil, "runtime package cannot be empty")
		}
		c.RuntimePackage = path
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets an additional header comment.
// The header is added below the generated-code marker of each file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithRootNames sets the names of the root interface and its implementing struct.
func WithRootNames(iface, class string) Option {
	return func(c *Config) error {
		for opt, name := range map[string]string{"RootInterface": iface, "RootClass": class} {
			if !token.IsIdentifier(name) || !token.IsExported(name) {
				return NewConfigError(opt, name, "must be an exported Go identifier")
			}
		}
		if iface == class {
			return NewConfigError("RootClass", class, "must differ from the root interface name")
		}
		c.RootInterface, c.RootClass = iface, class
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if !c.HasFeature(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := LookupFeature(name)
			if !ok {
				return NewConfigError("Features", name, "unknown feature")
			}
			if err := WithFeatures(f)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithoutFeatures disables features by name, including default-on ones.
func WithoutFeatures(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			if _, ok := LookupFeature(name); !ok {
				return NewConfigError("Features", name, "unknown feature")
			}
		}
		c.Features = slices.DeleteFunc(c.Features, func(f Feature) bool {
			return slices.Contains(names, f.Name)
		})
		return nil
	}
}

// WithEnumerationStrategy registers the enumeration strategy of a domain.
// A nil strategy removes the registration so the domain falls back to
// ConcatStrategy.
func WithEnumerationStrategy(domain string, s EnumerationStrategy) Option {
	return func(c *Config) error {
		if domain == "" {
			return NewConfigError("EnumerationStrategy", nil, "domain cannot be empty")
		}
		strategies := maps.Clone(c.Strategies)
		if strategies == nil {
			strategies = make(map[string]EnumerationStrategy)
		}
		if s == nil {
			delete(strategies, domain)
		} else {
			strategies[domain] = s
		}
		c.Strategies = strategies
		return nil
	}
}

// WithAcronyms adds words that are upper-cased as a whole in identifiers.
func WithAcronyms(words ...string) Option {
	return func(c *Config) error {
		for _, w := range words {
			if w == "" || !token.IsIdentifier(w) {
				return NewConfigError("Acronyms", w, "acronym must be a valid identifier")
			}
		}
		c.Acronyms = append(c.Acronyms, words...)
		return nil
	}
}

// WithPlatformVersion records the platform version the metadata was
// collected from. Pre-release suffixes are normalised ("2024.1.0b3" becomes
// "2024.1.0").
func WithPlatformVersion(raw string) Option {
	return func(c *Config) error {
		if raw == "" {
			c.PlatformVersion = ""
			return nil
		}
		v, err := version.ReplaceBeta(raw)
		if err != nil {
			return NewConfigError("PlatformVersion", raw, err.Error())
		}
		c.PlatformVersion = v.String()
		return nil
	}
}

// WithWorkers sets the number of files written in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger used by the Generator.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from DefaultConfig with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
