// Package config loads the settings of the hassgen command from hassgen.yaml,
// HASSGEN_* environment variables and command-line flags.
package config

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/syssam/hassgen/compiler/gen"
)

// FileName is the base name of the configuration file searched in the
// working directory.
const FileName = "hassgen"

// Config is the decoded command configuration.
type Config struct {
	Metadata           string    `mapstructure:"metadata"`
	Target             string    `mapstructure:"target"`
	Package            string    `mapstructure:"package"`
	RuntimePackage     string    `mapstructure:"runtime_package"`
	Header             string    `mapstructure:"header"`
	RootInterface      string    `mapstructure:"root_interface"`
	RootClass          string    `mapstructure:"root_class"`
	Features           []string  `mapstructure:"features"`
	DisabledFeatures   []string  `mapstructure:"disabled_features"`
	Acronyms           []string  `mapstructure:"acronyms"`
	PartitionedDomains []string  `mapstructure:"partitioned_domains"`
	Workers            int       `mapstructure:"workers"`
	Log                LogConfig `mapstructure:"log"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	JSON      bool `mapstructure:"json"`
	Verbosity int  `mapstructure:"verbosity"`
}

// SetDefaults registers the default of every key. Registering all keys also
// lets AutomaticEnv resolve them during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("metadata", "")
	v.SetDefault("target", "")
	v.SetDefault("package", gen.DefaultPackage)
	v.SetDefault("runtime_package", gen.DefaultRuntimePackage)
	v.SetDefault("header", "")
	v.SetDefault("root_interface", gen.DefaultRootInterface)
	v.SetDefault("root_class", gen.DefaultRootClass)
	v.SetDefault("features", []string{})
	v.SetDefault("disabled_features", []string{})
	v.SetDefault("acronyms", []string{})
	v.SetDefault("partitioned_domains", []string{"sensor"})
	v.SetDefault("workers", 0)
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// New returns a viper instance with defaults, environment binding and, if
// present, the configuration file. An explicit path must exist; without one
// hassgen.yaml is looked up in the working directory and may be absent.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("HASSGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
		return v, nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}
	return v, nil
}

// Load decodes the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &c, nil
}

// Options translates the configuration into generator options. Domains
// partitioned by default but missing from PartitionedDomains fall back to
// plain concatenation.
func (c *Config) Options() []gen.Option {
	opts := []gen.Option{
		gen.WithPackage(c.Package),
		gen.WithRuntimePackage(c.RuntimePackage),
		gen.WithHeader(c.Header),
		gen.WithRootNames(c.RootInterface, c.RootClass),
	}
	if c.Target != "" {
		opts = append(opts, gen.WithTarget(c.Target))
	}
	if len(c.Features) > 0 {
		opts = append(opts, gen.WithFeatureNames(c.Features...))
	}
	if len(c.DisabledFeatures) > 0 {
		opts = append(opts, gen.WithoutFeatures(c.DisabledFeatures...))
	}
	if len(c.Acronyms) > 0 {
		opts = append(opts, gen.WithAcronyms(c.Acronyms...))
	}
	for domain := range gen.DefaultConfig().Strategies {
		if !slices.Contains(c.PartitionedDomains, domain) {
			opts = append(opts, gen.WithEnumerationStrategy(domain, nil))
		}
	}
	for _, domain := range c.PartitionedDomains {
		opts = append(opts, gen.WithEnumerationStrategy(domain, gen.NumericSplitStrategy{}))
	}
	if c.Workers > 0 {
		opts = append(opts, gen.WithWorkers(c.Workers))
	}
	return opts
}
