package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/hassgen/compiler/gen"
)

const sampleYAML = `
metadata: ha/metadata.json
target: ./entities
package: home
header: Generated for the test home.
features:
  - output/split
disabled_features:
  - enumerate/runtime
acronyms: [NAS]
partitioned_domains: [number]
workers: 3
log:
  json: true
  verbosity: 2
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hassgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := New("")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Empty(t, c.Metadata)
	assert.Empty(t, c.Target)
	assert.Equal(t, gen.DefaultPackage, c.Package)
	assert.Equal(t, gen.DefaultRuntimePackage, c.RuntimePackage)
	assert.Equal(t, []string{"sensor"}, c.PartitionedDomains)
	assert.False(t, c.Log.JSON)
	assert.Zero(t, c.Log.Verbosity)
}

func TestLoadFile(t *testing.T) {
	v, err := New(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "ha/metadata.json", c.Metadata)
	assert.Equal(t, "./entities", c.Target)
	assert.Equal(t, "home", c.Package)
	assert.Equal(t, "Generated for the test home.", c.Header)
	assert.Equal(t, []string{"output/split"}, c.Features)
	assert.Equal(t, []string{"enumerate/runtime"}, c.DisabledFeatures)
	assert.Equal(t, []string{"NAS"}, c.Acronyms)
	assert.Equal(t, []string{"number"}, c.PartitionedDomains)
	assert.Equal(t, 3, c.Workers)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, 2, c.Log.Verbosity)
}

func TestLoadWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hassgen.yaml"), []byte("package: found\n"), 0o644))
	t.Chdir(dir)

	v, err := New("")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "found", c.Package)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HASSGEN_PACKAGE", "fromenv")
	t.Setenv("HASSGEN_LOG_VERBOSITY", "1")

	v, err := New(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "fromenv", c.Package)
	assert.Equal(t, 1, c.Log.Verbosity)
}

func TestNewErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := New(writeConfig(t, "package: [unterminated\n"))
		require.Error(t, err)
	})
}

func TestOptions(t *testing.T) {
	v, err := New(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	cfg, err := gen.NewConfig(c.Options()...)
	require.NoError(t, err)

	assert.Equal(t, "home", cfg.Package)
	assert.Equal(t, "./entities", cfg.Target)
	assert.Equal(t, "Generated for the test home.", cfg.Header)
	assert.True(t, cfg.HasFeature(gen.FeatureSplitOutput.Name))
	assert.False(t, cfg.HasFeature(gen.FeatureRuntimeEnumeration.Name))
	assert.Equal(t, []string{"NAS"}, cfg.Acronyms)
	assert.Equal(t, "numeric-split", cfg.Strategy("number").Name())
	assert.Equal(t, "concat", cfg.Strategy("sensor").Name())
	assert.Equal(t, 3, cfg.Workers)
}

func TestOptionsRejectUnknownFeature(t *testing.T) {
	c := &Config{
		Package:        gen.DefaultPackage,
		RuntimePackage: gen.DefaultRuntimePackage,
		RootInterface:  gen.DefaultRootInterface,
		RootClass:      gen.DefaultRootClass,
		Features:       []string{"sql/upsert"},
	}

	_, err := gen.NewConfig(c.Options()...)
	require.Error(t, err)
	assert.True(t, gen.IsConfigError(err))
}
