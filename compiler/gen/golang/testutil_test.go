package golang

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"

	"github.com/syssam/hassgen/compiler/gen"
	"github.com/syssam/hassgen/compiler/load"
)

const testRuntimePkg = "github.com/test/project/hassmodel"

// mockHelper implements gen.GeneratorHelper for emitter tests.
type mockHelper struct {
	pkg      string
	features map[string]bool
}

func newMockHelper() *mockHelper {
	return &mockHelper{pkg: "entities", features: map[string]bool{}}
}

func (h *mockHelper) NewFile() *jen.File {
	f := jen.NewFile(h.pkg)
	f.HeaderComment(gen.GeneratedHeader)
	return f
}

func (h *mockHelper) Pkg() string                     { return h.pkg }
func (h *mockHelper) RuntimePkg() string              { return testRuntimePkg }
func (h *mockHelper) FeatureEnabled(name string) bool { return h.features[name] }

var _ gen.GeneratorHelper = (*mockHelper)(nil)

// emit renders decls and returns the formatted source.
func emit(t *testing.T, decls ...gen.Decl) string {
	t.Helper()
	f, err := NewEmitter(newMockHelper()).Emit(decls)
	require.NoError(t, err)
	return f.GoString()
}

// generate runs gen.Generate with the default config and renders every
// declaration into one file.
func generate(t *testing.T, metadata ...*load.EntityDomainMetadata) string {
	t.Helper()
	decls, err := gen.Generate(gen.DefaultConfig(), metadata)
	require.NoError(t, err)
	return emit(t, decls...)
}

func lightEntry() *load.EntityDomainMetadata {
	return &load.EntityDomainMetadata{
		Domain:                     "light",
		EntityClassName:            "LightEntity",
		AttributesClassName:        "LightAttributes",
		EntitiesForDomainClassName: "LightEntities",
		CoreInterfaceName:          "LightEntityCore",
		Entities: []*load.EntityMetaData{
			{ID: "light.kitchen", Name: "Kitchen", FriendlyName: "Kitchen"},
			{ID: "light.hall", Name: "Hall"},
		},
		Attributes: []*load.AttributeMetaData{
			{JSONName: "brightness", Type: load.TypeNumber},
		},
	}
}

func sensorEntries() []*load.EntityDomainMetadata {
	return []*load.EntityDomainMetadata{
		{
			Domain:                     "sensor",
			IsNumeric:                  true,
			EntityClassName:            "NumericSensorEntity",
			AttributesClassName:        "NumericSensorAttributes",
			EntitiesForDomainClassName: "SensorEntities",
			Entities:                   []*load.EntityMetaData{{ID: "sensor.temperature"}},
		},
		{
			Domain:                     "sensor",
			EntityClassName:            "SensorEntity",
			AttributesClassName:        "SensorAttributes",
			EntitiesForDomainClassName: "SensorEntities",
			Entities:                   []*load.EntityMetaData{{ID: "sensor.status"}},
		},
	}
}
