package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/hassgen/compiler/gen"
)

func TestGenClass_GeneratedEnumeration(t *testing.T) {
	out := generate(t, lightEntry())

	assert.Contains(t, out, "func (e *LightEntities) EnumerateAllGenerated() iter.Seq[*LightEntity] {")
	assert.Contains(t, out, "return func(yield func(*LightEntity) bool) {")
	assert.Contains(t, out, "if !yield(e.Kitchen()) {\n\t\t\treturn\n\t\t}\n\t\tif !yield(e.Hall()) {\n\t\t\treturn\n\t\t}")
}

func TestGenClass_RuntimeEnumeration(t *testing.T) {
	out := generate(t, lightEntry())

	assert.Contains(t, out, "func (e *LightEntities) EnumerateAll() iter.Seq[*LightEntity] {\n\treturn hassmodel.EnumerateDomain(e.haContext, \"light\", LightEntityFromCore)\n}")
}

func TestGenClass_NumericSplit(t *testing.T) {
	out := generate(t, sensorEntries()...)

	assert.Contains(t, out, "func (e *SensorEntities) EnumerateAllNumericGenerated() iter.Seq[*NumericSensorEntity] {")
	assert.Contains(t, out, "func (e *SensorEntities) EnumerateAllNonNumericGenerated() iter.Seq[*SensorEntity] {")
	assert.Contains(t, out, "return hassmodel.EnumerateDomain(e.haContext, \"sensor\", SensorEntityFromCore)")
	assert.Contains(t, out, "return hassmodel.EnumerateNumericDomain(e.haContext, \"sensor\", NumericSensorEntityFromCore)")
	assert.Contains(t, out, "func (e *SensorEntities) Temperature() *NumericSensorEntity {")
	assert.Contains(t, out, "func (e *SensorEntities) Status() *SensorEntity {")
}

func TestGenClass_RuntimeElem(t *testing.T) {
	class := &gen.Class{
		Name:     "LightEntities",
		GroupKey: "LightEntities",
		Domain:   "light",
		Methods: []*gen.Method{{
			Kind:   gen.GeneratedEnumeration,
			Name:   "EnumerateAllGenerated",
			Elem:   gen.RuntimeType(gen.RuntimeEntityCore),
			Yields: []string{"Kitchen"},
		}},
	}

	out := emit(t, class)

	assert.Contains(t, out, "func (e *LightEntities) EnumerateAllGenerated() iter.Seq[hassmodel.EntityCore] {")
	assert.Contains(t, out, "return func(yield func(hassmodel.EntityCore) bool) {")
}

func TestGenClass_EmptyGroup(t *testing.T) {
	class := &gen.Class{
		Name:     "SwitchEntities",
		GroupKey: "SwitchEntities",
		Domain:   "switch",
		Methods: []*gen.Method{{
			Kind: gen.GeneratedEnumeration,
			Name: "EnumerateAllGenerated",
			Elem: gen.Local("SwitchEntity"),
		}},
	}

	out := emit(t, class)

	assert.Contains(t, out, "return func(yield func(*SwitchEntity) bool) {")
	assert.NotContains(t, out, "if !yield")
	assert.NotContains(t, out, "var _")
}

func TestGenProperty_Comments(t *testing.T) {
	class := &gen.Class{
		Name:   "LightEntities",
		Domain: "light",
		Properties: []*gen.Property{
			{Name: "Kitchen", Type: gen.Local("LightEntity"), New: gen.NewExpr{Type: "LightEntity", EntityID: "light.kitchen"}, FriendlyName: "Kitchen Lamp"},
			{Name: "Hall", Type: gen.Local("LightEntity"), New: gen.NewExpr{Type: "LightEntity", EntityID: "light.hall"}},
		},
	}

	out := emit(t, class)

	assert.Contains(t, out, `// Kitchen returns the "Kitchen Lamp" entity (light.kitchen).`)
	assert.Contains(t, out, "// Hall returns the light.hall entity.")
}
