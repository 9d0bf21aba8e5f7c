package load

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func sample() *Metadata {
	return &Metadata{
		PlatformVersion: "2024.1.0b3",
		Domains: []*EntityDomainMetadata{
			{
				Domain:                     "light",
				EntityClassName:            "LightEntity",
				AttributesClassName:        "LightAttributes",
				EntitiesForDomainClassName: "LightEntities",
				CoreInterfaceName:          "LightEntityCore",
				Entities: []*EntityMetaData{
					{ID: "light.kitchen", Name: "Kitchen", FriendlyName: "Kitchen"},
					{ID: "light.hall", FriendlyName: "Hall"},
				},
				Attributes: []*AttributeMetaData{
					{JSONName: "brightness", Type: TypeNumber},
				},
			},
		},
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"meta.json", FormatJSON},
		{"meta.yaml", FormatYAML},
		{"META.YML", FormatYAML},
		{"meta.msgpack", FormatMsgpack},
		{"meta.mpk", FormatMsgpack},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown extension", func(t *testing.T) {
		_, err := FormatOf("meta.toml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownFormat))
		assert.NotEmpty(t, errors.GetAllHints(err))
	})
}

func TestReadWrite(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, sample(), format))

			md, err := Read(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, sample(), md)
		})
	}
}

func TestReadBareList(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		md, err := Read(strings.NewReader(`[{"domain":"light","entities":[{"id":"light.hall"}]}]`), FormatJSON)
		require.NoError(t, err)
		require.Len(t, md.Domains, 1)
		assert.Equal(t, "light", md.Domains[0].Domain)
		assert.Equal(t, "light.hall", md.Domains[0].Entities[0].ID)
		assert.Empty(t, md.PlatformVersion)
	})

	t.Run("yaml", func(t *testing.T) {
		src := `
- domain: sensor
  is_numeric: true
  entities:
    - id: sensor.temperature
      friendly_name: Temperature
- domain: sensor
  entities:
    - id: sensor.status
`
		md, err := Read(strings.NewReader(src), FormatYAML)
		require.NoError(t, err)
		require.Len(t, md.Domains, 2)
		assert.True(t, md.Domains[0].IsNumeric)
		assert.False(t, md.Domains[1].IsNumeric)
		assert.Equal(t, "Temperature", md.Domains[0].Entities[0].FriendlyName)
	})

	t.Run("msgpack", func(t *testing.T) {
		buf, err := msgpack.Marshal(sample().Domains)
		require.NoError(t, err)

		md, err := Read(bytes.NewReader(buf), FormatMsgpack)
		require.NoError(t, err)
		assert.Equal(t, sample().Domains, md.Domains)
		assert.Empty(t, md.PlatformVersion)
	})

	t.Run("msgpack array16", func(t *testing.T) {
		var domains []*EntityDomainMetadata
		for i := range 20 {
			domains = append(domains, &EntityDomainMetadata{
				Domain:   "light",
				Entities: []*EntityMetaData{{ID: fmt.Sprintf("light.lamp_%d", i)}},
			})
		}
		buf, err := msgpack.Marshal(domains)
		require.NoError(t, err)
		require.Equal(t, byte(0xdc), buf[0])

		md, err := Read(bytes.NewReader(buf), FormatMsgpack)
		require.NoError(t, err)
		require.Len(t, md.Domains, 20)
		assert.Equal(t, "light.lamp_19", md.Domains[19].Entities[0].ID)
	})
}

func TestReadEmpty(t *testing.T) {
	md, err := Read(strings.NewReader("  \n"), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, md.Domains)
}

func TestReadRejectsNullEntries(t *testing.T) {
	_, err := Read(strings.NewReader(`{"domains":[{"domain":"light","entities":[null]}]}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entity entry 0 is null")
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.yaml")
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), FormatYAML))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	md, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, "2024.1.0b3", md.PlatformVersion)

	_, err = File(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open metadata")
}

func TestAttributeTypeKnown(t *testing.T) {
	assert.True(t, TypeNumber.Known())
	assert.True(t, TypeAny.Known())
	assert.False(t, AttributeType("color").Known())
}
