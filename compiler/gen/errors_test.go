package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadataError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewMetadataError("sensor", "SensorEntities", "sensor.temperature", "duplicate entity id")
		err.Cause = errors.New("underlying error")

		assert.Contains(t, err.Error(), "hassgen: malformed metadata")
		assert.Contains(t, err.Error(), "in domain sensor")
		assert.Contains(t, err.Error(), "(group SensorEntities)")
		assert.Contains(t, err.Error(), "entity sensor.temperature")
		assert.Contains(t, err.Error(), "duplicate entity id")
		assert.Contains(t, err.Error(), "underlying error")
	})

	t.Run("Error message with domain only", func(t *testing.T) {
		err := &MetadataError{Domain: "light"}
		assert.Contains(t, err.Error(), "domain light")
		assert.NotContains(t, err.Error(), "group")
		assert.NotContains(t, err.Error(), "entity")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := &MetadataError{Cause: cause}

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrMalformedMetadata", func(t *testing.T) {
		err := NewMetadataError("light", "", "", "")
		assert.True(t, errors.Is(err, ErrMalformedMetadata))
		assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrMalformedMetadata))
		assert.False(t, errors.Is(err, ErrMissingConfig))
	})

	t.Run("IsMetadataError helper", func(t *testing.T) {
		assert.True(t, IsMetadataError(NewMetadataError("light", "", "", "test")))
		assert.False(t, IsMetadataError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Workers", -1, "must be positive")

		assert.Contains(t, err.Error(), "hassgen: config error")
		assert.Contains(t, err.Error(), "Workers")
		assert.Contains(t, err.Error(), "-1")
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Package", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, err.Is(ErrMissingConfig))
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		assert.True(t, IsConfigError(NewConfigError("Target", nil, "missing")))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewGenerationError("write", "light_entities.go", "cannot write file", cause)

		assert.Contains(t, err.Error(), "hassgen: generation error")
		assert.Contains(t, err.Error(), "in phase write")
		assert.Contains(t, err.Error(), "(file: light_entities.go)")
		assert.Contains(t, err.Error(), "cannot write file")
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewGenerationError("format", "", "", cause)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrGenerationFailed", func(t *testing.T) {
		err := NewGenerationError("render", "", "", nil)
		assert.True(t, errors.Is(err, ErrGenerationFailed))
	})

	t.Run("IsGenerationError helper", func(t *testing.T) {
		assert.True(t, IsGenerationError(NewGenerationError("render", "", "", nil)))
		assert.False(t, IsGenerationError(NewConfigError("Target", nil, "")))
	})
}
