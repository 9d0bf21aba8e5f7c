package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMalformedMetadata indicates that the entity metadata violates an invariant.
	ErrMalformedMetadata = errors.New("hassgen: malformed metadata")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("hassgen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("hassgen: code generation failed")
	// ErrInvalidIdentifier is the cause of a MetadataError raised for a
	// name that is not an exported Go identifier.
	ErrInvalidIdentifier = errors.New("not an exported Go identifier")
)

// MetadataError represents an invariant violation in the entity metadata.
type MetadataError struct {
	Domain  string // Platform domain (if known)
	Group   string // Grouping key (if known)
	Entity  string // Entity id or accessor name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *MetadataError) Error() string {
	var b strings.Builder
	b.WriteString("hassgen: malformed metadata")
	if e.Domain != "" {
		b.WriteString(" in domain ")
		b.WriteString(e.Domain)
	}
	if e.Group != "" {
		fmt.Fprintf(&b, " (group %s)", e.Group)
	}
	if e.Entity != "" {
		b.WriteString(" entity ")
		b.WriteString(e.Entity)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *MetadataError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for MetadataError.
func (e *MetadataError) Is(target error) bool {
	return target == ErrMalformedMetadata
}

// NewMetadataError creates a new MetadataError.
func NewMetadataError(domain, group, entity, message string) *MetadataError {
	return &MetadataError{
		Domain:  domain,
		Group:   group,
		Entity:  entity,
		Message: message,
	}
}

// invalidIdentError reports name as unusable for the given role.
func invalidIdentError(domain, group, entity, role, name string) *MetadataError {
	return &MetadataError{
		Domain:  domain,
		Group:   group,
		Entity:  entity,
		Message: role + " " + name,
		Cause:   ErrInvalidIdentifier,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("hassgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("hassgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "format", "write", "cleanup"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("hassgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsMetadataError reports whether the error is a MetadataError.
func IsMetadataError(err error) bool {
	var mdErr *MetadataError
	return errors.As(err, &mdErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
