package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a schema that violates a generation precondition.
	ErrInvalidSchema = errors.New("gqlselect: invalid schema")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("gqlselect: missing configuration")
	// ErrFormatFailed indicates the formatter rejected the assembled source.
	ErrFormatFailed = errors.New("gqlselect: format failed")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("gqlselect: code generation failed")
)

// describe renders "gqlselect: <kind> error<context>: message: cause".
func describe(kind, context, message string, cause error) string {
	var b strings.Builder
	b.WriteString("gqlselect: ")
	b.WriteString(kind)
	b.WriteString(" error")
	b.WriteString(context)
	if message != "" {
		b.WriteString(": ")
		b.WriteString(message)
	}
	if cause != nil {
		b.WriteString(": ")
		b.WriteString(cause.Error())
	}
	return b.String()
}

// SchemaError reports a schema that cannot be emitted: a dangling or cyclic
// type reference, a name that is not a valid identifier, or two
// declarations claiming the same exported name.
type SchemaError struct {
	Type    string // Schema type name
	Field   string // Field, argument or enum value name (if applicable)
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	var ctx string
	if e.Type != "" {
		ctx += " on type " + e.Type
	}
	if e.Field != "" {
		ctx += " field " + e.Field
	}
	return describe("schema", ctx, e.Message, e.Cause)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// Is matches ErrInvalidSchema.
func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{Type: typeName, Field: fieldName, Message: message, Cause: cause}
}

// ConfigError reports an invalid option or project file entry.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	ctx := fmt.Sprintf(" for %q", e.Option)
	if e.Value != nil {
		ctx += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return describe("config", ctx, e.Message, nil)
}

// Is matches ErrMissingConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrMissingConfig }

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// FormatError is returned when the formatter fails. The run produces no
// output; Source holds the unformatted text for debugging.
type FormatError struct {
	Formatter string
	Message   string
	Source    string
	Cause     error
}

func (e *FormatError) Error() string {
	var ctx string
	if e.Formatter != "" {
		ctx = " (formatter: " + e.Formatter + ")"
	}
	return describe("format", ctx, e.Message, e.Cause)
}

func (e *FormatError) Unwrap() error { return e.Cause }

// Is matches ErrFormatFailed.
func (e *FormatError) Is(target error) bool { return target == ErrFormatFailed }

// NewFormatError creates a new FormatError.
func NewFormatError(formatter, message string, cause error) *FormatError {
	return &FormatError{Formatter: formatter, Message: message, Cause: cause}
}

// GenerationError reports a failure while writing output.
type GenerationError struct {
	Phase   string // "write", "load", etc.
	File    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	var ctx string
	if e.Phase != "" {
		ctx += " in phase " + e.Phase
	}
	if e.File != "" {
		ctx += " (file: " + e.File + ")"
	}
	return describe("generation", ctx, e.Message, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// Is matches ErrGenerationFailed.
func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, File: file, Message: message, Cause: cause}
}

// IsSchemaError reports whether err wraps a SchemaError.
func IsSchemaError(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}

// IsConfigError reports whether err wraps a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsFormatError reports whether err wraps a FormatError.
func IsFormatError(err error) bool {
	var e *FormatError
	return errors.As(err, &e)
}

// IsGenerationError reports whether err wraps a GenerationError.
func IsGenerationError(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}
