package errors

import (
	"fmt"
)

// ConfigurationError reports a factory that cannot be created for the supplied target.
type ConfigurationError struct {
	Target  any
	Message string
}

// NewConfigurationError constructs a ConfigurationError for an invalid target.
func NewConfigurationError(target any) error {
	return &ConfigurationError{
		Target:  target,
		Message: fmt.Sprintf("cannot create styled component for target %s", describeTarget(target)),
	}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func describeTarget(target any) string {
	if target == nil {
		return "<nil>"
	}
	if s, ok := target.(fmt.Stringer); ok {
		return fmt.Sprintf("%q", s.String())
	}
	return fmt.Sprintf("%#v", target)
}

// ParseError represents a sheet decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures sheet validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildError reports a sheet component whose factory or constructor failed.
type BuildError struct {
	Component string
	Err       error
}

// NewBuildError constructs a BuildError for the named component.
func NewBuildError(component string, err error) error {
	return &BuildError{Component: component, Err: err}
}

func (e *BuildError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("build error on component %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("build error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *BuildError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
