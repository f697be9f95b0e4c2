package errors

import (
	"fmt"
	"regexp"
	"strconv"
)

var yamlLine = regexp.MustCompile(`line (\d+)`)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// NewYAMLError constructs a ParseError for a YAML decoding failure. The
// line is taken from the decoder's message when it names one.
func NewYAMLError(path string, err error) error {
	return NewParseError(path, yamlLineOf(err), err)
}

func yamlLineOf(err error) int {
	if err == nil {
		return 0
	}
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return line
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

// ValidationError captures theme or document validation issues.
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

// RefError reports a ref holder that rejected a write. Index is the position
// of the holder in the merged list.
type RefError struct {
	Index int
	Err   error
}

// NewRefError constructs a RefError for the holder at index.
func NewRefError(index int, err error) error {
	return &RefError{Index: index, Err: err}
}

func (e *RefError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("ref error: holder %d: %v", e.Index, e.Err)
}

// Unwrap exposes the root error.
func (e *RefError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError indicates a failed render pass for a component.
type RenderError struct {
	Component string
	Message   string
	Err       error
}

// NewRenderError constructs a RenderError for the given component.
func NewRenderError(component string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RenderError{Component: component, Message: message, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("render error [%s]: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
