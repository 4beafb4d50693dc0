package stats

import (
	"errors"
	"fmt"
)

// ErrorType classifies pipeline failures.
type ErrorType string

const (
	ErrTypeLoad        ErrorType = "LOAD"
	ErrTypeParse       ErrorType = "PARSE"
	ErrTypeSchema      ErrorType = "SCHEMA"
	ErrTypeDataQuality ErrorType = "DATA_QUALITY"
	ErrTypeConfig      ErrorType = "CONFIG"
)

var (
	ErrMissingColumn     = errors.New("missing column")
	ErrDuplicateCountry  = errors.New("duplicate country")
	ErrNoData            = errors.New("no data for country")
	ErrNoCountries       = errors.New("no countries matched reference set")
	ErrUnknownCountry    = errors.New("unknown country")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyFile         = errors.New("empty file")
)

// Error is a pipeline error with a type and optional context,
// e.g. the table and country that caused it.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds a key/value pair to the error context.
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func newError(t ErrorType, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    t,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// TypeOf returns the ErrorType of err, or "" if err is not a pipeline error.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ""
}
