package models

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("project not found")
	ErrDataAccess         = errors.New("data access failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrMissingConfig      = errors.New("missing configuration")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failing field of a payload.
// Error() reports the first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return e.Fields[0].Message
}

// NewValidationError returns nil when fields is empty.
func NewValidationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// MissingConfigError names the configuration key that was required but unset.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return e.Key + " is not set"
}

func (e *MissingConfigError) Unwrap() error {
	return ErrMissingConfig
}

// MissingConfig builds a MissingConfigError for one or more keys.
func MissingConfig(keys ...string) error {
	return &MissingConfigError{Key: strings.Join(keys, ", ")}
}
