// Package apperr holds the error taxonomy shared by the services:
// validation errors carry per-field messages, conflicts carry one
// user-facing message and leave the collections untouched.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func NewValidation(fields FieldErrors) error {
	return &ValidationError{Fields: fields}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Conflict is a business-rule rejection (duplicate data, quota, self-action).
type Conflict struct {
	Msg string
}

func (e *Conflict) Error() string { return e.Msg }

func NewConflict(msg string) error {
	return &Conflict{Msg: msg}
}

func IsConflict(err error) bool {
	var ce *Conflict
	return errors.As(err, &ce)
}

var ErrNotFound = errors.New("data tidak ditemukan")
