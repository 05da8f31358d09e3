package validator

import (
	"fmt"
	"sort"
	"strings"
)

// Validator collects field level validation messages
type Validator struct {
	Errors map[string]string
}

// New returns an empty Validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if no errors were recorded
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records message for key unless key already has one
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error message only if ok is false
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// ValidationError is returned to clients when request validation fails
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// NewValidationError wraps the collected field errors
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}
