package services

import (
	"fmt"
	"strings"
)

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
	// Fields names the request fields that failed validation, when the
	// error is a validation failure.
	Fields []string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewValidationError builds a 400 error naming the missing or invalid
// fields.
func NewValidationError(message string, fields ...string) *ServiceError {
	if message == "" {
		message = fmt.Sprintf("Missing required fields: %s", strings.Join(fields, ", "))
	}
	return &ServiceError{StatusCode: 400, Message: message, Fields: fields}
}
