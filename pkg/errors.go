package pkg

import (
	"fmt"
	"sort"
	"strings"
)

// AppError is the application-level error carried from use cases to the HTTP
// layer. Code is a stable machine-readable identifier; Message is safe to
// show to API clients; Err keeps the internal cause for logs.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON error envelope returned by every endpoint.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// FieldValidationError reports per-field input problems at the submission
// boundary. No partial work happens once one is returned.

type FieldValidationError struct {
	Fields map[string]string
}

func NewFieldValidationError() *FieldValidationError {
	return &FieldValidationError{Fields: map[string]string{}}
}

// Add records a problem for field and returns the receiver for chaining.
func (e *FieldValidationError) Add(field, problem string) *FieldValidationError {
	e.Fields[field] = problem
	return e
}

func (e *FieldValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *FieldValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

func (e *FieldValidationError) ToHTTPError() HTTPError {
	return HTTPError{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid quote submission",
		Fields:  e.Fields,
	}
}
