// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Filmorate.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Taxonomy:

  - VALIDATION_ERROR: caller-correctable input problems, carries the offending field.
  - NOT_FOUND: a referenced identifier does not resolve, names the kind and id.
  - CONFLICT: the requested state change is redundant given current state.
  - INTERNAL_ERROR: storage or infrastructure faults.

Every error that leaves the service layer should be an [AppError] so callers can
branch on [AppError.Code] instead of on message text.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodeInternal    = "INTERNAL_ERROR"
	CodeRateLimited = "RATE_LIMITED"
)

// AppError is the canonical error type for the Filmorate API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`

	// kindOnly marks the package sentinels, which match any error of the same Code.
	kindOnly bool
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an [*AppError] with the same Code.
//
// This makes the package-level sentinels usable with [errors.Is]:
//
//	if errors.Is(err, apperr.ErrNotFound) { ... }
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return other.kindOnly && other.Code == e.Code
}

// Sentinels for kind-only comparisons through [errors.Is].
//
// Storage backends may also return ErrNotFound directly; the catalog layer
// replaces it with a [NotFoundID] naming the entity before it reaches a caller.
var (
	ErrValidation = &AppError{Code: CodeValidation, Message: "Validation failed", HTTPStatus: http.StatusBadRequest, kindOnly: true}
	ErrNotFound   = &AppError{Code: CodeNotFound, Message: "Resource not found", HTTPStatus: http.StatusNotFound, kindOnly: true}
	ErrConflict   = &AppError{Code: CodeConflict, Message: "Conflict", HTTPStatus: http.StatusConflict, kindOnly: true}
)

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Like") // Returns "Like not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// NotFoundID creates a 404 [AppError] naming both the entity kind and the identifier.
//
// Example:
//
//	apperr.NotFoundID("Genre", 7) // Returns "Genre with id 7 not found"
func NotFoundID(kind string, id int64) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s with id %d not found", kind, id),
		HTTPStatus: http.StatusNotFound,
	}
}

// Conflict creates a 409 [AppError] for duplicate or redundant state changes.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// InvalidField creates a 400 [AppError] for exactly one field.
func InvalidField(field, reason string) *AppError {
	return ValidationError(reason, FieldError{Field: field, Message: reason})
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// CodeOf returns the machine-readable code of err, or "" when err is not an [*AppError].
func CodeOf(err error) string {
	if ae := As(err); ae != nil {
		return ae.Code
	}
	return ""
}
