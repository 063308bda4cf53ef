// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that reports the first
// violated rule as a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
//
// # Fail-fast
//
// Once a rule fails every later rule is a no-op, so the reported reason is
// always the first violated rule in chain order.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator checks fields through a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	first *apperr.FieldError
}

// FailFast returns a Validator that stops at the first violated rule.
// The zero value behaves the same.
func FailFast() *Validator {
	return &Validator{}
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Contains fails if value does not contain substr.
func (v *Validator) Contains(field, value, substr string) *Validator {
	if !strings.Contains(value, substr) {
		v.add(field, fmt.Sprintf("Must contain %q", substr))
	}
	return v
}

// NoWhitespace fails if value contains any Unicode whitespace.
func (v *Validator) NoWhitespace(field, value string) *Validator {
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		v.add(field, "Must not contain whitespace")
	}
	return v
}

// Positive fails if value is zero or negative.
func (v *Validator) Positive(field string, value int) *Validator {
	if value <= 0 {
		v.add(field, "Must be a positive number")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("birthday", birthday.After(today), "Must not be in the future")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) naming the first failed
// rule, or nil if all rules passed.
//
// This is the only output method; call it at the end of the chain.
func (v *Validator) Err() error {
	if v.first == nil {
		return nil
	}
	return apperr.ValidationError(v.first.Field+": "+v.first.Message, *v.first)
}

// add records a failure unless an earlier rule already failed.
func (v *Validator) add(field, message string) {
	if v.first != nil {
		return
	}
	v.first = &apperr.FieldError{Field: field, Message: message}
}
