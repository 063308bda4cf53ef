// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

/*
TestNotFoundID verifies the message names both kind and identifier.
*/
func TestNotFoundID(t *testing.T) {
	err := apperr.NotFoundID("Genre", 42)

	assert.Equal(t, "Genre with id 42 not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, apperr.CodeNotFound, err.Code)
}

/*
TestSentinels_Is checks that kind-only sentinels match through wrapping.
*/
func TestSentinels_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		match  bool
	}{
		{"not_found", apperr.NotFoundID("User", 1), apperr.ErrNotFound, true},
		{"wrapped_conflict", fmt.Errorf("ctx: %w", apperr.Conflict("already friends")), apperr.ErrConflict, true},
		{"validation", apperr.InvalidField("name", "required"), apperr.ErrValidation, true},
		{"kind_mismatch", apperr.Conflict("dup"), apperr.ErrNotFound, false},
		{"plain_error", errors.New("boom"), apperr.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, errors.Is(tt.err, tt.target))
		})
	}
}

/*
TestInvalidField carries exactly one field detail.
*/
func TestInvalidField(t *testing.T) {
	err := apperr.InvalidField("login", "Login must not contain whitespace")

	assert.Len(t, err.Details, 1)
	assert.Equal(t, "login", err.Details[0].Field)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	assert.Empty(t, apperr.CodeOf(errors.New("plain")))
}
