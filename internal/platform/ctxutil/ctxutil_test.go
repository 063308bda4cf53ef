// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/filmorate/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_LoggerOr prefers the request logger over the injected fallback.
*/
func TestContext_LoggerOr(t *testing.T) {
	fallback := slog.New(slog.NewJSONHandler(io.Discard, nil))
	requestLogger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	// 1. No request logger: fallback wins
	assert.Equal(t, fallback, ctxutil.LoggerOr(context.Background(), fallback))

	// 2. Nil fallback: default logger
	assert.Equal(t, slog.Default(), ctxutil.LoggerOr(context.Background(), nil))

	// 3. Request logger attached
	ctx := ctxutil.WithLogger(context.Background(), requestLogger)
	assert.Equal(t, requestLogger, ctxutil.LoggerOr(ctx, fallback))
}
