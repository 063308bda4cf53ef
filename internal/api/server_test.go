// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/api"
	"github.com/taibuivan/filmorate/internal/core/catalog"
	"github.com/taibuivan/filmorate/internal/core/film"
	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/identity"
	"github.com/taibuivan/filmorate/internal/core/mpa"
	"github.com/taibuivan/filmorate/internal/core/relation"
	"github.com/taibuivan/filmorate/internal/core/user"
	"github.com/taibuivan/filmorate/internal/platform/config"
)

func newTestServer(t *testing.T, health api.HealthDependencies) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mpaService := mpa.NewService(mpa.NewMemoryRepository(mpa.Seed), logger)
	genreService := genre.NewService(genre.NewMemoryRepository(genre.Seed), logger)
	users := user.NewCatalog(catalog.NewMemory[*user.User](), identity.NewSequence(0), logger)
	films := film.NewCatalog(catalog.NewMemory[*film.Film](), identity.NewSequence(0), mpaService, genreService, logger)
	relations := relation.NewEngine(users, films, nil, logger)
	enricher := film.NewEnricher(mpaService, genreService, 16, time.Minute, logger)

	liveness, readiness := api.NewHealthHandlers(health, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{ServerPort: "0", Environment: "test", EnrichCacheSize: 16, EnrichCacheTTL: time.Minute}
	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Film:      film.NewHandler(film.NewService(films, relations, enricher, logger)),
		User:      user.NewHandler(user.NewService(users, relations, logger)),
		Mpa:       mpa.NewHandler(mpaService),
		Genre:     genre.NewHandler(genreService),
	})
	return server.Handler()
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

func call(t *testing.T, handler http.Handler, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	var decoded envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded), recorder.Body.String())
	}
	return recorder.Code, decoded
}

func TestAPI_UsersAndFriends(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	status, body := call(t, handler, http.MethodPost, "/users", `{"email":"joe@example.com","login":"joe","name":"","birthday":"1990-05-17"}`)
	require.Equal(t, http.StatusCreated, status)
	var joe user.User
	require.NoError(t, json.Unmarshal(body.Data, &joe))
	assert.Equal(t, int64(1), joe.ID)
	assert.Equal(t, "joe", joe.Name)

	status, _ = call(t, handler, http.MethodPost, "/users", `{"email":"ann@example.com","login":"ann","name":"Ann","birthday":"1991-01-01"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body = call(t, handler, http.MethodPost, "/users", `{"email":"bad","login":"x","birthday":"1991-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	status, _ = call(t, handler, http.MethodPut, "/users/1/friends/2", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, body = call(t, handler, http.MethodPut, "/users/2/friends/1", "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body.Code)

	status, _ = call(t, handler, http.MethodPut, "/users/1/friends/1", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = call(t, handler, http.MethodPut, "/users/1/friends/9", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User with id 9 not found", body.Error)

	status, body = call(t, handler, http.MethodGet, "/users/2/friends", "")
	require.Equal(t, http.StatusOK, status)
	var friends []user.User
	require.NoError(t, json.Unmarshal(body.Data, &friends))
	require.Len(t, friends, 1)
	assert.Equal(t, "joe", friends[0].Login)

	status, _ = call(t, handler, http.MethodDelete, "/users/2/friends/1", "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = call(t, handler, http.MethodDelete, "/users/2/friends/1", "")
	assert.Equal(t, http.StatusNoContent, status, "removing a missing friendship is a no-op")

	status, body = call(t, handler, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestAPI_FilmsLikesAndPopular(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	for _, login := range []string{"a", "b"} {
		status, _ := call(t, handler, http.MethodPost, "/users",
			`{"email":"`+login+`@example.com","login":"`+login+`","birthday":"2000-01-01"}`)
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := call(t, handler, http.MethodPost, "/films",
		`{"name":"First","description":"","releaseDate":"1895-12-28","duration":50,"mpa":{"id":2},"genres":[{"id":1},{"id":1},{"id":3}]}`)
	require.Equal(t, http.StatusCreated, status)
	var first film.Film
	require.NoError(t, json.Unmarshal(body.Data, &first))
	assert.Equal(t, "PG", first.Mpa.Name)
	assert.Equal(t, []genre.Genre{{ID: 1, Name: "Comedy"}, {ID: 3, Name: "Cartoon"}}, first.Genres)

	status, _ = call(t, handler, http.MethodPost, "/films", `{"name":"Second","releaseDate":"2001-01-01","duration":90}`)
	require.Equal(t, http.StatusCreated, status)

	status, _ = call(t, handler, http.MethodPost, "/films", `{"name":"Too early","releaseDate":"1895-12-27","duration":90}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = call(t, handler, http.MethodPost, "/films", `{"name":"Odd genre","releaseDate":"2001-01-01","duration":90,"genres":[{"id":99}]}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Genre with id 99 not found", body.Error)

	status, _ = call(t, handler, http.MethodPut, "/films/2/like/1", "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = call(t, handler, http.MethodPut, "/films/2/like/1", "")
	assert.Equal(t, http.StatusConflict, status)

	status, body = call(t, handler, http.MethodGet, "/films/popular?count=1", "")
	require.Equal(t, http.StatusOK, status)
	var popular []film.Film
	require.NoError(t, json.Unmarshal(body.Data, &popular))
	require.Len(t, popular, 1)
	assert.Equal(t, "Second", popular[0].Name)

	status, body = call(t, handler, http.MethodDelete, "/films/1/like/2", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Like not found", body.Error)

	status, _ = call(t, handler, http.MethodDelete, "/films/2", "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = call(t, handler, http.MethodGet, "/films/2", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_Classifications(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	status, body := call(t, handler, http.MethodGet, "/mpa", "")
	require.Equal(t, http.StatusOK, status)
	var ratings []mpa.Mpa
	require.NoError(t, json.Unmarshal(body.Data, &ratings))
	assert.Len(t, ratings, 5)

	status, body = call(t, handler, http.MethodGet, "/genres/6", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":6,"name":"Action"}`, string(body.Data))

	status, _ = call(t, handler, http.MethodGet, "/mpa/0", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAPI_Infrastructure(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("connection refused") },
	})

	status, _ := call(t, handler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)

	status, body := call(t, handler, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, string(body.Data), `"degraded"`)

	request := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "filmorate_http_requests_total")
}
