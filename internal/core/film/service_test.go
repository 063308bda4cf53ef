// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/core/catalog"
	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/identity"
	"github.com/taibuivan/filmorate/internal/core/mpa"
	"github.com/taibuivan/filmorate/internal/core/relation"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

// anyUser accepts user ids 1 through 10.
type anyUser struct{}

func (anyUser) Require(_ context.Context, id int64) error {
	if id < 1 || id > 10 {
		return apperr.NotFoundID("User", id)
	}
	return nil
}

type fixture struct {
	service *Service
	films   *catalog.Catalog[*Film]
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mpas := mpa.NewService(mpa.NewMemoryRepository(mpa.Seed), logger)
	genres := genre.NewService(genre.NewMemoryRepository(genre.Seed), logger)

	films := NewCatalog(catalog.NewMemory[*Film](), identity.NewSequence(0), mpas, genres, logger)
	engine := relation.NewEngine(anyUser{}, films, nil, logger)
	enricher := NewEnricher(mpas, genres, 16, time.Minute, logger)

	return fixture{service: NewService(films, engine, enricher, logger), films: films}
}

func (fx fixture) create(t *testing.T, name string) *Film {
	t.Helper()
	candidate := validFilm()
	candidate.Name = name
	created, err := fx.service.CreateFilm(context.Background(), candidate)
	require.NoError(t, err)
	return created
}

func TestCreateFilm_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	candidate := validFilm()
	candidate.Mpa = &mpa.Mpa{ID: 3}
	candidate.Genres = []genre.Genre{{ID: 2}, {ID: 1}, {ID: 2}}

	created, err := fx.service.CreateFilm(ctx, candidate)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, &mpa.Mpa{ID: 3, Name: "PG-13"}, created.Mpa)
	assert.Equal(t, []genre.Genre{{ID: 2, Name: "Drama"}, {ID: 1, Name: "Comedy"}}, created.Genres,
		"duplicates collapse and first-seen order is kept")

	fetched, err := fx.service.GetFilm(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateFilm_DefaultMpa(t *testing.T) {
	fx := newFixture(t)

	created := fx.create(t, "No rating given")
	assert.Equal(t, &mpa.Mpa{ID: mpa.DefaultID, Name: "G"}, created.Mpa)
	assert.NotNil(t, created.Genres)
	assert.Empty(t, created.Genres)
}

func TestCreateFilm_MissingReferenceStoresNothing(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	withGenre := validFilm()
	withGenre.Genres = []genre.Genre{{ID: 1}, {ID: 42}}
	_, err := fx.service.CreateFilm(ctx, withGenre)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
	assert.Equal(t, "Genre with id 42 not found", err.Error())

	withMpa := validFilm()
	withMpa.Mpa = &mpa.Mpa{ID: 9}
	_, err = fx.service.CreateFilm(ctx, withMpa)
	assert.Equal(t, "Mpa with id 9 not found", err.Error())

	films, err := fx.service.ListFilms(ctx)
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestUpdateFilm(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	created := fx.create(t, "Draft")

	t.Run("replaces wholesale", func(t *testing.T) {
		replacement := validFilm()
		replacement.ID = created.ID
		replacement.Name = "Final"
		replacement.Genres = []genre.Genre{{ID: 6}}

		updated, err := fx.service.UpdateFilm(ctx, replacement)
		require.NoError(t, err)
		assert.Equal(t, "Final", updated.Name)
		assert.Equal(t, []genre.Genre{{ID: 6, Name: "Action"}}, updated.Genres)
	})

	t.Run("unknown id", func(t *testing.T) {
		ghost := validFilm()
		ghost.ID = 500
		_, err := fx.service.UpdateFilm(ctx, ghost)
		assert.Equal(t, "Film with id 500 not found", err.Error())
	})

	t.Run("invalid candidate checked before existence", func(t *testing.T) {
		invalid := validFilm()
		invalid.ID = 500
		invalid.Duration = 0
		_, err := fx.service.UpdateFilm(ctx, invalid)
		assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	})
}

func like(t *testing.T, fx fixture, filmID int64, users ...int64) {
	t.Helper()
	for _, userID := range users {
		require.NoError(t, fx.service.AddLike(context.Background(), filmID, userID))
	}
}

func ids(films []*Film) []int64 {
	out := make([]int64, 0, len(films))
	for _, f := range films {
		out = append(out, f.ID)
	}
	return out
}

func TestPopular_StableTieBreak(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	f1 := fx.create(t, "F1")
	f2 := fx.create(t, "F2")
	f3 := fx.create(t, "F3")

	like(t, fx, f1.ID, 1, 2, 3)
	like(t, fx, f2.ID, 1, 2, 3, 4, 5)
	like(t, fx, f3.ID, 4, 5, 6)

	top, err := fx.service.Popular(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{f2.ID, f1.ID}, ids(top))

	all, err := fx.service.Popular(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{f2.ID, f1.ID, f3.ID}, ids(all), "non-positive count falls back to the default")
}

func TestPopular_DefaultCount(t *testing.T) {
	fx := newFixture(t)
	for range 12 {
		fx.create(t, "Film")
	}

	top, err := fx.service.Popular(context.Background(), -1)
	require.NoError(t, err)
	assert.Len(t, top, DefaultPopularCount)
	assert.Equal(t, int64(1), top[0].ID, "no likes keeps catalog order")
}

func TestLikes(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	f := fx.create(t, "Liked")

	require.NoError(t, fx.service.AddLike(ctx, f.ID, 1))

	err := fx.service.AddLike(ctx, f.ID, 1)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	err = fx.service.AddLike(ctx, 99, 1)
	assert.Equal(t, "Film with id 99 not found", err.Error())

	err = fx.service.RemoveLike(ctx, f.ID, 2)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	require.NoError(t, fx.service.RemoveLike(ctx, f.ID, 1))
}

func TestDeleteFilm(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	doomed := fx.create(t, "Doomed")
	kept := fx.create(t, "Kept")
	like(t, fx, doomed.ID, 1, 2)
	like(t, fx, kept.ID, 1)

	require.NoError(t, fx.service.DeleteFilm(ctx, doomed.ID))

	_, err := fx.service.GetFilm(ctx, doomed.ID)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	top, err := fx.service.Popular(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{kept.ID}, ids(top))

	next := fx.create(t, "After")
	assert.Equal(t, int64(3), next.ID)
}

func TestCreateFilm_DescriptionLimitAppliesAfterNormalization(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	// U+0958 is a composition exclusion: NFC stores it as two runes.
	tooLong := validFilm()
	tooLong.Description = strings.Repeat("\u0958", 200)

	_, err := fx.service.CreateFilm(ctx, tooLong)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Equal(t, FieldDescription, ae.Details[0].Field)

	all, _ := fx.service.ListFilms(ctx)
	assert.Empty(t, all)

	atLimit := validFilm()
	atLimit.Description = strings.Repeat("\u0958", 100)
	created, err := fx.service.CreateFilm(ctx, atLimit)
	require.NoError(t, err)
	assert.Equal(t, MaxDescriptionLength, utf8.RuneCountInString(created.Description))

	created.Description = strings.Repeat("\u0958", 101)
	_, err = fx.service.UpdateFilm(ctx, created)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}
