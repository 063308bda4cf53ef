package mpa_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/core/mpa"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

func newService(repo mpa.Repository) *mpa.Service {
	return mpa.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_Memory(t *testing.T) {
	ctx := context.Background()
	service := newService(mpa.NewMemoryRepository(mpa.Seed))

	ratings, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 5)
	assert.Equal(t, "G", ratings[0].Name)
	assert.Equal(t, "NC-17", ratings[4].Name)

	rating, err := service.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, &mpa.Mpa{ID: 3, Name: "PG-13"}, rating)

	_, err = service.Get(ctx, 9)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
	assert.Equal(t, "Mpa with id 9 not found", err.Error())
}

func TestPostgresRepository(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	service := newService(mpa.NewPostgresRepository(mock))

	mock.ExpectQuery("SELECT .+ FROM core.mpa ORDER BY").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "G").
			AddRow(int64(2), "PG"))

	ratings, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []mpa.Mpa{{ID: 1, Name: "G"}, {ID: 2, Name: "PG"}}, ratings)

	mock.ExpectQuery("SELECT .+ FROM core.mpa WHERE").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	_, err = service.Get(ctx, 7)
	assert.Equal(t, "Mpa with id 7 not found", err.Error())

	assert.NoError(t, mock.ExpectationsWereMet())
}
