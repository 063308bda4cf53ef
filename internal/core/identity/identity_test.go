// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

func TestSequence_StartsAfterSeed(t *testing.T) {
	ctx := context.Background()

	var zero Sequence
	first, err := zero.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	seeded := NewSequence(41)
	next, _ := seeded.Next(ctx)
	assert.Equal(t, int64(42), next)
}

/*
TestSequence_ConcurrentUnique hammers the counter and checks that every
identifier is handed out exactly once.
*/
func TestSequence_ConcurrentUnique(t *testing.T) {
	const workers, perWorker = 16, 500

	sequence := NewSequence(0)
	results := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id, _ := sequence.Next(context.Background())
				results <- id
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]struct{}, workers*perWorker)
	for id := range results {
		_, duplicate := seen[id]
		require.False(t, duplicate, "id %d allocated twice", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisSequence_Next(t *testing.T) {
	ctx := context.Background()
	client := newRedis(t)

	films := NewRedisSequence(client, "film")
	users := NewRedisSequence(client, "user")

	a, err := films.Next(ctx)
	require.NoError(t, err)
	b, _ := films.Next(ctx)
	u, _ := users.Next(ctx)

	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(2), b)
	assert.Equal(t, int64(1), u, "kinds use independent counters")
}

func TestRedisSequence_Unavailable(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()
	server.Close()

	_, err := NewRedisSequence(client, "film").Next(context.Background())
	assert.Error(t, err)
}

func TestPostgresSequence_Next(t *testing.T) {
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// The sequence keeps counting past ids whose rows were deleted.
	mock.ExpectQuery(`SELECT nextval`).WithArgs("core.film_id_seq").
		WillReturnRows(pgxmock.NewRows([]string{"nextval"}).AddRow(int64(3)))
	mock.ExpectQuery(`SELECT nextval`).WithArgs("core.film_id_seq").
		WillReturnRows(pgxmock.NewRows([]string{"nextval"}).AddRow(int64(4)))

	sequence := NewPostgresSequence(mock, "core.film_id_seq")

	first, err := sequence.Next(ctx)
	require.NoError(t, err)
	second, err := sequence.Next(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), first)
	assert.Equal(t, int64(4), second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSequence_Failure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT nextval`).WithArgs("core.account_id_seq").
		WillReturnError(errors.New("connection reset"))

	_, err = NewPostgresSequence(mock, "core.account_id_seq").Next(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
}
