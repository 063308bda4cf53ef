// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package identity allocates positive, strictly increasing identifiers.

Each entity kind (film, user) owns exactly one [Allocator]. Identifiers are
never reused, including after a delete.

Implementations:

  - [Sequence]: process-local atomic counter for the memory backend.
  - [RedisSequence]: INCR on a shared key, for several memory-backed replicas.
  - [PostgresSequence]: nextval on a database sequence, for the postgres backend.
*/
package identity

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/constants"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/platform/postgres"
)

// Allocator hands out the next identifier for one entity kind.
type Allocator interface {
	Next(context context.Context) (int64, error)
}

// # Local Sequence

// Sequence is a lock-free in-process counter. The zero value starts at 1.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a counter whose first identifier is start+1.
func NewSequence(start int64) *Sequence {
	sequence := &Sequence{}
	sequence.last.Store(start)
	return sequence
}

// Next implements [Allocator]. It never fails.
func (sequence *Sequence) Next(_ context.Context) (int64, error) {
	return sequence.last.Add(1), nil
}

// # Shared Sequence

// RedisSequence allocates identifiers with Redis INCR.
type RedisSequence struct {
	client *redis.Client
	key    string
}

// NewRedisSequence binds a counter to the key for kind (e.g. "film").
func NewRedisSequence(client *redis.Client, kind string) *RedisSequence {
	return &RedisSequence{client: client, key: constants.RedisPrefixSequence + kind}
}

// Next implements [Allocator].
func (sequence *RedisSequence) Next(context context.Context) (int64, error) {
	value, err := sequence.client.Incr(context, sequence.key).Result()
	if err != nil {
		return 0, apperr.Internal(fmt.Errorf("identity: incr %s: %w", sequence.key, err))
	}
	return value, nil
}

// # Durable Sequence

// PostgresSequence allocates identifiers from a PostgreSQL sequence.
//
// The sequence is the high-water mark: deletes never lower it and it survives
// restarts, so a deleted identifier is never handed out again.
type PostgresSequence struct {
	db   postgres.DB
	name string
}

// NewPostgresSequence binds an allocator to the sequence name, e.g. "core.film_id_seq".
func NewPostgresSequence(db postgres.DB, name string) *PostgresSequence {
	return &PostgresSequence{db: db, name: name}
}

// Next implements [Allocator].
func (sequence *PostgresSequence) Next(context context.Context) (int64, error) {
	var id int64
	err := sequence.db.QueryRow(context, `SELECT nextval($1::regclass)`, sequence.name).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "nextval "+sequence.name)
	}
	return id, nil
}
