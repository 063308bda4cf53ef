// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog owns the canonical records of one entity kind.

A [Catalog] sits between a domain service and its storage [Backend]. It runs the
admission pipeline for writes and translates storage misses into errors that
name the entity kind and identifier.

Write pipeline:

	normalize -> validate -> prepare -> allocate id (create only) -> store

Normalization runs first so validation sees the text that will be stored.

Every check happens before the first write, so a failed create or update never
leaves a partial record behind.
*/
package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/filmorate/internal/core/identity"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

// FieldID is reported when an update arrives without an identifier.
const FieldID = "id"

// Entity is implemented by pointer types stored in a catalog.
type Entity[T any] interface {
	GetID() int64
	SetID(id int64)
	Clone() T
}

// Backend is the storage capability a catalog needs.
//
// Get, Replace and Delete return [apperr.ErrNotFound] for unknown identifiers.
// All returns records in insertion order. Implementations must not retain or
// hand out references that callers could mutate.
type Backend[T any] interface {
	All(context context.Context) ([]T, error)
	Get(context context.Context, id int64) (T, error)
	Exists(context context.Context, id int64) (bool, error)
	Insert(context context.Context, entity T) error
	Replace(context context.Context, entity T) error
	Delete(context context.Context, id int64) error
}

// Hooks customise the write pipeline for a kind.
type Hooks[T any] struct {
	// Normalize rewrites text fields in place (trim, Unicode NFC).
	Normalize func(entity T)

	// Validate is a pure structural check on the normalized record. The first violation wins.
	Validate func(entity T) error

	// Prepare applies defaults and resolves references.
	// It runs after validation and may fail with NOT_FOUND.
	Prepare func(context context.Context, entity T) error
}

// Catalog is a generic reference catalog.
type Catalog[T Entity[T]] struct {
	kind    string
	backend Backend[T]
	ids     identity.Allocator
	hooks   Hooks[T]
	logger  *slog.Logger
}

// New builds a catalog for kind, e.g. "Film". The kind appears in NOT_FOUND messages.
func New[T Entity[T]](kind string, backend Backend[T], ids identity.Allocator, hooks Hooks[T], logger *slog.Logger) *Catalog[T] {
	return &Catalog[T]{
		kind:    kind,
		backend: backend,
		ids:     ids,
		hooks:   hooks,
		logger:  logger,
	}
}

// Kind returns the entity kind name.
func (catalog *Catalog[T]) Kind() string { return catalog.kind }

// All returns a snapshot of every record in insertion order.
func (catalog *Catalog[T]) All(context context.Context) ([]T, error) {
	return catalog.backend.All(context)
}

// Get resolves id to its record.
func (catalog *Catalog[T]) Get(context context.Context, id int64) (T, error) {
	entity, err := catalog.backend.Get(context, id)
	if err != nil {
		var zero T
		return zero, catalog.named(err, id)
	}
	return entity, nil
}

// Exists reports whether id resolves, without producing a NOT_FOUND error.
func (catalog *Catalog[T]) Exists(context context.Context, id int64) (bool, error) {
	return catalog.backend.Exists(context, id)
}

// Require returns a NOT_FOUND error naming the kind when id does not resolve.
func (catalog *Catalog[T]) Require(context context.Context, id int64) error {
	found, err := catalog.backend.Exists(context, id)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFoundID(catalog.kind, id)
	}
	return nil
}

// Create admits a new record and assigns its identifier.
//
// Any identifier present on the candidate is ignored.
func (catalog *Catalog[T]) Create(context context.Context, candidate T) (T, error) {
	var zero T

	if err := catalog.check(candidate); err != nil {
		return zero, err
	}
	if err := catalog.prepare(context, candidate); err != nil {
		return zero, err
	}

	id, err := catalog.ids.Next(context)
	if err != nil {
		return zero, err
	}
	candidate.SetID(id)

	if err := catalog.backend.Insert(context, candidate); err != nil {
		return zero, err
	}
	return candidate.Clone(), nil
}

// Update replaces an existing record wholesale.
func (catalog *Catalog[T]) Update(context context.Context, candidate T) (T, error) {
	var zero T

	id := candidate.GetID()
	if id <= 0 {
		return zero, apperr.InvalidField(FieldID, "id must be set")
	}

	if err := catalog.check(candidate); err != nil {
		return zero, err
	}
	if err := catalog.Require(context, id); err != nil {
		return zero, err
	}
	if err := catalog.prepare(context, candidate); err != nil {
		return zero, err
	}

	if err := catalog.backend.Replace(context, candidate); err != nil {
		return zero, catalog.named(err, id)
	}
	return candidate.Clone(), nil
}

// Delete removes the record. Its identifier is never handed out again.
func (catalog *Catalog[T]) Delete(context context.Context, id int64) error {
	return catalog.named(catalog.backend.Delete(context, id), id)
}

// check normalizes then validates the candidate. Both write paths go through it.
func (catalog *Catalog[T]) check(candidate T) error {
	if catalog.hooks.Normalize != nil {
		catalog.hooks.Normalize(candidate)
	}

	if catalog.hooks.Validate == nil {
		return nil
	}
	if err := catalog.hooks.Validate(candidate); err != nil {
		catalog.logger.Debug("validation_failed",
			slog.String("kind", catalog.kind),
			slog.Int64("id", candidate.GetID()),
			slog.String("reason", err.Error()),
		)
		return err
	}
	return nil
}

func (catalog *Catalog[T]) prepare(context context.Context, candidate T) error {
	if catalog.hooks.Prepare == nil {
		return nil
	}
	return catalog.hooks.Prepare(context, candidate)
}

// named replaces a bare storage miss with one that names the kind and id.
func (catalog *Catalog[T]) named(err error, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFoundID(catalog.kind, id)
	}
	return err
}
