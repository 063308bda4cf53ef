// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

// Memory is an in-process [Backend] guarded by a single RWMutex.
//
// Records are cloned on the way in and on the way out.
type Memory[T Entity[T]] struct {
	mu    sync.RWMutex
	order []int64
	items map[int64]T
}

// NewMemory returns an empty backend.
func NewMemory[T Entity[T]]() *Memory[T] {
	return &Memory[T]{items: make(map[int64]T)}
}

func (memory *Memory[T]) All(_ context.Context) ([]T, error) {
	memory.mu.RLock()
	defer memory.mu.RUnlock()

	snapshot := make([]T, 0, len(memory.order))
	for _, id := range memory.order {
		snapshot = append(snapshot, memory.items[id].Clone())
	}
	return snapshot, nil
}

func (memory *Memory[T]) Get(_ context.Context, id int64) (T, error) {
	memory.mu.RLock()
	defer memory.mu.RUnlock()

	entity, ok := memory.items[id]
	if !ok {
		var zero T
		return zero, apperr.ErrNotFound
	}
	return entity.Clone(), nil
}

func (memory *Memory[T]) Exists(_ context.Context, id int64) (bool, error) {
	memory.mu.RLock()
	defer memory.mu.RUnlock()

	_, ok := memory.items[id]
	return ok, nil
}

func (memory *Memory[T]) Insert(_ context.Context, entity T) error {
	memory.mu.Lock()
	defer memory.mu.Unlock()

	id := entity.GetID()
	if _, taken := memory.items[id]; taken {
		return apperr.Conflict("Duplicate record")
	}

	memory.items[id] = entity.Clone()
	memory.order = append(memory.order, id)
	return nil
}

func (memory *Memory[T]) Replace(_ context.Context, entity T) error {
	memory.mu.Lock()
	defer memory.mu.Unlock()

	id := entity.GetID()
	if _, ok := memory.items[id]; !ok {
		return apperr.ErrNotFound
	}

	// Position in the enumeration order is kept.
	memory.items[id] = entity.Clone()
	return nil
}

func (memory *Memory[T]) Delete(_ context.Context, id int64) error {
	memory.mu.Lock()
	defer memory.mu.Unlock()

	if _, ok := memory.items[id]; !ok {
		return apperr.ErrNotFound
	}

	delete(memory.items, id)
	if index := slices.Index(memory.order, id); index >= 0 {
		memory.order = slices.Delete(memory.order, index, index+1)
	}
	return nil
}
