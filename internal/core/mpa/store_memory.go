package mpa

import (
	"context"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

// MemoryRepository serves a fixed table. It is read-only, so no locking is needed.
type MemoryRepository struct {
	rows []Mpa
}

func NewMemoryRepository(rows []Mpa) *MemoryRepository {
	return &MemoryRepository{rows: append([]Mpa(nil), rows...)}
}

func (repository *MemoryRepository) List(_ context.Context) ([]Mpa, error) {
	return append([]Mpa(nil), repository.rows...), nil
}

func (repository *MemoryRepository) Get(_ context.Context, id int64) (*Mpa, error) {
	for _, row := range repository.rows {
		if row.ID == id {
			found := row
			return &found, nil
		}
	}
	return nil, apperr.ErrNotFound
}
