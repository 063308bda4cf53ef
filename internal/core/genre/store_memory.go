package genre

import (
	"context"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

// MemoryRepository serves a fixed table. It is read-only, so no locking is needed.
type MemoryRepository struct {
	rows []Genre
}

func NewMemoryRepository(rows []Genre) *MemoryRepository {
	return &MemoryRepository{rows: append([]Genre(nil), rows...)}
}

func (repository *MemoryRepository) List(_ context.Context) ([]Genre, error) {
	return append([]Genre(nil), repository.rows...), nil
}

func (repository *MemoryRepository) Get(_ context.Context, id int64) (*Genre, error) {
	for _, row := range repository.rows {
		if row.ID == id {
			found := row
			return &found, nil
		}
	}
	return nil, apperr.ErrNotFound
}
