package genre

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context) ([]Genre, error) {
	return service.repo.List(context)
}

// Get resolves id, failing with a NOT_FOUND that names the id.
func (service *Service) Get(context context.Context, id int64) (*Genre, error) {
	found, err := service.repo.Get(context, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.NotFoundID(Kind, id)
	}
	return found, err
}
