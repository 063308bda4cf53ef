// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"
	"log/slog"
	"sort"

	"github.com/taibuivan/filmorate/internal/core/catalog"
	"github.com/taibuivan/filmorate/internal/core/identity"
	"github.com/taibuivan/filmorate/internal/core/relation"
	"github.com/taibuivan/filmorate/internal/platform/ctxutil"
	"github.com/taibuivan/filmorate/pkg/slice"
)

// NewCatalog wires film admission rules and reference resolution onto a backend.
func NewCatalog(backend catalog.Backend[*Film], ids identity.Allocator, mpas MpaLookup, genres GenreLookup, logger *slog.Logger) *catalog.Catalog[*Film] {
	references := resolver{mpas: mpas, genres: genres}
	return catalog.New(Kind, backend, ids, catalog.Hooks[*Film]{
		Normalize: Normalize,
		Validate:  Validate,
		Prepare:   references.prepare,
	}, logger)
}

type Service struct {
	films     *catalog.Catalog[*Film]
	relations *relation.Engine
	enricher  *Enricher
	logger    *slog.Logger
}

func NewService(films *catalog.Catalog[*Film], relations *relation.Engine, enricher *Enricher, logger *slog.Logger) *Service {
	return &Service{
		films:     films,
		relations: relations,
		enricher:  enricher,
		logger:    logger,
	}
}

func (service *Service) ListFilms(context context.Context) ([]*Film, error) {
	films, err := service.films.All(context)
	if err != nil {
		return nil, err
	}
	service.enricher.Enrich(context, films...)
	return films, nil
}

func (service *Service) GetFilm(context context.Context, id int64) (*Film, error) {
	found, err := service.films.Get(context, id)
	if err != nil {
		return nil, err
	}
	service.enricher.Enrich(context, found)
	return found, nil
}

func (service *Service) CreateFilm(context context.Context, candidate *Film) (*Film, error) {
	created, err := service.films.Create(context, candidate)
	if err != nil {
		return nil, err
	}

	ctxutil.LoggerOr(context, service.logger).Info("film_created",
		slog.Int64("film_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

func (service *Service) UpdateFilm(context context.Context, candidate *Film) (*Film, error) {
	updated, err := service.films.Update(context, candidate)
	if err != nil {
		return nil, err
	}

	ctxutil.LoggerOr(context, service.logger).Info("film_updated", slog.Int64("film_id", updated.ID))
	return updated, nil
}

// DeleteFilm removes the film and all of its likes.
func (service *Service) DeleteFilm(context context.Context, id int64) error {
	if err := service.films.Delete(context, id); err != nil {
		return err
	}
	service.relations.ForgetFilm(id)

	ctxutil.LoggerOr(context, service.logger).Warn("film_deleted", slog.Int64("film_id", id))
	return nil
}

// # Likes

func (service *Service) AddLike(context context.Context, filmID, userID int64) error {
	return service.relations.AddLike(context, filmID, userID)
}

func (service *Service) RemoveLike(context context.Context, filmID, userID int64) error {
	return service.relations.RemoveLike(context, filmID, userID)
}

// Popular returns up to count films ordered by like count, most liked first.
//
// Films with equal counts keep their catalog order. A count of zero or less
// means [DefaultPopularCount].
func (service *Service) Popular(context context.Context, count int) ([]*Film, error) {
	if count <= 0 {
		count = DefaultPopularCount
	}

	films, err := service.films.All(context)
	if err != nil {
		return nil, err
	}

	likes := service.relations.LikeCounts(slice.Map(films, (*Film).GetID))
	sort.SliceStable(films, func(i, j int) bool {
		return likes[films[i].ID] > likes[films[j].ID]
	})

	if len(films) > count {
		films = films[:count]
	}

	service.enricher.Enrich(context, films...)
	return films, nil
}
