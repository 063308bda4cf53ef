// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/taibuivan/filmorate/internal/platform/ctxutil"
)

var enrichLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "filmorate_enrich_lookups_total",
		Help: "Classification name lookups during enrichment, by result.",
	},
	[]string{"result"},
)

const (
	lookupHit    = "hit"
	lookupMiss   = "miss"
	lookupFailed = "failed"
)

// Enricher fills blank classification names on films read from storage.
//
// Enrichment is best effort. A reference whose id no longer resolves is left
// as it is and the read still succeeds.
type Enricher struct {
	mpas   MpaLookup
	genres GenreLookup
	names  *expirable.LRU[string, string]
	logger *slog.Logger
}

// NewEnricher caches up to size names for ttl.
func NewEnricher(mpas MpaLookup, genres GenreLookup, size int, ttl time.Duration, logger *slog.Logger) *Enricher {
	return &Enricher{
		mpas:   mpas,
		genres: genres,
		names:  expirable.NewLRU[string, string](size, nil, ttl),
		logger: logger,
	}
}

// Enrich updates films in place.
func (enricher *Enricher) Enrich(context context.Context, films ...*Film) {
	for _, f := range films {
		if f.Mpa != nil && f.Mpa.Name == "" {
			f.Mpa.Name = enricher.name(context, "mpa", f.Mpa.ID, enricher.mpaName)
		}
		for i := range f.Genres {
			if f.Genres[i].Name == "" {
				f.Genres[i].Name = enricher.name(context, "genre", f.Genres[i].ID, enricher.genreName)
			}
		}
	}
}

func (enricher *Enricher) name(context context.Context, kind string, id int64, load func(context.Context, int64) (string, error)) string {
	key := kind + ":" + strconv.FormatInt(id, 10)
	if cached, ok := enricher.names.Get(key); ok {
		enrichLookupsTotal.WithLabelValues(lookupHit).Inc()
		return cached
	}

	resolved, err := load(context, id)
	if err != nil {
		enrichLookupsTotal.WithLabelValues(lookupFailed).Inc()
		ctxutil.LoggerOr(context, enricher.logger).Debug("enrich_lookup_failed",
			slog.String("kind", kind),
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return ""
	}

	enrichLookupsTotal.WithLabelValues(lookupMiss).Inc()
	enricher.names.Add(key, resolved)
	return resolved
}

func (enricher *Enricher) mpaName(context context.Context, id int64) (string, error) {
	rating, err := enricher.mpas.Get(context, id)
	if err != nil {
		return "", err
	}
	return rating.Name, nil
}

func (enricher *Enricher) genreName(context context.Context, id int64) (string, error) {
	found, err := enricher.genres.Get(context, id)
	if err != nil {
		return "", err
	}
	return found.Name, nil
}
