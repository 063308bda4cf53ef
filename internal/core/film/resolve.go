// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"

	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/mpa"
)

// MpaLookup resolves a rating id. Unknown ids fail with NOT_FOUND naming the id.
type MpaLookup interface {
	Get(context context.Context, id int64) (*mpa.Mpa, error)
}

// GenreLookup resolves a genre id. Unknown ids fail with NOT_FOUND naming the id.
type GenreLookup interface {
	Get(context context.Context, id int64) (*genre.Genre, error)
}

// resolver is the prepare step for films. Every reference is resolved before
// the catalog writes anything, so a missing genre leaves storage untouched.
type resolver struct {
	mpas   MpaLookup
	genres GenreLookup
}

func (resolver resolver) prepare(context context.Context, candidate *Film) error {
	mpaID := mpa.DefaultID
	if candidate.Mpa != nil && candidate.Mpa.ID != 0 {
		mpaID = candidate.Mpa.ID
	}

	rating, err := resolver.mpas.Get(context, mpaID)
	if err != nil {
		return err
	}

	genres := make([]genre.Genre, 0, len(candidate.Genres))
	seen := make(map[int64]struct{}, len(candidate.Genres))
	for _, reference := range candidate.Genres {
		if _, duplicate := seen[reference.ID]; duplicate {
			continue
		}
		seen[reference.ID] = struct{}{}

		found, err := resolver.genres.Get(context, reference.ID)
		if err != nil {
			return err
		}
		genres = append(genres, *found)
	}

	candidate.Mpa = rating
	candidate.Genres = genres
	return nil
}
