// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/filmorate/internal/core/catalog"
	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/mpa"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/platform/postgres"
	"github.com/taibuivan/filmorate/pkg/date"
)

// PostgresRepository stores films in core.film and their genres in core.filmgenre.
//
// Reads return classification ids only; names are filled in by [Enricher].
type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ catalog.Backend[*Film] = (*PostgresRepository)(nil)

func selectFilms() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.CoreFilm.Columns(), ", "), schema.CoreFilm.Table)
}

func scanFilm(row pgx.Row) (*Film, error) {
	f := &Film{Mpa: &mpa.Mpa{}, Genres: make([]genre.Genre, 0)}
	var released time.Time
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &released, &f.Duration, &f.Mpa.ID); err != nil {
		return nil, err
	}
	releaseDate := date.FromTime(released)
	f.ReleaseDate = &releaseDate
	return f, nil
}

func (repository *PostgresRepository) All(context context.Context) ([]*Film, error) {
	query := selectFilms() + fmt.Sprintf(` ORDER BY %s ASC`, schema.CoreFilm.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_films")
	}
	defer rows.Close()

	films := make([]*Film, 0)
	byID := make(map[int64]*Film)
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_film")
		}
		films = append(films, f)
		byID[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_films")
	}
	rows.Close()

	genreQuery := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s, %s`,
		schema.CoreFilmGenre.FilmID, schema.CoreFilmGenre.GenreID, schema.CoreFilmGenre.Table,
		schema.CoreFilmGenre.FilmID, schema.CoreFilmGenre.Position)

	genreRows, err := repository.db.Query(context, genreQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_film_genres")
	}
	defer genreRows.Close()

	for genreRows.Next() {
		var filmID, genreID int64
		if err := genreRows.Scan(&filmID, &genreID); err != nil {
			return nil, dberr.Wrap(err, "scan_film_genre")
		}
		if f, ok := byID[filmID]; ok {
			f.Genres = append(f.Genres, genre.Genre{ID: genreID})
		}
	}

	return films, dberr.Wrap(genreRows.Err(), "list_film_genres")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Film, error) {
	query := selectFilms() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreFilm.ID)

	f, err := scanFilm(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_film")
	}

	genreQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		schema.CoreFilmGenre.GenreID, schema.CoreFilmGenre.Table,
		schema.CoreFilmGenre.FilmID, schema.CoreFilmGenre.Position)

	rows, err := repository.db.Query(context, genreQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_film_genres")
	}
	defer rows.Close()

	for rows.Next() {
		var genreID int64
		if err := rows.Scan(&genreID); err != nil {
			return nil, dberr.Wrap(err, "scan_film_genre")
		}
		f.Genres = append(f.Genres, genre.Genre{ID: genreID})
	}

	return f, dberr.Wrap(rows.Err(), "get_film_genres")
}

func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CoreFilm.Table, schema.CoreFilm.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "film_exists")
	}
	return exists, nil
}

// Insert writes the film row and its genre links in one transaction.
func (repository *PostgresRepository) Insert(context context.Context, f *Film) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.CoreFilm.Table, strings.Join(schema.CoreFilm.Columns(), ", "))

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_film")
	}
	defer transaction.Rollback(context)

	if _, err := transaction.Exec(context, query, f.ID, f.Name, f.Description, f.ReleaseDate.Time(), f.Duration, f.Mpa.ID); err != nil {
		return dberr.Wrap(err, "create_film")
	}

	if err := writeGenres(context, transaction, f); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "commit_create_film")
}

// Replace overwrites the film row and rewrites its genre links.
func (repository *PostgresRepository) Replace(context context.Context, f *Film) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		schema.CoreFilm.Table,
		schema.CoreFilm.Name, schema.CoreFilm.Description, schema.CoreFilm.ReleaseDate,
		schema.CoreFilm.Duration, schema.CoreFilm.MpaID,
		schema.CoreFilm.ID,
	)
	clearGenres := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreFilmGenre.Table, schema.CoreFilmGenre.FilmID)

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_film")
	}
	defer transaction.Rollback(context)

	cmd, err := transaction.Exec(context, query, f.ID, f.Name, f.Description, f.ReleaseDate.Time(), f.Duration, f.Mpa.ID)
	if err != nil {
		return dberr.Wrap(err, "update_film")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}

	if _, err := transaction.Exec(context, clearGenres, f.ID); err != nil {
		return dberr.Wrap(err, "clear_film_genres")
	}
	if err := writeGenres(context, transaction, f); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "commit_update_film")
}

// Delete removes the film; genre links and likes go with it by cascade.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreFilm.Table, schema.CoreFilm.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_film")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func writeGenres(context context.Context, transaction pgx.Tx, f *Film) error {
	if len(f.Genres) == 0 {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.CoreFilmGenre.Table, schema.CoreFilmGenre.FilmID, schema.CoreFilmGenre.GenreID, schema.CoreFilmGenre.Position)

	for position, g := range f.Genres {
		if _, err := transaction.Exec(context, query, f.ID, g.ID, position); err != nil {
			return dberr.Wrap(err, "create_film_genre")
		}
	}
	return nil
}
