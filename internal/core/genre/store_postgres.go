package genre

import (
	"context"
	"fmt"

	"github.com/taibuivan/filmorate/internal/platform/postgres"
	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
)

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefGenre.ID, schema.RefGenre.Name, schema.RefGenre.Table, schema.RefGenre.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	genres := make([]Genre, 0)
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, dberr.Wrap(rows.Err(), "list_genres")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.RefGenre.ID, schema.RefGenre.Name, schema.RefGenre.Table, schema.RefGenre.ID)

	g := &Genre{}
	if err := repository.db.QueryRow(context, query, id).Scan(&g.ID, &g.Name); err != nil {
		return nil, dberr.Wrap(err, "get_genre")
	}
	return g, nil
}
