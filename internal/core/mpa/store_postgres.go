package mpa

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

func (repository *PostgresRepository) List(context context.Context) ([]Mpa, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefMpa.ID, schema.RefMpa.Name, schema.RefMpa.Table, schema.RefMpa.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_mpa")
	}
	defer rows.Close()

	ratings := make([]Mpa, 0)
	for rows.Next() {
		var m Mpa
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_mpa")
		}
		ratings = append(ratings, m)
	}

	return ratings, dberr.Wrap(rows.Err(), "list_mpa")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Mpa, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.RefMpa.ID, schema.RefMpa.Name, schema.RefMpa.Table, schema.RefMpa.ID)

	m := &Mpa{}
	if err := repository.db.QueryRow(context, query, id).Scan(&m.ID, &m.Name); err != nil {
		return nil, dberr.Wrap(err, "get_mpa")
	}
	return m, nil
}
