// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/filmorate/internal/core/catalog"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/platform/postgres"
	"github.com/taibuivan/filmorate/pkg/date"
)

// PostgresRepository stores users in core.account.
type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ catalog.Backend[*User] = (*PostgresRepository)(nil)

func selectUsers() string {
	return fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(schema.CoreAccount.Columns(), ", "), schema.CoreAccount.Table)
}

func scanUser(row pgx.Row) (*User, error) {
	u := &User{}
	var birthday time.Time
	if err := row.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &birthday); err != nil {
		return nil, err
	}
	born := date.FromTime(birthday)
	u.Birthday = &born
	return u, nil
}

func (repository *PostgresRepository) All(context context.Context) ([]*User, error) {
	query := selectUsers() + fmt.Sprintf(` ORDER BY %s ASC`, schema.CoreAccount.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}
	return users, dberr.Wrap(rows.Err(), "list_users")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*User, error) {
	query := selectUsers() + fmt.Sprintf(` WHERE %s = $1`, schema.CoreAccount.ID)

	u, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}
	return u, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CoreAccount.Table, schema.CoreAccount.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "user_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) Insert(context context.Context, u *User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)`,
		schema.CoreAccount.Table, strings.Join(schema.CoreAccount.Columns(), ", "))

	_, err := repository.db.Exec(context, query, u.ID, u.Email, u.Login, u.Name, u.Birthday.Time())
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) Replace(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
	`,
		schema.CoreAccount.Table,
		schema.CoreAccount.Email, schema.CoreAccount.Login, schema.CoreAccount.Name, schema.CoreAccount.Birthday,
		schema.CoreAccount.ID,
	)

	cmd, err := repository.db.Exec(context, query, u.ID, u.Email, u.Login, u.Name, u.Birthday.Time())
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete removes the account; friendships and likes go with it by cascade.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreAccount.Table, schema.CoreAccount.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
