// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation

import (
	"context"
	"fmt"

	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/platform/postgres"
)

// PostgresJournal writes relation edges to core.friendship and core.filmlike.
//
// A friendship is stored as two directed rows written in one transaction.
type PostgresJournal struct {
	db postgres.DB
}

func NewPostgresJournal(db postgres.DB) *PostgresJournal {
	return &PostgresJournal{db: db}
}

var _ Journal = (*PostgresJournal)(nil)

func (journal *PostgresJournal) AddFriend(context context.Context, userID, friendID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, $2), ($2, $1)
		ON CONFLICT DO NOTHING
	`,
		schema.CoreFriendship.Table, schema.CoreFriendship.UserID, schema.CoreFriendship.FriendID,
	)

	transaction, err := journal.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_add_friend")
	}
	defer transaction.Rollback(context)

	if _, err := transaction.Exec(context, query, userID, friendID); err != nil {
		return dberr.Wrap(err, "add_friend")
	}

	return dberr.Wrap(transaction.Commit(context), "commit_add_friend")
}

func (journal *PostgresJournal) RemoveFriend(context context.Context, userID, friendID int64) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE (%s = $1 AND %s = $2) OR (%s = $2 AND %s = $1)
	`,
		schema.CoreFriendship.Table,
		schema.CoreFriendship.UserID, schema.CoreFriendship.FriendID,
		schema.CoreFriendship.UserID, schema.CoreFriendship.FriendID,
	)

	_, err := journal.db.Exec(context, query, userID, friendID)
	return dberr.Wrap(err, "remove_friend")
}

func (journal *PostgresJournal) AddLike(context context.Context, filmID, userID int64) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.CoreFilmLike.Table, schema.CoreFilmLike.FilmID, schema.CoreFilmLike.UserID)

	_, err := journal.db.Exec(context, query, filmID, userID)
	return dberr.Wrap(err, "add_like")
}

func (journal *PostgresJournal) RemoveLike(context context.Context, filmID, userID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreFilmLike.Table, schema.CoreFilmLike.FilmID, schema.CoreFilmLike.UserID)

	_, err := journal.db.Exec(context, query, filmID, userID)
	return dberr.Wrap(err, "remove_like")
}

// Load reads every stored edge, oldest first, for [Engine.Restore].
func (journal *PostgresJournal) Load(context context.Context) (Snapshot, error) {
	var snapshot Snapshot

	// One row per unordered pair is enough; Restore writes both directions.
	friendQuery := fmt.Sprintf(`
		SELECT %s, %s FROM %s
		WHERE %s < %s
		ORDER BY %s, %s, %s
	`,
		schema.CoreFriendship.UserID, schema.CoreFriendship.FriendID, schema.CoreFriendship.Table,
		schema.CoreFriendship.UserID, schema.CoreFriendship.FriendID,
		schema.CoreFriendship.CreatedAt, schema.CoreFriendship.UserID, schema.CoreFriendship.FriendID,
	)
	friendships, err := journal.pairs(context, friendQuery, "load_friendships")
	if err != nil {
		return snapshot, err
	}

	likeQuery := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s, %s, %s`,
		schema.CoreFilmLike.FilmID, schema.CoreFilmLike.UserID, schema.CoreFilmLike.Table,
		schema.CoreFilmLike.CreatedAt, schema.CoreFilmLike.FilmID, schema.CoreFilmLike.UserID,
	)
	likes, err := journal.pairs(context, likeQuery, "load_likes")
	if err != nil {
		return snapshot, err
	}

	snapshot.Friendships = friendships
	snapshot.Likes = likes
	return snapshot, nil
}

func (journal *PostgresJournal) pairs(context context.Context, query, action string) ([]Pair, error) {
	rows, err := journal.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var pairs []Pair
	for rows.Next() {
		var pair Pair
		if err := rows.Scan(&pair.Left, &pair.Right); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		pairs = append(pairs, pair)
	}
	return pairs, dberr.Wrap(rows.Err(), action)
}
