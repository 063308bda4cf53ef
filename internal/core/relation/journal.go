// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package relation

import "context"

// Journal persists relation changes before they are applied in memory.
//
// A failed journal write aborts the mutation, so memory never runs ahead of
// durable state. Journal methods must be idempotent for the pair they touch.
type Journal interface {
	AddFriend(context context.Context, userID, friendID int64) error
	RemoveFriend(context context.Context, userID, friendID int64) error
	AddLike(context context.Context, filmID, userID int64) error
	RemoveLike(context context.Context, filmID, userID int64) error
}

// Pair is one stored relation edge.
type Pair struct {
	Left  int64
	Right int64
}

// Snapshot is the persisted state used to rebuild an [Engine] at startup.
type Snapshot struct {
	// Friendships holds one Pair per unordered friendship, oldest first.
	Friendships []Pair
	// Likes holds (film, user) pairs, oldest first.
	Likes []Pair
}

// NopJournal is used by the in-memory backend.
type NopJournal struct{}

func (NopJournal) AddFriend(context.Context, int64, int64) error { return nil }
func (NopJournal) RemoveFriend(context.Context, int64, int64) error { return nil }
func (NopJournal) AddLike(context.Context, int64, int64) error { return nil }
func (NopJournal) RemoveLike(context.Context, int64, int64) error { return nil }
