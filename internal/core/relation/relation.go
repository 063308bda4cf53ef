// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package relation maintains the friendship graph and the like relation.

Friendship is symmetric: every mutation updates both adjacency sets under the
same lock, so b is a friend of a exactly when a is a friend of b. Likes are a
set of (film, user) pairs with at most one entry per pair.

Locking:

  - Existence checks against the user and film catalogs run first and release
    their locks before the relation lock is taken. No call holds two locks.
  - friendsMu guards adjacency sets; likesMu guards like sets. They are never
    held together.
  - A check can pass just before a concurrent delete. Deleted ids are
    therefore tombstoned before their edges are dropped, and every add
    re-checks the tombstones under the relation lock.

Policy: adding an existing edge is a CONFLICT; removing a missing friendship is
a no-op; removing a missing like is NOT_FOUND.
*/
package relation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/ctxutil"
)

// Field names reported on validation failures.
const (
	FieldFriendID = "friendId"
)

// Kind names used when a tombstoned id is referenced.
const (
	kindUser = "User"
	kindFilm = "Film"
)

// Existence resolves identifiers of one kind. Require fails with NOT_FOUND
// naming the kind and id.
type Existence interface {
	Require(context context.Context, id int64) error
}

// Engine is the relationship engine.
type Engine struct {
	users   Existence
	films   Existence
	journal Journal
	logger  *slog.Logger

	friendsMu sync.RWMutex
	friends   map[int64]*orderedSet

	likesMu sync.RWMutex
	likes   map[int64]*orderedSet // film -> users

	// Identifiers are never reused, so tombstones are permanent.
	deletedUsers sync.Map
	deletedFilms sync.Map
}

// NewEngine returns an empty engine. A nil journal means nothing is persisted.
func NewEngine(users, films Existence, journal Journal, logger *slog.Logger) *Engine {
	if journal == nil {
		journal = NopJournal{}
	}
	return &Engine{
		users:   users,
		films:   films,
		journal: journal,
		logger:  logger,
		friends: make(map[int64]*orderedSet),
		likes:   make(map[int64]*orderedSet),
	}
}

// # Friendship

// AddFriend makes userID and friendID friends of each other.
func (engine *Engine) AddFriend(context context.Context, userID, friendID int64) error {
	if userID == friendID {
		return apperr.InvalidField(FieldFriendID, "A user cannot befriend themselves")
	}
	if err := engine.requireUsers(context, userID, friendID); err != nil {
		return err
	}

	engine.friendsMu.Lock()
	defer engine.friendsMu.Unlock()

	if err := engine.deletedUser(userID, friendID); err != nil {
		return err
	}
	if engine.adjacency(userID).has(friendID) {
		return apperr.Conflict(fmt.Sprintf("Users %d and %d are already friends", userID, friendID))
	}

	if err := engine.journal.AddFriend(context, userID, friendID); err != nil {
		return err
	}

	engine.adjacency(userID).add(friendID)
	engine.adjacency(friendID).add(userID)

	changesTotal.WithLabelValues(relationFriendship, opAdd).Inc()
	ctxutil.LoggerOr(context, engine.logger).Info("friend_added",
		slog.Int64("user_id", userID),
		slog.Int64("friend_id", friendID),
	)
	return nil
}

// RemoveFriend ends the friendship in both directions. Removing a pair that
// is not friends succeeds without changes.
func (engine *Engine) RemoveFriend(context context.Context, userID, friendID int64) error {
	if err := engine.requireUsers(context, userID, friendID); err != nil {
		return err
	}

	engine.friendsMu.Lock()
	defer engine.friendsMu.Unlock()

	forward := engine.friends[userID] != nil && engine.friends[userID].has(friendID)
	backward := engine.friends[friendID] != nil && engine.friends[friendID].has(userID)
	if !forward && !backward {
		return nil
	}

	if err := engine.journal.RemoveFriend(context, userID, friendID); err != nil {
		return err
	}

	// Both sides are cleared even if only one held the edge.
	engine.detach(userID, friendID)
	engine.detach(friendID, userID)

	changesTotal.WithLabelValues(relationFriendship, opRemove).Inc()
	ctxutil.LoggerOr(context, engine.logger).Info("friend_removed",
		slog.Int64("user_id", userID),
		slog.Int64("friend_id", friendID),
	)
	return nil
}

// FriendsOf returns the friend ids of userID in the order they were added.
func (engine *Engine) FriendsOf(context context.Context, userID int64) ([]int64, error) {
	if err := engine.users.Require(context, userID); err != nil {
		return nil, err
	}

	engine.friendsMu.RLock()
	defer engine.friendsMu.RUnlock()

	set, ok := engine.friends[userID]
	if !ok {
		return []int64{}, nil
	}
	return set.snapshot(), nil
}

// CommonFriends returns ids present in both friend sets, in userID's order.
func (engine *Engine) CommonFriends(context context.Context, userID, otherID int64) ([]int64, error) {
	if err := engine.requireUsers(context, userID, otherID); err != nil {
		return nil, err
	}

	engine.friendsMu.RLock()
	defer engine.friendsMu.RUnlock()

	common := make([]int64, 0)
	left, right := engine.friends[userID], engine.friends[otherID]
	if left == nil || right == nil {
		return common, nil
	}

	for _, id := range left.items {
		if right.has(id) {
			common = append(common, id)
		}
	}
	return common, nil
}

// # Likes

// AddLike records that userID likes filmID.
func (engine *Engine) AddLike(context context.Context, filmID, userID int64) error {
	if err := engine.requireFilmAndUser(context, filmID, userID); err != nil {
		return err
	}

	engine.likesMu.Lock()
	defer engine.likesMu.Unlock()

	if _, gone := engine.deletedFilms.Load(filmID); gone {
		return apperr.NotFoundID(kindFilm, filmID)
	}
	if err := engine.deletedUser(userID); err != nil {
		return err
	}
	if set := engine.likes[filmID]; set != nil && set.has(userID) {
		return apperr.Conflict(fmt.Sprintf("User %d already liked film %d", userID, filmID))
	}

	if err := engine.journal.AddLike(context, filmID, userID); err != nil {
		return err
	}

	set, ok := engine.likes[filmID]
	if !ok {
		set = newOrderedSet()
		engine.likes[filmID] = set
	}
	set.add(userID)

	changesTotal.WithLabelValues(relationLike, opAdd).Inc()
	ctxutil.LoggerOr(context, engine.logger).Info("like_added",
		slog.Int64("film_id", filmID),
		slog.Int64("user_id", userID),
	)
	return nil
}

// RemoveLike withdraws a like. A like that was never recorded is NOT_FOUND.
func (engine *Engine) RemoveLike(context context.Context, filmID, userID int64) error {
	if err := engine.requireFilmAndUser(context, filmID, userID); err != nil {
		return err
	}

	engine.likesMu.Lock()
	defer engine.likesMu.Unlock()

	set := engine.likes[filmID]
	if set == nil || !set.has(userID) {
		return apperr.NotFound("Like")
	}

	if err := engine.journal.RemoveLike(context, filmID, userID); err != nil {
		return err
	}

	set.remove(userID)
	if set.len() == 0 {
		delete(engine.likes, filmID)
	}

	changesTotal.WithLabelValues(relationLike, opRemove).Inc()
	ctxutil.LoggerOr(context, engine.logger).Info("like_removed",
		slog.Int64("film_id", filmID),
		slog.Int64("user_id", userID),
	)
	return nil
}

// LikeCount returns how many users like filmID.
func (engine *Engine) LikeCount(context context.Context, filmID int64) (int, error) {
	if err := engine.films.Require(context, filmID); err != nil {
		return 0, err
	}

	engine.likesMu.RLock()
	defer engine.likesMu.RUnlock()

	if set := engine.likes[filmID]; set != nil {
		return set.len(), nil
	}
	return 0, nil
}

// LikeCounts returns like counts for the given films in one pass.
// Unknown ids count as zero.
func (engine *Engine) LikeCounts(filmIDs []int64) map[int64]int {
	engine.likesMu.RLock()
	defer engine.likesMu.RUnlock()

	counts := make(map[int64]int, len(filmIDs))
	for _, id := range filmIDs {
		if set := engine.likes[id]; set != nil {
			counts[id] = set.len()
		} else {
			counts[id] = 0
		}
	}
	return counts
}

// # Cleanup after deletes

// ForgetUser drops every friendship and like involving userID and rejects
// later edges to it.
//
// Called after the user record is gone; storage cascades handle the durable side.
func (engine *Engine) ForgetUser(userID int64) {
	engine.deletedUsers.Store(userID, struct{}{})

	engine.friendsMu.Lock()
	if set, ok := engine.friends[userID]; ok {
		for _, friendID := range set.items {
			engine.detach(friendID, userID)
		}
		delete(engine.friends, userID)
	}
	engine.friendsMu.Unlock()

	engine.likesMu.Lock()
	for filmID, set := range engine.likes {
		if set.remove(userID) && set.len() == 0 {
			delete(engine.likes, filmID)
		}
	}
	engine.likesMu.Unlock()
}

// ForgetFilm drops every like of filmID and rejects later likes of it.
func (engine *Engine) ForgetFilm(filmID int64) {
	engine.deletedFilms.Store(filmID, struct{}{})

	engine.likesMu.Lock()
	defer engine.likesMu.Unlock()

	delete(engine.likes, filmID)
}

// Restore replaces in-memory state with a persisted snapshot.
func (engine *Engine) Restore(snapshot Snapshot) {
	engine.friendsMu.Lock()
	engine.friends = make(map[int64]*orderedSet)
	for _, pair := range snapshot.Friendships {
		if pair.Left == pair.Right {
			continue
		}
		engine.adjacency(pair.Left).add(pair.Right)
		engine.adjacency(pair.Right).add(pair.Left)
	}
	engine.friendsMu.Unlock()

	engine.likesMu.Lock()
	engine.likes = make(map[int64]*orderedSet)
	for _, pair := range snapshot.Likes {
		set, ok := engine.likes[pair.Left]
		if !ok {
			set = newOrderedSet()
			engine.likes[pair.Left] = set
		}
		set.add(pair.Right)
	}
	engine.likesMu.Unlock()
}

// # Helpers

func (engine *Engine) requireUsers(context context.Context, ids ...int64) error {
	for _, id := range ids {
		if err := engine.users.Require(context, id); err != nil {
			return err
		}
	}
	return nil
}

func (engine *Engine) requireFilmAndUser(context context.Context, filmID, userID int64) error {
	if err := engine.films.Require(context, filmID); err != nil {
		return err
	}
	return engine.users.Require(context, userID)
}

// deletedUser reports the first tombstoned id as NOT_FOUND.
func (engine *Engine) deletedUser(ids ...int64) error {
	for _, id := range ids {
		if _, gone := engine.deletedUsers.Load(id); gone {
			return apperr.NotFoundID(kindUser, id)
		}
	}
	return nil
}

// adjacency returns the friend set of id, creating it. Caller holds friendsMu.
func (engine *Engine) adjacency(id int64) *orderedSet {
	set, ok := engine.friends[id]
	if !ok {
		set = newOrderedSet()
		engine.friends[id] = set
	}
	return set
}

// detach removes friendID from the set of userID. Caller holds friendsMu.
func (engine *Engine) detach(userID, friendID int64) {
	set, ok := engine.friends[userID]
	if !ok {
		return
	}
	set.remove(friendID)
	if set.len() == 0 {
		delete(engine.friends, userID)
	}
}
