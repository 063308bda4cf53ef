// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/core/catalog"
	"github.com/taibuivan/filmorate/internal/core/identity"
	"github.com/taibuivan/filmorate/internal/core/relation"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/pkg/date"
)

type noFilms struct{}

func (noFilms) Require(_ context.Context, id int64) error { return apperr.NotFoundID("Film", id) }

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := NewCatalog(catalog.NewMemory[*User](), identity.NewSequence(0), logger)
	engine := relation.NewEngine(users, noFilms{}, nil, logger)
	return NewService(users, engine, logger)
}

func mustCreate(t *testing.T, service *Service, login string) *User {
	t.Helper()
	birthday := date.New(2000, time.January, 1)
	created, err := service.CreateUser(context.Background(), &User{
		Email:    login + "@example.com",
		Login:    login,
		Birthday: &birthday,
	})
	require.NoError(t, err)
	return created
}

func TestService_CreateDefaultsName(t *testing.T) {
	service := newTestService(t)

	joe := mustCreate(t, service, "joe")
	assert.Equal(t, int64(1), joe.ID)
	assert.Equal(t, "joe", joe.Name)

	stored, err := service.GetUser(context.Background(), joe.ID)
	require.NoError(t, err)
	assert.Equal(t, joe, stored)
}

func TestService_UpdateKeepsGivenName(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	joe := mustCreate(t, service, "joe")

	joe.Name = "Joseph"
	updated, err := service.UpdateUser(ctx, joe)
	require.NoError(t, err)
	assert.Equal(t, "Joseph", updated.Name)

	ghost := joe.Clone()
	ghost.ID = 77
	_, err = service.UpdateUser(ctx, ghost)
	assert.Equal(t, "User with id 77 not found", err.Error())
}

func TestService_Friends(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	a := mustCreate(t, service, "a")
	b := mustCreate(t, service, "b")
	c := mustCreate(t, service, "c")

	require.NoError(t, service.AddFriend(ctx, a.ID, b.ID))
	require.NoError(t, service.AddFriend(ctx, a.ID, c.ID))
	require.NoError(t, service.AddFriend(ctx, b.ID, c.ID))

	friends, err := service.Friends(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []*User{b, c}, friends)

	common, err := service.CommonFriends(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []*User{c}, common)

	_, err = service.Friends(ctx, 404)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestService_FriendsSkipsVanishedRecords(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	a := mustCreate(t, service, "a")
	b := mustCreate(t, service, "b")
	c := mustCreate(t, service, "c")
	require.NoError(t, service.AddFriend(ctx, a.ID, b.ID))
	require.NoError(t, service.AddFriend(ctx, a.ID, c.ID))

	// Bypass the service so the relation still points at b.
	require.NoError(t, service.users.Delete(ctx, b.ID))

	friends, err := service.Friends(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []*User{c}, friends)
}

func TestService_DeleteUserDropsFriendships(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)
	a := mustCreate(t, service, "a")
	b := mustCreate(t, service, "b")
	require.NoError(t, service.AddFriend(ctx, a.ID, b.ID))

	require.NoError(t, service.DeleteUser(ctx, b.ID))

	friends, err := service.Friends(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	err = service.DeleteUser(ctx, b.ID)
	assert.Equal(t, "User with id 2 not found", err.Error())

	next := mustCreate(t, service, "d")
	assert.Equal(t, int64(3), next.ID, "ids are not reused")
}
