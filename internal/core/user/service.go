// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/filmorate/internal/core/catalog"
	"github.com/taibuivan/filmorate/internal/core/identity"
	"github.com/taibuivan/filmorate/internal/core/relation"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/ctxutil"
)

// NewCatalog wires the user admission rules onto a storage backend.
func NewCatalog(backend catalog.Backend[*User], ids identity.Allocator, logger *slog.Logger) *catalog.Catalog[*User] {
	return catalog.New(Kind, backend, ids, catalog.Hooks[*User]{
		Normalize: Normalize,
		Validate:  Validate,
		Prepare: func(_ context.Context, candidate *User) error {
			DefaultName(candidate)
			return nil
		},
	}, logger)
}

type Service struct {
	users     *catalog.Catalog[*User]
	relations *relation.Engine
	logger    *slog.Logger
}

func NewService(users *catalog.Catalog[*User], relations *relation.Engine, logger *slog.Logger) *Service {
	return &Service{
		users:     users,
		relations: relations,
		logger:    logger,
	}
}

func (service *Service) ListUsers(context context.Context) ([]*User, error) {
	return service.users.All(context)
}

func (service *Service) GetUser(context context.Context, id int64) (*User, error) {
	return service.users.Get(context, id)
}

func (service *Service) CreateUser(context context.Context, candidate *User) (*User, error) {
	created, err := service.users.Create(context, candidate)
	if err != nil {
		return nil, err
	}

	ctxutil.LoggerOr(context, service.logger).Info("user_created",
		slog.Int64("user_id", created.ID),
		slog.String("login", created.Login),
	)
	return created, nil
}

func (service *Service) UpdateUser(context context.Context, candidate *User) (*User, error) {
	updated, err := service.users.Update(context, candidate)
	if err != nil {
		return nil, err
	}

	ctxutil.LoggerOr(context, service.logger).Info("user_updated", slog.Int64("user_id", updated.ID))
	return updated, nil
}

// DeleteUser removes the user and every friendship and like it took part in.
func (service *Service) DeleteUser(context context.Context, id int64) error {
	if err := service.users.Delete(context, id); err != nil {
		return err
	}
	service.relations.ForgetUser(id)

	ctxutil.LoggerOr(context, service.logger).Warn("user_deleted", slog.Int64("user_id", id))
	return nil
}

// # Friendship

func (service *Service) AddFriend(context context.Context, id, friendID int64) error {
	return service.relations.AddFriend(context, id, friendID)
}

func (service *Service) RemoveFriend(context context.Context, id, friendID int64) error {
	return service.relations.RemoveFriend(context, id, friendID)
}

// Friends returns the current records of id's friends.
func (service *Service) Friends(context context.Context, id int64) ([]*User, error) {
	ids, err := service.relations.FriendsOf(context, id)
	if err != nil {
		return nil, err
	}
	return service.resolve(context, ids)
}

// CommonFriends returns users befriended by both id and otherID.
func (service *Service) CommonFriends(context context.Context, id, otherID int64) ([]*User, error) {
	ids, err := service.relations.CommonFriends(context, id, otherID)
	if err != nil {
		return nil, err
	}
	return service.resolve(context, ids)
}

// resolve loads records for ids, skipping ids that no longer exist.
func (service *Service) resolve(context context.Context, ids []int64) ([]*User, error) {
	users := make([]*User, 0, len(ids))
	for _, id := range ids {
		found, err := service.users.Get(context, id)
		if errors.Is(err, apperr.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, found)
	}
	return users, nil
}
