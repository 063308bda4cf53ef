// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Filmorate HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL and run migrations (postgres backend only).
//  4. Connect to Redis (only when REDIS_URL is set).
//  5. Pick identity allocators and build the relationship engine.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/filmorate/internal/api"
	"github.com/taibuivan/filmorate/internal/core/catalog"
	"github.com/taibuivan/filmorate/internal/core/film"
	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/identity"
	"github.com/taibuivan/filmorate/internal/core/mpa"
	"github.com/taibuivan/filmorate/internal/core/relation"
	"github.com/taibuivan/filmorate/internal/core/user"
	"github.com/taibuivan/filmorate/internal/platform/config"
	"github.com/taibuivan/filmorate/internal/platform/constants"
	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/migration"
	pgstore "github.com/taibuivan/filmorate/internal/platform/postgres"
	redisstore "github.com/taibuivan/filmorate/internal/platform/redis"
)

// storage bundles the backends chosen by STORAGE_BACKEND.
type storage struct {
	mpas    mpa.Repository
	genres  genre.Repository
	users   catalog.Backend[*user.User]
	films   catalog.Backend[*film.Film]
	journal relation.Journal

	// Durable allocators. Nil on the memory backend.
	userIDs identity.Allocator
	filmIDs identity.Allocator

	snapshot relation.Snapshot
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	var health api.HealthDependencies

	// ── 3. Storage ────────────────────────────────────────────────────────
	store := memoryStorage()
	if cfg.UsesPostgres() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		store, err = postgresStorage(startupCtx, pool)
		must(log, err, "load persisted state")

		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Identity Allocators ────────────────────────────────────────────
	if store.userIDs == nil {
		store.userIDs = allocator(rdb, "user")
		store.filmIDs = allocator(rdb, "film")
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	mpaService := mpa.NewService(store.mpas, log)
	genreService := genre.NewService(store.genres, log)

	users := user.NewCatalog(store.users, store.userIDs, log)
	films := film.NewCatalog(store.films, store.filmIDs, mpaService, genreService, log)

	relations := relation.NewEngine(users, films, store.journal, log)
	relations.Restore(store.snapshot)
	log.Info("relations_restored",
		slog.Int("friendships", len(store.snapshot.Friendships)),
		slog.Int("likes", len(store.snapshot.Likes)),
	)

	enricher := film.NewEnricher(mpaService, genreService, cfg.EnrichCacheSize, cfg.EnrichCacheTTL, log)

	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Film:      film.NewHandler(film.NewService(films, relations, enricher, log)),
		User:      user.NewHandler(user.NewService(users, relations, log)),
		Mpa:       mpa.NewHandler(mpaService),
		Genre:     genre.NewHandler(genreService),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func memoryStorage() storage {
	return storage{
		mpas:    mpa.NewMemoryRepository(mpa.Seed),
		genres:  genre.NewMemoryRepository(genre.Seed),
		users:   catalog.NewMemory[*user.User](),
		films:   catalog.NewMemory[*film.Film](),
		journal: relation.NopJournal{},
	}
}

func postgresStorage(ctx context.Context, db pgstore.DB) (storage, error) {
	journal := relation.NewPostgresJournal(db)
	snapshot, err := journal.Load(ctx)
	if err != nil {
		return storage{}, err
	}

	return storage{
		mpas:     mpa.NewPostgresRepository(db),
		genres:   genre.NewPostgresRepository(db),
		users:    user.NewPostgresRepository(db),
		films:    film.NewPostgresRepository(db),
		journal:  journal,
		userIDs:  identity.NewPostgresSequence(db, schema.CoreAccount.Sequence),
		filmIDs:  identity.NewPostgresSequence(db, schema.CoreFilm.Sequence),
		snapshot: snapshot,
	}, nil
}

// allocator picks the id source for the memory backend: a shared Redis
// counter when one is configured, otherwise a process-local sequence.
func allocator(rdb *goredis.Client, kind string) identity.Allocator {
	if rdb == nil {
		return identity.NewSequence(0)
	}
	return identity.NewRedisSequence(rdb, kind)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
