package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"tagtheme/config"
	"tagtheme/internal/domain"
	"tagtheme/internal/repository/postgres"
	"tagtheme/internal/services"

	_ "github.com/lib/pq"
)

// app bundles the dependencies shared by every command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB
	tags   domain.TagService
	posts  domain.PostService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	tags := services.NewTagService(postgres.NewTagCatalog(db, cfg.TablePrefix))
	posts := services.NewPostService(postgres.NewPostRepository(db, cfg.TablePrefix), tags)

	if err := tags.VerifyNamespaces(ctx); err != nil {
		logger.WarnContext(ctx, "tag fields missing; tag lookups will fail until they are created", "err", err)
	}

	return &app{cfg: cfg, logger: logger, db: db, tags: tags, posts: posts}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
