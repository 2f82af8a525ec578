package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/places-api/internal/config"
	"github.com/phrazzld/places-api/internal/platform/blob"
	"github.com/phrazzld/places-api/internal/platform/geocode"
	"github.com/phrazzld/places-api/internal/platform/postgres"
	"github.com/phrazzld/places-api/internal/service"
	"github.com/phrazzld/places-api/internal/service/auth"
	"github.com/phrazzld/places-api/internal/store"
)

// application holds the wired dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger

	db *sql.DB

	userStore  store.UserStore
	placeStore store.PlaceStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	placeService service.PlaceService
	storage      blob.Storage
}

// newApplication opens the database, constructs clients and services, and
// returns the assembled application. The caller owns cleanup.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	storage, err := blob.NewClient(ctx, cfg.Storage)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create blob storage client: %w", err)
	}

	geocoder := geocode.NewClient(cfg.Geocode)

	userStore := postgres.NewPostgresUserStore(db, log)
	placeStore := postgres.NewPostgresPlaceStore(db, log)

	placeService, err := service.NewPlaceService(db, placeStore, userStore, geocoder, storage, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create place service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           log,
		db:               db,
		userStore:        userStore,
		placeStore:       placeStore,
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
		placeService:     placeService,
		storage:          storage,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
