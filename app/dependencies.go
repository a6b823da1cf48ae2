package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/opslab/lbaas-control-plane/auth"
	"github.com/opslab/lbaas-control-plane/config"
	"github.com/opslab/lbaas-control-plane/middleware"
	"github.com/opslab/lbaas-control-plane/store"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	Logger *zap.Logger

	// Credential store
	Store store.CredentialStore

	// Auth
	Auth           *auth.Service
	AuthMiddleware *middleware.AuthMiddleware
}

// NewDependencies creates and wires up all application dependencies.
// Auth constructor failures are configuration errors and abort startup.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initStore(); err != nil {
		return nil, fmt.Errorf("failed to initialize credential store: %w", err)
	}

	if err := deps.initAuth(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initStore seeds the static credential table
func (d *Dependencies) initStore() error {
	credentials, err := store.SeedCredentials(auth.HashPassword)
	if err != nil {
		return err
	}

	memStore := store.NewMemoryStore(credentials)
	d.Store = memStore

	d.Logger.Info("credential store seeded",
		zap.Int("principals", memStore.Count()))
	return nil
}

// initAuth constructs the token issuer, validator and session resolver
func (d *Dependencies) initAuth(cfg *config.Config) error {
	issuer, err := auth.NewIssuer(cfg.Auth)
	if err != nil {
		return err
	}

	validator, err := auth.NewValidator(cfg.Auth)
	if err != nil {
		return err
	}

	d.Auth = auth.NewService(d.Store, issuer, validator, d.Logger)
	d.AuthMiddleware = middleware.NewAuthMiddleware(d.Auth, d.Logger)

	if cfg.Auth.Secret == config.DefaultDevSecret {
		d.Logger.Warn("running with the placeholder signing secret; set JWT_SECRET before deploying")
	}

	d.Logger.Info("auth initialized",
		zap.String("algorithm", cfg.Auth.Algorithm),
		zap.Duration("access_token_ttl", cfg.Auth.AccessTokenTTL))
	return nil
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	return nil
}
