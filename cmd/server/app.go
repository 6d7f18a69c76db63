package main

import (
	"fmt"
	"log/slog"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/catalog"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/config"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/patterns/factory"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/platform/logger"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/service"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/service/auth"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/solid/dip"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/store"
)

// application holds the wired dependencies for the server. Everything
// downstream of config.Load hangs off this struct so the router and
// tests can share one wiring path.
type application struct {
	config *config.Config
	logger *slog.Logger

	shapeStore          *store.SQLiteShapeStore
	galleryService      *service.GalleryService
	notificationService *dip.NotificationService
	jwtService          auth.JWTService
	passwordVerifier    auth.PasswordVerifier
	catalog             *catalog.Catalog
}

// initializeApp loads configuration and wires every application
// component: logging, the shape store (running migrations), the
// factory-backed gallery service, the notification senders, the JWT
// service, and the document catalog.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"gallery_path", cfg.Gallery.Path,
		"catalog_path", cfg.Catalog.Path)

	shapeStore, err := store.Open(cfg.Gallery.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shape store: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = shapeStore.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	docCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		_ = shapeStore.Close()
		return nil, fmt.Errorf("failed to load pattern catalog: %w", err)
	}
	appLogger.Info("Pattern catalog loaded", "documents", docCatalog.Len())

	// nil selects the process-wide random source, which is safe under
	// concurrent shape creation; seeded sources are for tests.
	shapeFactory := factory.NewShapeFactory(nil)

	return &application{
		config:         cfg,
		logger:         appLogger,
		shapeStore:     shapeStore,
		galleryService: service.NewGalleryService(shapeFactory, shapeStore, appLogger),
		notificationService: dip.NewNotificationService(
			appLogger,
			dip.NewEmailSender(appLogger),
			dip.NewSMSSender(appLogger),
		),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
		catalog:          docCatalog,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.shapeStore != nil {
		if err := app.shapeStore.Close(); err != nil {
			app.logger.Error("Failed to close shape store", "error", err)
		}
	}
}
