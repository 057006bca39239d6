package migrate

import (
	"context"
	"fmt"
	"os"

	"github.com/voicecartlabs/voicecart-backend/pkg/config"
	"github.com/voicecartlabs/voicecart-backend/pkg/db"
	"github.com/voicecartlabs/voicecart-backend/pkg/db/models"
	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
)

// MaybeRunDev prepares the schema automatically when the app is running in
// dev mode and the feature flag is enabled. The goose SQL migrations target
// Postgres; the sqlite dev database is schema-managed through GORM instead.
// Outside dev mode, migrations are run explicitly through cmd/migrate.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	if !cfg.DB.IsPostgres() {
		logg.Info(logg.WithField(ctx, "driver", cfg.DB.Driver), "auto-migrating schema via GORM")
		if err := client.DB().WithContext(ctx).AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
			return fmt.Errorf("gorm auto-migrate: %w", err)
		}
		return nil
	}

	// The migration dir is relative to the repo root; skip quietly when the
	// binary runs from elsewhere (e.g. a container without the sql files).
	if _, err := os.Stat(DefaultDir); err != nil {
		logg.Warn(logg.WithField(ctx, "dir", DefaultDir), "migrations dir not found, skipping auto-run")
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	meta := map[string]any{"env": cfg.App.Env, "dir": DefaultDir}
	ctx = logg.WithFields(ctx, meta)
	logg.Info(ctx, "running Goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, cfg.DB.Driver, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "Goose migrations completed")
	return nil
}
