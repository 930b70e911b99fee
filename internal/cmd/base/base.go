package base

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/oid/internal/config"
	"github.com/hashicorp-forge/oid/pkg/database"
)

// Command holds what every subcommand shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is where configuration files are read from.
	FS afero.Fs
}

// NewCommand returns a Command reading files from the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		FS:  afero.NewOsFs(),
	}
}

// LoadConfig reads the configuration file at path, or returns the default
// configuration when path is empty. The logger level follows the
// configuration.
func (c *Command) LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.NewConfig(c.FS, path)
	if err != nil {
		return nil, err
	}
	c.Log.SetLevel(cfg.Level())
	c.Log.Debug("loaded configuration", "path", path, "kinds", len(cfg.Kinds))

	return cfg, nil
}

// OpenLedger connects to the configured database and migrates the ledger
// tables.
func (c *Command) OpenLedger(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	dbCfg, err := cfg.DatabaseConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(ctx, dbCfg, c.Log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	return db.WithContext(ctx), nil
}
