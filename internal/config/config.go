package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/oid/pkg/database"
	"github.com/hashicorp-forge/oid/pkg/registry"
)

const (
	DefaultLogLevel       = "info"
	DefaultDatabaseDriver = database.DriverSQLite
	DefaultDatabasePath   = "oid.db"
	DefaultSSLMode        = "disable"
)

// Config is the configuration for the oid CLI.
type Config struct {
	// LogLevel is the level of the root logger ("trace", "debug", "info",
	// "warn" or "error").
	LogLevel string `hcl:"log_level,optional"`

	// Database configures the ledger of issued identifiers.
	Database *Database `hcl:"database,block"`

	// Kinds are the entity kinds identifiers can be issued for.
	Kinds []*Kind `hcl:"kind,block"`
}

// Database configures the ledger database.
type Database struct {
	Driver   string `hcl:"driver,optional"`
	DSN      string `hcl:"dsn,optional"`
	Path     string `hcl:"path,optional"`
	Host     string `hcl:"host,optional"`
	Port     int    `hcl:"port,optional"`
	User     string `hcl:"user,optional"`
	Password string `hcl:"password,optional"`
	DBName   string `hcl:"dbname,optional"`
	SSLMode  string `hcl:"sslmode,optional"`

	MaxIdleConns    int    `hcl:"max_idle_conns,optional"`
	MaxOpenConns    int    `hcl:"max_open_conns,optional"`
	ConnMaxLifetime string `hcl:"conn_max_lifetime,optional"`
	ConnMaxIdleTime string `hcl:"conn_max_idle_time,optional"`

	ConnectAttempts      int    `hcl:"connect_attempts,optional"`
	ConnectRetryInterval string `hcl:"connect_retry_interval,optional"`
	SlowQueryThreshold   string `hcl:"slow_query_threshold,optional"`
}

// Kind is a "kind" block.
type Kind struct {
	Name        string   `hcl:"name,label"`
	Prefix      string   `hcl:"prefix,optional"`
	Aliases     []string `hcl:"aliases,optional"`
	Description string   `hcl:"description,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

// NewConfig reads and decodes the HCL configuration file at filename from
// fs, applies defaults and validates the result.
func NewConfig(fs afero.Fs, filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	c := &Config{}
	if err := hclsimple.Decode(filename, src, nil, c); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	c.setDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DefaultDatabaseDriver
	}
	if c.Database.Driver == database.DriverSQLite &&
		c.Database.Path == "" && c.Database.DSN == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultSSLMode
	}
}

func (c *Config) validate() error {
	var result *multierror.Error

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result,
			fmt.Errorf("invalid log_level %q", c.LogLevel))
	}

	switch c.Database.Driver {
	case database.DriverPostgres, database.DriverSQLite:
	default:
		result = multierror.Append(result,
			fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}

	if _, err := c.DatabaseConfig(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.Registry(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// DatabaseConfig converts the database block to a database.Config.
func (c *Config) DatabaseConfig() (database.Config, error) {
	d := c.Database
	if d == nil {
		d = &Database{}
	}

	cfg := database.Config{
		Driver:          d.Driver,
		DSN:             d.DSN,
		Path:            d.Path,
		Host:            d.Host,
		Port:            d.Port,
		User:            d.User,
		Password:        d.Password,
		DBName:          d.DBName,
		SSLMode:         d.SSLMode,
		MaxIdleConns:    d.MaxIdleConns,
		MaxOpenConns:    d.MaxOpenConns,
		ConnectAttempts: d.ConnectAttempts,
	}

	var result *multierror.Error
	durations := []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"conn_max_lifetime", d.ConnMaxLifetime, &cfg.ConnMaxLifetime},
		{"conn_max_idle_time", d.ConnMaxIdleTime, &cfg.ConnMaxIdleTime},
		{"connect_retry_interval", d.ConnectRetryInterval, &cfg.ConnectRetryInterval},
		{"slow_query_threshold", d.SlowQueryThreshold, &cfg.SlowQueryThreshold},
	}
	for _, dur := range durations {
		if dur.value == "" {
			continue
		}
		v, err := time.ParseDuration(dur.value)
		if err != nil {
			result = multierror.Append(result,
				fmt.Errorf("invalid database %s: %w", dur.name, err))
			continue
		}
		*dur.dst = v
	}

	return cfg, result.ErrorOrNil()
}

// Registry builds the kind registry from the kind blocks.
func (c *Config) Registry() (*registry.Registry, error) {
	specs := make([]registry.KindSpec, 0, len(c.Kinds))
	for _, k := range c.Kinds {
		specs = append(specs, registry.KindSpec{
			Name:        k.Name,
			Prefix:      k.Prefix,
			Aliases:     k.Aliases,
			Description: k.Description,
		})
	}
	return registry.New(specs)
}
