package config

import (
	"fmt"
	"time"

	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/ilyakaznacheev/cleanenv"
)

// Supported item store backends.
const (
	BackendJSON     = "json"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config represents an app config.
type Config struct {
	Server   Server   `yaml:"server"`
	Store    Store    `yaml:"store"`
	SQLite   SQLite   `yaml:"sqlite"`
	Postgres Postgres `yaml:"postgres"`
	Images   Images   `yaml:"images"`
	Logger   Logger   `yaml:"logger"`
}

// Server represents an HTTP server configuration.
type Server struct {
	Address      string        `yaml:"address" env:"SERVER_ADDRESS" env-default:":9000"`
	FrontURL     string        `yaml:"front_url" env:"FRONT_URL" env-default:"http://localhost:3000"`
	MaxBodySize  int           `yaml:"max_body_size" env:"SERVER_MAX_BODY_SIZE" env-default:"33554432"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"`
}

// Store represents the item store selection.
type Store struct {
	// Backend is one of json, sqlite or postgres.
	Backend   string `yaml:"backend" env:"STORE_BACKEND" env-default:"sqlite"`
	ItemsFile string `yaml:"items_file" env:"STORE_ITEMS_FILE" env-default:"items.json"`
}

// SQLite represents a SQLite database configuration.
type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"db/mercari.sqlite3"`
}

// Postgres represents a PostgreSQL database configuration.
type Postgres struct {
	User         string `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password     string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Database     string `yaml:"database" env:"POSTGRES_DATABASE" env-default:"listings"`
	Host         string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port         string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	SSLMode      string `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE" env-default:"disable"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"POSTGRES_MAX_OPEN_CONNS" env-default:"10"`
}

// Images represents an image store configuration.
type Images struct {
	Dir     string `yaml:"dir" env:"IMAGES_DIR" env-default:"images"`
	Naming  string `yaml:"naming" env:"IMAGES_NAMING" env-default:"hash"`
	Default string `yaml:"default" env:"IMAGES_DEFAULT" env-default:"default.jpg"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `yaml:"log_level" env:"LOGGER_LOG_LEVEL" env-default:"info"`
	LogFilename     string `yaml:"log_filename" env:"LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `yaml:"pretty_log_output" env:"LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

// Load reads the config file at path, when given, and then environment variables.
func Load(path string) (*Config, error) {
	var (
		cfg Config
		err error
	)

	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cleanenv cannot.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendJSON, BackendSQLite, BackendPostgres:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if !models.ImageNaming(c.Images.Naming).IsValid() {
		return fmt.Errorf("unknown image naming %q", c.Images.Naming)
	}

	if c.Images.Default == "" {
		return fmt.Errorf("default image name is required")
	}

	return nil
}
