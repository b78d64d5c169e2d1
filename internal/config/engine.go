package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"collab-filter/internal/app/feed"
	"collab-filter/internal/app/similarity"
)

// Default grid bounds, sized for the MovieLens 100k feed.
const (
	DefaultRows = 1000
	DefaultCols = 2000
)

// Feed source kinds returned by FeedConfig.Kind.
const (
	FeedNone   = "none"
	FeedFile   = "file"
	FeedObject = "object"
	FeedSQL    = "sql"
)

// EngineConfig is the full configuration of the engine and its drivers.
type EngineConfig struct {
	Grid        GridConfig     `yaml:"grid"`
	Feed        FeedConfig     `yaml:"feed"`
	Defaults    DefaultsConfig `yaml:"defaults"`
	Server      ServerConfig   `yaml:"server"`
	Progress    bool           `yaml:"progress"`
	Development bool           `yaml:"development"`
}

// GridConfig fixes the shape of the rating grid.
type GridConfig struct {
	Rows int `yaml:"rows" validate:"gt=0"`
	Cols int `yaml:"cols" validate:"gt=0"`
}

// FeedConfig says where ratings come from. Path may be a local file or an
// s3:// URL; SQL is used instead when a driver is set.
type FeedConfig struct {
	Path    string           `yaml:"path,omitempty"`
	Lenient bool             `yaml:"lenient,omitempty"`
	SQL     SQLFeedConfig    `yaml:"sql,omitempty"`
	Object  ObjectFeedConfig `yaml:"object,omitempty"`
}

type SQLFeedConfig struct {
	Driver string `yaml:"driver,omitempty" validate:"omitempty,oneof=sqlite3 postgres"`
	DSN    string `yaml:"dsn,omitempty" validate:"required_with=Driver"`
	Query  string `yaml:"query,omitempty"`
}

// ObjectFeedConfig holds the S3-compatible endpoint used for s3:// paths.
type ObjectFeedConfig struct {
	Endpoint  string `yaml:"endpoint,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	UseSSL    bool   `yaml:"use_ssl,omitempty"`
}

// DefaultsConfig holds result sizes and the metric used when a request does
// not name them.
type DefaultsConfig struct {
	MatchK          int    `yaml:"match_k" validate:"gt=0,lte=10000"`
	RecommendationK int    `yaml:"recommendation_k" validate:"gt=0,lte=10000"`
	ItemK           int    `yaml:"item_k" validate:"gt=0,lte=10000"`
	Metric          string `yaml:"metric" validate:"required"`
}

type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port" validate:"required,numeric"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	Environment  string        `yaml:"environment" validate:"oneof=development production test"`
}

// Default returns a configuration that works without a config file.
func Default() *EngineConfig {
	return &EngineConfig{
		Grid: GridConfig{Rows: DefaultRows, Cols: DefaultCols},
		Defaults: DefaultsConfig{
			MatchK:          5,
			RecommendationK: 10,
			ItemK:           10,
			Metric:          similarity.DefaultMetric.String(),
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
			Environment:  "development",
		},
	}
}

// Load reads configPath (if not empty) over the defaults, applies CFR_*
// environment overrides and validates the result.
func Load(configPath string) (*EngineConfig, error) {
	config := Default()

	if configPath != "" {
		configPath = os.ExpandEnv(configPath)
		data, err := os.ReadFile(configPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Save writes the configuration as YAML, creating parent directories.
func Save(config *EngineConfig, configPath string) error {
	configPath = os.ExpandEnv(configPath)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from CFR_* environment variables.
func (c *EngineConfig) ApplyEnv() error {
	for key, target := range map[string]*int{
		"CFR_ROWS":        &c.Grid.Rows,
		"CFR_COLS":        &c.Grid.Cols,
		"CFR_MATCH_K":     &c.Defaults.MatchK,
		"CFR_RECOMMEND_K": &c.Defaults.RecommendationK,
		"CFR_ITEM_K":      &c.Defaults.ItemK,
	} {
		if err := envInt(key, target); err != nil {
			return err
		}
	}
	for key, target := range map[string]*bool{
		"CFR_FEED_LENIENT": &c.Feed.Lenient,
		"CFR_S3_USE_SSL":   &c.Feed.Object.UseSSL,
		"CFR_PROGRESS":     &c.Progress,
		"CFR_DEVELOPMENT":  &c.Development,
	} {
		if err := envBool(key, target); err != nil {
			return err
		}
	}

	envString("CFR_FEED", &c.Feed.Path)
	envString("CFR_SQL_DRIVER", &c.Feed.SQL.Driver)
	envString("CFR_SQL_DSN", &c.Feed.SQL.DSN)
	envString("CFR_SQL_QUERY", &c.Feed.SQL.Query)
	envString("CFR_S3_ENDPOINT", &c.Feed.Object.Endpoint)
	envString("CFR_S3_ACCESS_KEY", &c.Feed.Object.AccessKey)
	envString("CFR_S3_SECRET_KEY", &c.Feed.Object.SecretKey)
	envString("CFR_METRIC", &c.Defaults.Metric)
	envString("CFR_HOST", &c.Server.Host)
	envString("CFR_PORT", &c.Server.Port)
	envString("CFR_ENV", &c.Server.Environment)

	return nil
}

var validate = validator.New()

// Validate checks struct tags first and then the rules tags cannot express.
func (c *EngineConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return describeValidationErrors(err)
	}

	if _, err := similarity.ParseMetric(c.Defaults.Metric); err != nil {
		return err
	}
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	for name, timeout := range map[string]time.Duration{
		"read":  c.Server.ReadTimeout,
		"write": c.Server.WriteTimeout,
		"idle":  c.Server.IdleTimeout,
	} {
		if err := ValidateTimeout(timeout, name); err != nil {
			return err
		}
	}
	if c.Feed.Path != "" && c.Feed.SQL.Driver != "" {
		return fmt.Errorf("feed: path and sql driver are mutually exclusive")
	}
	if c.Feed.Kind() == FeedObject && c.Feed.Object.Endpoint == "" {
		return fmt.Errorf("feed: s3 path %s needs object.endpoint", c.Feed.Path)
	}

	return nil
}

func describeValidationErrors(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldError := range validationErrs {
		field := fieldError.Namespace()
		switch fieldError.Tag() {
		case "required", "required_with":
			messages = append(messages, field+" is required")
		case "gt":
			messages = append(messages, field+" must be positive")
		case "lte":
			messages = append(messages, field+" is too large")
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", field, fieldError.Param()))
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

// Kind classifies the configured feed source.
func (f FeedConfig) Kind() string {
	switch {
	case f.SQL.Driver != "":
		return FeedSQL
	case feed.IsObjectURL(f.Path):
		return FeedObject
	case f.Path != "":
		return FeedFile
	default:
		return FeedNone
	}
}

// Metric parses the default metric name.
func (c *EngineConfig) Metric() similarity.Metric {
	m, err := similarity.ParseMetric(c.Defaults.Metric)
	if err != nil {
		return similarity.DefaultMetric
	}
	return m
}

// Address returns host:port for the HTTP server.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}
