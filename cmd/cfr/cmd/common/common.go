// Package common holds the global flags and the config, logger and engine
// setup shared by every cfr subcommand.
package common

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"collab-filter/internal/app"
	"collab-filter/internal/app/logging"
	"collab-filter/internal/app/recommend"
	"collab-filter/internal/app/similarity"
	"collab-filter/internal/config"
)

// Options are the persistent flags of the root command.
type Options struct {
	ConfigPath string
	Feed       string
	Rows       int
	Cols       int
	Verbose    bool
	Strict     bool
	Progress   bool
}

var Flags Options

func AddPersistentFlags(root *cobra.Command) {
	fs := root.PersistentFlags()
	fs.StringVarP(&Flags.ConfigPath, "config", "c", "", "YAML config file")
	fs.StringVarP(&Flags.Feed, "feed", "f", "", "rating feed: a file path or s3://bucket/key")
	fs.IntVar(&Flags.Rows, "rows", 0, "grid rows (users); overrides config")
	fs.IntVar(&Flags.Cols, "cols", 0, "grid columns (items); overrides config")
	fs.BoolVarP(&Flags.Verbose, "verbose", "V", false, "verbose output")
	fs.BoolVar(&Flags.Strict, "strict", true, "fail on malformed or out-of-range feed records")
	fs.BoolVar(&Flags.Progress, "progress", false, "force a progress bar for long computations")
}

// LoadConfig reads the config file and environment, then applies any
// persistent flags the user set explicitly.
func LoadConfig(cmd *cobra.Command) (*config.EngineConfig, error) {
	cfg, err := config.Load(Flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("feed") {
		cfg.Feed.Path = Flags.Feed
		cfg.Feed.SQL = config.SQLFeedConfig{}
	}
	if flags.Changed("rows") {
		cfg.Grid.Rows = Flags.Rows
	}
	if flags.Changed("cols") {
		cfg.Grid.Cols = Flags.Cols
	}
	if flags.Changed("strict") {
		cfg.Feed.Lenient = !Flags.Strict
	}
	if flags.Changed("progress") {
		cfg.Progress = Flags.Progress
	}
	if Flags.Verbose {
		cfg.Development = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Setup loads the configuration and builds the logger.
func Setup(cmd *cobra.Command) (*config.EngineConfig, *zap.Logger, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewLogger(cfg.Development)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// LoadEngine loads the feed and returns an engine over it.
func LoadEngine(cmd *cobra.Command) (*recommend.Engine, *zap.Logger, error) {
	cfg, logger, err := Setup(cmd)
	if err != nil {
		return nil, nil, err
	}
	engine, err := app.InitializeEngine(cmd.Context(), cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	return engine, logger, nil
}

// ParseID parses a non-negative row or column id argument.
func ParseID(arg, name string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, arg)
	}
	return id, nil
}

// RankFlags are the --count/--metric/--items flags shared by ranking commands.
type RankFlags struct {
	K      int
	Metric string
	Items  bool
}

func (r *RankFlags) Register(cmd *cobra.Command, withItems bool) {
	cmd.Flags().IntVarP(&r.K, "count", "k", 0, "number of results (default from config)")
	cmd.Flags().StringVarP(&r.Metric, "metric", "m", "", "similarity metric: pearson or distance (default from config)")
	if withItems {
		cmd.Flags().BoolVar(&r.Items, "items", false, "query the transposed (item x user) grid")
	}
}

// Query converts the flags into an engine query.
func (r *RankFlags) Query() (recommend.Query, error) {
	if r.K < 0 {
		return recommend.Query{}, fmt.Errorf("-k must not be negative, got %d", r.K)
	}
	q := recommend.Query{K: r.K}
	if r.Metric != "" {
		m, err := similarity.ParseMetric(r.Metric)
		if err != nil {
			return q, err
		}
		q.Metric = &m
	}
	return q, nil
}
