// Package config provides configuration loading and validation for the
// toukei CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrNoPaths       = errors.New("at least one scan path is required")
	ErrInvalidFormat = errors.New("output format must be text, json or csv")
	ErrTooManyWorker = errors.New("num_workers is unreasonably large")
)

// maxWorkers caps the configurable worker count; beyond this the pool
// only adds scheduling overhead and open file descriptors.
const maxWorkers = 1024

// Config holds everything one scan run needs. It is produced here (flags,
// file, environment) and consumed read-only by the pipeline and exporters.
type Config struct {
	// Paths are the root paths to scan.
	Paths []string `mapstructure:"paths"`
	// Types enables languages by name, case-insensitive; empty means all.
	Types []string `mapstructure:"types"`
	// ExcludeFiles are exclusion patterns (path fragments, substrings or globs).
	ExcludeFiles []string `mapstructure:"exclude_files"`

	// IgnoreBlanks hides the blank column in rendered output.
	IgnoreBlanks bool `mapstructure:"ignore_blanks"`
	// IgnoreComments hides the comment column in rendered output.
	IgnoreComments bool `mapstructure:"ignore_comments"`

	// NumWorkers bounds concurrency; 0 selects host parallelism.
	NumWorkers uint `mapstructure:"num_workers"`
	// EnableAsync selects the streaming producer/consumer pipeline.
	EnableAsync bool `mapstructure:"enable_async"`

	// RulesFile optionally points at a YAML file with extra language rules.
	RulesFile string `mapstructure:"rules_file"`

	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	// Format is text, json or csv.
	Format string `mapstructure:"format"`
	// Path writes json/csv output to a file instead of stdout.
	Path string `mapstructure:"path"`
	// Chart writes an HTML pie chart to the given path.
	Chart string `mapstructure:"chart"`
	// NoColor disables ANSI colors in text output.
	NoColor bool `mapstructure:"no_color"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional file plus TOUKEI_* environment
// variables and validates the result. Flag values are layered on top by
// the CLI after loading.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(".toukei")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix("TOUKEI")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("paths", []string{"."})
	viperCfg.SetDefault("types", []string{})
	viperCfg.SetDefault("exclude_files", []string{})
	viperCfg.SetDefault("num_workers", 0)
	viperCfg.SetDefault("enable_async", false)
	viperCfg.SetDefault("output.format", "text")
	viperCfg.SetDefault("logging.level", "warn")
}

// Validate checks invariants that flag layering cannot break silently.
func (c *Config) Validate() error {
	if len(c.Paths) == 0 {
		return ErrNoPaths
	}

	switch c.Output.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.Format)
	}

	if c.NumWorkers > maxWorkers {
		return fmt.Errorf("%w: %d", ErrTooManyWorker, c.NumWorkers)
	}

	return nil
}
