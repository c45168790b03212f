// Package config loads solver settings from a tourplan.env file and the
// environment, and builds the zerolog logger programs hand to the solver.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tourplan/tsp"
)

// Config stores the solver configuration.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Algorithm      string  `mapstructure:"TSP_ALGORITHM"`
	ExactThreshold int     `mapstructure:"TSP_EXACT_THRESHOLD"`
	Generations    int     `mapstructure:"TSP_GENERATIONS"`
	MutationRate   float64 `mapstructure:"TSP_MUTATION_RATE"`
	Seed           int64   `mapstructure:"TSP_SEED"`
	Parallelism    int     `mapstructure:"TSP_PARALLELISM"`
	LogLevel       string  `mapstructure:"LOG_LEVEL"`
}

// defaults mirror tsp.DefaultOptions. AutomaticEnv only sees keys viper
// already knows, so every key is registered here.
var defaults = map[string]any{
	"TSP_ALGORITHM":       tsp.Auto.String(),
	"TSP_EXACT_THRESHOLD": tsp.DefaultExactThreshold,
	"TSP_GENERATIONS":     tsp.DefaultGenerations,
	"TSP_MUTATION_RATE":   tsp.DefaultMutationRate,
	"TSP_SEED":            0,
	"TSP_PARALLELISM":     0,
	"LOG_LEVEL":           zerolog.InfoLevel.String(),
}

// LoadConfig reads configuration from path/tourplan.env or environment
// variables; the environment wins. A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("tourplan")
	v.SetConfigType("env")

	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	config.Algorithm = strings.ToLower(strings.TrimSpace(config.Algorithm))
	return
}

// SolverOptions converts the configuration into tsp.Options. A nil logger
// leaves solver logging disabled.
func (c Config) SolverOptions(logger *zerolog.Logger) (tsp.Options, error) {
	algo, err := tsp.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return tsp.Options{}, fmt.Errorf("config: %w", err)
	}
	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.ExactThreshold = c.ExactThreshold
	opts.Generations = c.Generations
	opts.MutationRate = c.MutationRate
	opts.Seed = c.Seed
	if c.Parallelism > 0 {
		opts.Parallelism = c.Parallelism
	}
	opts.Logger = logger
	return opts, nil
}

// NewLogger returns a timestamped logger writing to w at the given level
// ("debug", "info", ...). An empty level means info.
func NewLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level = strings.TrimSpace(level); level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return zerolog.Nop(), fmt.Errorf("config: log level %q: %w", level, err)
		}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
