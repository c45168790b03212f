package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/config"
	"github.com/katalvlaran/tourplan/tsp"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "auto", cfg.Algorithm)
	require.Equal(t, tsp.DefaultExactThreshold, cfg.ExactThreshold)
	require.Equal(t, tsp.DefaultGenerations, cfg.Generations)
	require.Equal(t, tsp.DefaultMutationRate, cfg.MutationRate)
	require.Equal(t, "info", cfg.LogLevel)

	opts, err := cfg.SolverOptions(nil)
	require.NoError(t, err)
	want := tsp.DefaultOptions()
	require.Equal(t, want, opts)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := "TSP_ALGORITHM=Genetic\nTSP_GENERATIONS=500\nTSP_MUTATION_RATE=0.35\nTSP_SEED=7\nTSP_PARALLELISM=3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tourplan.env"), []byte(body), 0o600))
	t.Setenv("TSP_GENERATIONS", "1200")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "genetic", cfg.Algorithm)
	require.Equal(t, 1200, cfg.Generations)
	require.Equal(t, 0.35, cfg.MutationRate)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, "debug", cfg.LogLevel)

	logger, err := config.NewLogger(cfg.LogLevel, &bytes.Buffer{})
	require.NoError(t, err)
	opts, err := cfg.SolverOptions(&logger)
	require.NoError(t, err)
	require.Equal(t, tsp.Genetic, opts.Algo)
	require.Equal(t, 1200, opts.Generations)
	require.Equal(t, 3, opts.Parallelism)
	require.Equal(t, int64(7), opts.Seed)
	require.Same(t, &logger, opts.Logger)
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("TSP_EXACT_THRESHOLD", "ten")
	_, err := config.LoadConfig(t.TempDir())
	require.Error(t, err)
}

func TestSolverOptions_UnknownAlgorithm(t *testing.T) {
	cfg := config.Config{Algorithm: "annealing", ExactThreshold: 10}
	_, err := cfg.SolverOptions(nil)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.NewLogger("warn", &buf)
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	logger, err = config.NewLogger("", &buf)
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	_, err = config.NewLogger("loud", &buf)
	require.Error(t, err)
}
