package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ostafen/smushinfo/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	require.Equal(t, "INFO", cfg.LogLevel)
	require.Empty(t, cfg.Labels)
	require.Equal(t, runtime.NumCPU(), cfg.Workers)
	require.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smushinfo.yaml")
	err := os.WriteFile(path, []byte("log_level: DEBUG\nworkers: 2\nlabels: /tmp/a.csv\nserver:\n  addr: :9000\n"), 0o644)
	require.NoError(t, err)

	t.Setenv("SMUSHINFO_LABELS", "/tmp/env.csv")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("workers", 1, "")
	fs.String("unrelated", "", "")
	require.NoError(t, fs.Parse([]string{"--workers=8"}))

	v := config.New()
	require.NoError(t, config.BindFlags(v, fs))

	cfg, err := config.Load(v, path)
	require.NoError(t, err)
	require.Equal(t, "DEBUG", cfg.LogLevel)
	require.Equal(t, "/tmp/env.csv", cfg.Labels)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("SMUSHINFO_WORKERS", "0")
	_, err = config.Load(config.New(), "")
	require.Error(t, err)
}
