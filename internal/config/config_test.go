package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SPINORVIEW_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "default", cfg.UI.Theme)
	require.True(t, cfg.UI.SpinorMode)
	require.Equal(t, "sum_dirac_dfcoef", cfg.DFCoef.Command)
	require.Equal(t, 3, cfg.DFCoef.Decimal)
	require.NotEmpty(t, cfg.Database.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SPINORVIEW_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("SPINORVIEW_UI_THEME", "red-green")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "red-green", cfg.UI.Theme)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("SPINORVIEW_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/sv.db"},
		UI:       UIConfig{Theme: "green-yellow", SpinorMode: false},
		DFCoef:   DFCoefConfig{Command: "sum_dirac_dfcoef", Decimal: 5},
	}
	require.NoError(t, Save(want))

	_, err := os.Stat(path)
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
