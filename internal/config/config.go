package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	DFCoef   DFCoefConfig
}

// DatabaseConfig holds sqlite settings for the file-history store.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme      string
	SpinorMode bool
}

// DFCoefConfig holds settings for the external sum_dirac_dfcoef run.
type DFCoefConfig struct {
	Command string
	Decimal int
}

// Load reads configuration from file and env. Env var overrides use prefix SPINORVIEW_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "spinorview", "spinorview.db"))
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.spinor_mode", true)
	v.SetDefault("dfcoef.command", "sum_dirac_dfcoef")
	v.SetDefault("dfcoef.decimal", 3)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SPINORVIEW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "spinorview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPINORVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config
// directory if needed. Used by the TUI to persist the chosen theme and
// display mode between sessions.
func Save(cfg Config) error {
	var path string
	if p := os.Getenv("SPINORVIEW_CONFIG"); p != "" {
		path = p
	} else {
		base := filepath.Join(os.Getenv("HOME"), ".config", "spinorview")
		if err := os.MkdirAll(base, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		path = filepath.Join(base, "config.toml")
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.spinor_mode", cfg.UI.SpinorMode)
	v.Set("dfcoef.command", cfg.DFCoef.Command)
	v.Set("dfcoef.decimal", cfg.DFCoef.Decimal)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
