package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. TODOKEEPER_BACKUP_PATH.
const EnvPrefix = "TODOKEEPER"

// BackupConfig locates the flat-text backup file.
type BackupConfig struct {
	// Path is the backup file location.
	Path string `mapstructure:"path" yaml:"path"`
}

// StoreConfig controls the SQLite mirror.
type StoreConfig struct {
	// Enabled mirrors every saved list into the database.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Path is the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`
}

// DisplayConfig holds rendering preferences.
type DisplayConfig struct {
	// DefaultColor is used for tags given without a color on the command line.
	DefaultColor string `mapstructure:"default_color" yaml:"default_color"`

	// Plain disables colored output.
	Plain bool `mapstructure:"plain" yaml:"plain"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Backup  BackupConfig  `mapstructure:"backup" yaml:"backup"`
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// TagColor parses Display.DefaultColor, falling back to DefaultColor.
func (c *AppConfig) TagColor() Color {
	color, err := ParseColor(c.Display.DefaultColor)
	if err != nil {
		return DefaultColor
	}
	return color
}

// configDir returns ~/.config/todokeeper, or "." if the home directory
// cannot be determined.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "todokeeper")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/todokeeper/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dir := configDir()
	return &AppConfig{
		Backup: BackupConfig{
			Path: filepath.Join(dir, "todos.bak"),
		},
		Store: StoreConfig{
			Enabled: false,
			Path:    filepath.Join(dir, "todos.db"),
		},
		Display: DisplayConfig{
			DefaultColor: string(DefaultColor),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Environment variables prefixed with EnvPrefix override file values.
// If the file does not exist, the defaults (plus environment) are returned.
func LoadConfig(path string) (*AppConfig, error) {
	defaults := defaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults so missing keys resolve to sensible values and so
	// AutomaticEnv can see every key.
	v.SetDefault("backup.path", defaults.Backup.Path)
	v.SetDefault("store.enabled", defaults.Store.Enabled)
	v.SetDefault("store.path", defaults.Store.Path)
	v.SetDefault("display.default_color", defaults.Display.DefaultColor)
	v.SetDefault("display.plain", defaults.Display.Plain)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if _, err := ParseColor(cfg.Display.DefaultColor); err != nil {
		return nil, fmt.Errorf("parsing config %s: display.default_color: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("backup", cfg.Backup)
	v.Set("store", cfg.Store)
	v.Set("display", cfg.Display)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
