package spacex

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "yaml"

	defaultAddress  = "127.0.0.1"
	defaultPort     = 8050
	defaultDatabase = "launches.db"
)

// Config is the dashboard configuration stored as config.yaml in the config directory.
type Config struct {
	viper     *viper.Viper
	ConfigDir string `mapstructure:"-"`         // Directory holding config.yaml and the default database
	Address   string `mapstructure:"address"`   // Listen address of the HTTP server
	Port      int    `mapstructure:"port"`      // Listen port of the HTTP server
	Database  string `mapstructure:"database"`  // SQLite file, relative paths are resolved against ConfigDir
	Extension string `mapstructure:"extension"` // Optional Lua extension script, relative paths are resolved against ConfigDir
	Title     string `mapstructure:"title"`     // Page heading, empty for the default
}

// LoadConfig reads config.yaml from dir, creating the directory and a default file on first run.
func LoadConfig(dir string) (*Config, error) {
	if _, err := os.ReadDir(dir); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("checking if directory exists %s: %w", dir, err)
		}
		slog.Info("creating config dir", "dir", dir)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating config dir %s: %w", dir, err)
		}
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetDefault("address", defaultAddress)
	v.SetDefault("port", defaultPort)
	v.SetDefault("database", defaultDatabase)
	v.SetDefault("extension", "")
	v.SetDefault("title", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file : %w", err)
		}
		if err := v.SafeWriteConfig(); err != nil {
			return nil, fmt.Errorf("writing config file : %w", err)
		}
	}

	cfg := &Config{viper: v, ConfigDir: dir}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config to struct : %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return cfg, nil
}

// Set updates a single key and rewrites config.yaml.
func (cfg *Config) Set(key string, value any) error {
	if cfg.viper == nil {
		return errors.New("config was not loaded from a config dir")
	}
	cfg.viper.Set(key, value)
	if err := cfg.viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	if err := cfg.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshalling config to struct : %w", err)
	}
	return nil
}

// DatabasePath returns the absolute or config-relative path of the SQLite database.
func (cfg *Config) DatabasePath() string {
	return cfg.resolve(cfg.Database)
}

// ExtensionPath returns the path of the Lua extension, or an empty string when none is configured.
func (cfg *Config) ExtensionPath() string {
	if cfg.Extension == "" {
		return ""
	}
	return cfg.resolve(cfg.Extension)
}

// ListenAddress returns address:port for the HTTP server.
func (cfg *Config) ListenAddress() string {
	return net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port))
}

func (cfg *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.ConfigDir, path)
}
