package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/optic-derm-explorer/internal/domain"
)

// Manager loads and validates application configuration using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/optic-derm-explorer/")

	viper.SetEnvPrefix("OPTIC_DERM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars cover everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.request_timeout", "15s")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")

	// Placeholder imaging defaults; 320x240 matches the dashboard panels
	viper.SetDefault("imaging.default_width", 320)
	viper.SetDefault("imaging.default_height", 240)
	viper.SetDefault("imaging.max_width", 1024)
	viper.SetDefault("imaging.max_height", 1024)

	// Session store defaults
	viper.SetDefault("session.capacity", 64)
	viper.SetDefault("session.ttl", "1h")

	// Upload defaults
	viper.SetDefault("upload.max_bytes", 10*1024*1024)
	viper.SetDefault("upload.rate_per_second", 5)
	viper.SetDefault("upload.burst", 10)
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Server.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive: %v", config.Server.RequestTimeout)
	}

	if config.Imaging.DefaultWidth <= 0 || config.Imaging.DefaultHeight <= 0 {
		return fmt.Errorf("invalid default image dimensions: %dx%d",
			config.Imaging.DefaultWidth, config.Imaging.DefaultHeight)
	}
	if config.Imaging.MaxWidth < config.Imaging.DefaultWidth ||
		config.Imaging.MaxHeight < config.Imaging.DefaultHeight {
		return fmt.Errorf("max image dimensions %dx%d below defaults %dx%d",
			config.Imaging.MaxWidth, config.Imaging.MaxHeight,
			config.Imaging.DefaultWidth, config.Imaging.DefaultHeight)
	}

	if config.Session.Capacity <= 0 {
		return fmt.Errorf("session capacity must be positive: %d", config.Session.Capacity)
	}

	if config.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload max bytes must be positive: %d", config.Upload.MaxBytes)
	}
	if config.Upload.RatePerSecond <= 0 || config.Upload.Burst <= 0 {
		return fmt.Errorf("invalid upload rate limit: %v/s burst %d",
			config.Upload.RatePerSecond, config.Upload.Burst)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}
