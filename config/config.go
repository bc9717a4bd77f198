package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Load loads the configuration from file. A missing file is not an
// error; the defaults describe a fully working setup for the public
// API.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".molbridge"))
		}

		// Check /etc
		v.AddConfigPath("/etc/molbridge/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// PubChem defaults
	v.SetDefault("pubchem.base_url", "https://pubchem.ncbi.nlm.nih.gov/rest/pug")
	v.SetDefault("pubchem.timeout", 30*time.Second)
	v.SetDefault("pubchem.max_retries", 3)
	v.SetDefault("pubchem.retry_delay", 500*time.Millisecond)
	v.SetDefault("pubchem.user_agent", "molbridge")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.PubChem.BaseURL == "" {
		return fmt.Errorf("pubchem.base_url is required")
	}

	if cfg.PubChem.MaxRetries < 0 {
		return fmt.Errorf("pubchem.max_retries must not be negative")
	}

	if cfg.PubChem.Timeout <= 0 {
		return fmt.Errorf("pubchem.timeout must be positive")
	}

	if cfg.PubChem.RetryDelay < 0 {
		return fmt.Errorf("pubchem.retry_delay must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
