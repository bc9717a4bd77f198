package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	PubChem PubChemConfig `mapstructure:"pubchem"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PubChemConfig holds API connection and retry settings
type PubChemConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	UserAgent  string        `mapstructure:"user_agent"`
}

// FilterConfig contains named filter expressions usable via
// --filter @name
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
