package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		PubChem: PubChemConfig{
			BaseURL:    "https://pubchem.ncbi.nlm.nih.gov/rest/pug",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			RetryDelay: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.PubChem.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.PubChem.MaxRetries = -1 },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.PubChem.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative retry delay",
			mutate:  func(c *Config) { c.PubChem.RetryDelay = -time.Second },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "logfmt" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PubChem.MaxRetries != 3 {
		t.Errorf("default max_retries = %d, want 3", cfg.PubChem.MaxRetries)
	}
	if cfg.PubChem.RetryDelay != 500*time.Millisecond {
		t.Errorf("default retry_delay = %v, want 500ms", cfg.PubChem.RetryDelay)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default logging level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
pubchem:
  max_retries: 5
  retry_delay: 1s
filter:
  light: "num(MolecularWeight) < 100"
logging:
  level: debug
  format: json
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PubChem.MaxRetries != 5 {
		t.Errorf("max_retries = %d, want 5", cfg.PubChem.MaxRetries)
	}
	if cfg.PubChem.RetryDelay != time.Second {
		t.Errorf("retry_delay = %v, want 1s", cfg.PubChem.RetryDelay)
	}
	if cfg.Filter["light"] == "" {
		t.Error("named filter not loaded")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for explicitly named missing file")
	}
}
