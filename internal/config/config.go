package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file kept at the data root.
const FileName = "gastos.yaml"

// Config represents the top-level gastos.yaml configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Export ExportConfig `yaml:"export"`
	Share  ShareConfig  `yaml:"share"`
	Import ImportConfig `yaml:"import"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig locates the backend that receives imported records.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token,omitempty"`
	Timeout time.Duration `yaml:"timeout"`
}

// ExportConfig controls generated workbooks.
type ExportConfig struct {
	OutputDir  string   `yaml:"output_dir"`
	Locale     string   `yaml:"locale"`
	MonthNames []string `yaml:"month_names,omitempty"` // January first
}

// ShareConfig sends workbooks to Cloud Storage instead of OutputDir when a
// bucket is set.
type ShareConfig struct {
	GCSBucket string `yaml:"gcs_bucket,omitempty"`
	GCSPrefix string `yaml:"gcs_prefix,omitempty"`
}

// ImportConfig locates the import inbox and logs.
type ImportConfig struct {
	Root string `yaml:"root"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Load reads a gastos.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, falling back to Default when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data root.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 30 * time.Second,
		},
		Export: ExportConfig{
			OutputDir: "exports",
			Locale:    "en-US",
		},
		Import: ImportConfig{
			Root: ".",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// OutputPath resolves Export.OutputDir against root.
func (c *Config) OutputPath(root string) string {
	if filepath.IsAbs(c.Export.OutputDir) {
		return c.Export.OutputDir
	}
	return filepath.Join(root, c.Export.OutputDir)
}
