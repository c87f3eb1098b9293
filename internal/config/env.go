package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvAPIBaseURL = "GASTOS_API_BASE_URL"
	EnvAPIToken   = "GASTOS_API_TOKEN"
	EnvGCSBucket  = "GASTOS_GCS_BUCKET"
	EnvLogLevel   = "GASTOS_LOG_LEVEL"
)

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(EnvAPIBaseURL, &c.API.BaseURL)
	set(EnvAPIToken, &c.API.Token)
	set(EnvGCSBucket, &c.Share.GCSBucket)
	set(EnvLogLevel, &c.Log.Level)
}
