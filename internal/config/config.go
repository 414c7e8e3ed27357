// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the oxd configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ErrInvalid indicates an invalid configuration value.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Cache CacheConfig `yaml:"cache"`
	Log   LogConfig   `yaml:"log"`
	Audio AudioConfig `yaml:"audio"`
}

// APIConfig holds dictionary provider settings.
type APIConfig struct {
	AppID       string        `yaml:"app_id"      env:"OD_API_APP_ID"      env-required:"true"`
	AppKey      string        `yaml:"app_key"     env:"OD_API_APP_KEY"     env-required:"true"`
	BaseURL     string        `yaml:"base_url"    env:"OD_API_BASE_URL"    env-default:"https://od-api.oxforddictionaries.com/api/v2/"`
	Language    string        `yaml:"language"    env:"OD_API_LANGUAGE"    env-default:"en-us"`
	Timeout     time.Duration `yaml:"timeout"     env:"OD_API_TIMEOUT"     env-default:"10s"`
	Concurrency int           `yaml:"concurrency" env:"OD_API_CONCURRENCY" env-default:"4"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	// Dir defaults to oxd under the user cache directory.
	Dir      string `yaml:"dir"      env:"OXD_CACHE_DIR"`
	Disabled bool   `yaml:"disabled" env:"OXD_CACHE_DISABLED" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"OXD_LOG_LEVEL" env-default:"warn"`
}

// AudioConfig holds audio playback settings.
type AudioConfig struct {
	// Player is the player command line. The audio file path is appended.
	Player string `yaml:"player" env:"OXD_PLAYER" env-default:"mpv --really-quiet"`
}

// Load reads configuration from a YAML file and environment variables.
// Environment variables take precedence over the file. If path is empty the
// OXD_CONFIG variable is used and then the default locations. It is not an
// error for no file to exist unless a path was given explicitly.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("OXD_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = findConfig()
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = defaultCacheDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.API.AppID == "" || c.API.AppKey == "" {
		return fmt.Errorf("%w: api app_id and app_key are required", ErrInvalid)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api timeout must be positive", ErrInvalid)
	}
	if c.API.Concurrency < 1 {
		return fmt.Errorf("%w: api concurrency must be at least 1", ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	return level, nil
}

// PlayerCommand returns the player command split into arguments.
func (a AudioConfig) PlayerCommand() []string {
	return strings.Fields(a.Player)
}

// findConfig returns the first existing default configuration file, or the
// empty string.
func findConfig() string {
	for _, dir := range configLocations() {
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return filepath.Join(os.TempDir(), "oxd")
	}
	return filepath.Join(dir, "oxd")
}
