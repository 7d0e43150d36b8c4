// Copyright 2025 The dockboard authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the dockboard daemon configuration from a YAML
// file. A missing config file is not an error: the daemon then runs on its
// defaults, talking to the local Docker daemon.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings in Go
// duration syntax, such as "2s" or "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config is the dockboard daemon configuration.
type Config struct {
	// DockerHost optionally overrides the Docker daemon API endpoint, such
	// as "unix:///var/run/docker.sock". Empty defers to the usual DOCKER_*
	// environment variables and their defaults.
	DockerHost string `yaml:"docker-host,omitempty"`
	// PollInterval is the pause between two discovery cycles.
	PollInterval Duration `yaml:"poll-interval,omitempty"`
	// CallTimeout bounds every single Docker API call.
	CallTimeout Duration `yaml:"call-timeout,omitempty"`
	// SampleConcurrency caps the concurrent stats samples per cycle.
	SampleConcurrency int `yaml:"sample-concurrency,omitempty"`
	// SettingsPath locates the SQLite database holding the dashboard
	// settings.
	SettingsPath string `yaml:"settings-path,omitempty"`
	// LogLevel is one of "debug", "info", "warn", and "error".
	LogLevel string `yaml:"log-level,omitempty"`
}

// Default returns the configuration the daemon runs on when no config file
// exists.
func Default() *Config {
	return &Config{
		PollInterval:      Duration(2 * time.Second),
		CallTimeout:       Duration(5 * time.Second),
		SampleConcurrency: 8,
		SettingsPath:      DefaultSettingsPath(),
		LogLevel:          "info",
	}
}

// DefaultSettingsPath returns the default settings database location,
// respecting XDG_DATA_HOME and falling back to ~/.local/share.
func DefaultSettingsPath() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".local", "share", "dockboard", "settings.db")
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "dockboard", "settings.db")
}

// Load reads the configuration from the given YAML file, overlaying it on
// the defaults. If the file does not exist, the defaults are returned (not
// an error).
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive, got %s",
			time.Duration(c.PollInterval))
	}
	if c.CallTimeout <= 0 {
		return fmt.Errorf("call-timeout must be positive, got %s",
			time.Duration(c.CallTimeout))
	}
	if c.SampleConcurrency <= 0 {
		return fmt.Errorf("sample-concurrency must be positive, got %d",
			c.SampleConcurrency)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log-level %q", c.LogLevel)
	}
	return nil
}
