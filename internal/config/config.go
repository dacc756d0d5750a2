// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Advisory AI settings
	AI struct {
		Enabled        bool    `yaml:"enabled"`
		BaseURL        string  `yaml:"base_url"`
		APIKey         string  `yaml:"api_key"`
		Model          string  `yaml:"model"`
		MaxTokens      int     `yaml:"max_tokens"`
		Temperature    float32 `yaml:"temperature"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		Concurrency    int     `yaml:"concurrency"`
	} `yaml:"ai"`
}

// DefaultConfig returns the built-in defaults used when no config file is
// present or a field is left unset.
func DefaultConfig() *Config {
	config := &Config{}
	config.Defaults.Format = "text"
	config.AI.Model = "gpt-4o-mini"
	config.AI.MaxTokens = 1200
	config.AI.Temperature = 0.3
	config.AI.TimeoutSeconds = 60
	config.AI.Concurrency = 3
	return config
}

// LoadConfig loads configuration from the specified file path. An empty path
// returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// The API key is secret material; prefer the environment over the file.
	if key := os.Getenv("GALLEY_SCAN_API_KEY"); key != "" {
		config.AI.APIKey = key
	}
	return config, nil
}

// FindConfigFile searches standard locations for a configuration file and
// returns the first that exists, or an empty string.
func FindConfigFile() string {
	candidates := []string{
		".galley-scan.yaml",
		".galley-scan.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".galley-scan.yaml"),
			filepath.Join(home, ".config", "galley-scan", "config.yaml"),
		)
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when empty) and falls back to defaults on any error.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
