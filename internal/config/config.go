package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded once at startup.
type Config struct {
	Server struct {
		Host          string `yaml:"host"`
		Port          int    `yaml:"port"`
		MaxFileSizeMB int    `yaml:"max_file_size_mb"`
	} `yaml:"server"`

	Transcription struct {
		// Mode selects "external" or "synthetic" dispatch.
		Mode    string `yaml:"mode"`
		Command string `yaml:"command"`
		Module  string `yaml:"module"`
		Model   string `yaml:"model"`
	} `yaml:"transcription"`

	Storage struct {
		TempDir  string `yaml:"temp_dir"`
		Database string `yaml:"database"`
	} `yaml:"storage"`

	Cleanup struct {
		IntervalMinutes int `yaml:"interval_minutes"`
		MaxAgeHours     int `yaml:"max_age_hours"`
	} `yaml:"cleanup"`

	Callback struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"callback"`
}

// defaults returns a config that works without a config file.
func defaults() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.MaxFileSizeMB = 100
	cfg.Transcription.Mode = "synthetic"
	cfg.Transcription.Command = "python3"
	cfg.Transcription.Module = "parakeet_asr"
	cfg.Transcription.Model = "nvidia/parakeet-tdt-0.6b-v2"
	cfg.Storage.TempDir = "temp"
	cfg.Storage.Database = "transcripts.db"
	cfg.Cleanup.IntervalMinutes = 30
	cfg.Cleanup.MaxAgeHours = 24
	cfg.Callback.BaseURL = "http://app:3000"
	return &cfg
}

// Load reads the YAML config file when present and applies environment
// overrides (TRANSCRIPTION_MODE, CALLBACK_BASE_URL). A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if mode := os.Getenv("TRANSCRIPTION_MODE"); mode != "" {
		cfg.Transcription.Mode = mode
	}
	if base := os.Getenv("CALLBACK_BASE_URL"); base != "" {
		cfg.Callback.BaseURL = base
	}

	if cfg.Transcription.Mode != "external" && cfg.Transcription.Mode != "synthetic" {
		return nil, fmt.Errorf("invalid transcription mode %q (want external or synthetic)", cfg.Transcription.Mode)
	}

	return cfg, nil
}
