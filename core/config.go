package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "ogimage.config.yml"
	EnvPrefix         = "OGIMAGE"
)

type Config struct {
	Port         int    `yaml:"port" envconfig:"PORT"`
	OutputDir    string `yaml:"outputDir" envconfig:"OUTPUT_DIR"`
	BaseURL      string `yaml:"baseURL" envconfig:"BASE_URL"`
	Minify       bool   `yaml:"minify" envconfig:"MINIFY"`
	Gzip         bool   `yaml:"gzip" envconfig:"GZIP"`
	Metrics      bool   `yaml:"metrics" envconfig:"METRICS"`
	DebugHeaders bool   `yaml:"debugHeaders" envconfig:"DEBUG_HEADERS"`
	DebugLogs    bool   `yaml:"debugLogs" envconfig:"DEBUG_LOGS"`
	LogFormat    string `yaml:"logFormat" envconfig:"LOG_FORMAT"`
}

func DefaultConfig() Config {
	return Config{
		Port:      8080,
		OutputDir: "./cards",
		BaseURL:   "http://localhost:8080",
		LogFormat: "text",
	}
}

// LoadConfig reads the YAML file at path, falling back to defaults when it
// does not exist, then applies OGIMAGE_* environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("config from env: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.Port == 0 {
		cfg.Port = defaults.Port
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaults.LogFormat
	}

	return cfg, nil
}
