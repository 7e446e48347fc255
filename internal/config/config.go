// Package config содержит логику чтения конфигурации бэкофиса.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации бэкофиса.
type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DataPath      string `env:"DATA_PATH"`
	SessionSecret string `env:"SESSION_SECRET"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных
// окружения. Значения из окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDataPath := cfg.DataPath
	envSessionSecret := cfg.SessionSecret

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DataPath, "d", "backoffice-data", "directory for the data store")
	flag.StringVar(&cfg.SessionSecret, "s", "", "secret key for the session cookie")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDataPath != "" {
		cfg.DataPath = envDataPath
	}
	if envSessionSecret != "" {
		cfg.SessionSecret = envSessionSecret
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.DataPath == "" {
		cfg.DataPath = "backoffice-data"
	}

	return cfg, nil
}
