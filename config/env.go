package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the process environment overrides.
type Env struct {
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	SettingsPath string `env:"CONTOUR_SETTINGS" envDefault:"settings.json"`
	Debug        bool   `env:"CONTOUR_DEBUG" envDefault:"false"`
	HotReload    bool   `env:"CONTOUR_HOT_RELOAD" envDefault:"false"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
