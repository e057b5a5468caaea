package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"image-saver/internal/platform/paths"

	"github.com/joho/godotenv"
)

const (
	EnvAPIListen     = "IMAGE_SAVER_API_LISTEN"
	EnvBearerToken   = "IMAGE_SAVER_BEARER_TOKEN"
	EnvDebug         = "IMAGE_SAVER_DEBUG"
	EnvPicker        = "IMAGE_SAVER_PICKER"
	EnvDefaultFolder = "IMAGE_SAVER_DEFAULT_FOLDER"
)

// LoadEnvFile reads the .env file next to config.yaml into the process
// environment. Variables already set are left alone. A missing file is not
// an error.
func LoadEnvFile() error {
	p, err := paths.EnvFilePath()
	if err != nil {
		return err
	}
	if err := godotenv.Load(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// ApplyEnv overlays IMAGE_SAVER_* variables on cfg.
func ApplyEnv(cfg *Config) error {
	if v, ok := lookup(EnvAPIListen); ok {
		cfg.APIListen = v
	}
	if v, ok := lookup(EnvBearerToken); ok {
		cfg.BearerToken = v
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = b
	}
	if v, ok := lookup(EnvPicker); ok {
		v = strings.ToLower(v)
		if !IsPickerMode(v) {
			return fmt.Errorf("%s: invalid picker %q", EnvPicker, v)
		}
		cfg.Picker = PickerMode(v)
	}
	if v, ok := lookup(EnvDefaultFolder); ok {
		cfg.DefaultFolder = v
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// WithEnv returns cfg with the .env file and IMAGE_SAVER_* overrides
// applied. The result is meant for running; saving it would persist values
// that only came from the environment.
func WithEnv(cfg Config) (Config, error) {
	if err := LoadEnvFile(); err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadEffective loads config.yaml (ErrNotFound when missing and required)
// and passes it through WithEnv.
func LoadEffective(required bool) (Config, error) {
	load := LoadOrDefault
	if required {
		load = Load
	}
	cfg, err := load()
	if err != nil {
		return Config{}, err
	}
	return WithEnv(cfg)
}
