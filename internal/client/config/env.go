package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/rentverse/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	envPrefix      = "RENTVERSE"
	defaultEnvFile = ".env"
)

// parseEnv overlays cfg with RENTVERSE_* variables. A .env file is loaded
// first without overriding variables that are already set; a missing default
// .env is not an error, a missing explicit one is.
func parseEnv(cfg *Config, args []string) error {
	envFile := flagx.EnvFilePath(args)
	explicit := envFile != ""
	if !explicit {
		envFile = defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
