package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/rentverse/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-l", "-f", "-t"}

// parseFlags applies the command-line flags listed in the package doc.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("rentverse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")
	timeout := fs.Int("t", int(cfg.APITimeout.Seconds()), "API timeout (in seconds)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	cfg.APITimeout = time.Duration(*timeout) * time.Second
	return nil
}
