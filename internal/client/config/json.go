package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/rentverse/internal/flagx"
	"github.com/dmitrijs2005/rentverse/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Only keys present
// in the file are applied.
type JsonConfig struct {
	APIBaseURL           string         `json:"api_base_url"`
	APITimeout           timex.Duration `json:"api_timeout"`
	TokenRefreshSkew     timex.Duration `json:"token_refresh_skew"`
	RequestsPerSecond    float64        `json:"requests_per_second"`
	RequestBurst         int            `json:"request_burst"`
	DatabasePath         string         `json:"database_path"`
	StoreSecret          string         `json:"store_secret"`
	LogLevel             string         `json:"log_level"`
	LogFormat            string         `json:"log_format"`
	GeocoderURL          string         `json:"geocoder_url"`
	UserAgent            string         `json:"user_agent"`
	DefaultPageSize      int            `json:"default_page_size"`
	MaxImageSize         int64          `json:"max_image_size"`
	MaxImagesPerProperty int            `json:"max_images_per_property"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setIf(&cfg.APITimeout, jc.APITimeout.Duration)
	setIf(&cfg.TokenRefreshSkew, jc.TokenRefreshSkew.Duration)
	setIf(&cfg.RequestsPerSecond, jc.RequestsPerSecond)
	setIf(&cfg.RequestBurst, jc.RequestBurst)
	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.StoreSecret, jc.StoreSecret)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.GeocoderURL, jc.GeocoderURL)
	setIf(&cfg.UserAgent, jc.UserAgent)
	setIf(&cfg.DefaultPageSize, jc.DefaultPageSize)
	setIf(&cfg.MaxImageSize, jc.MaxImageSize)
	setIf(&cfg.MaxImagesPerProperty, jc.MaxImagesPerProperty)
	return nil
}

func setIf[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
