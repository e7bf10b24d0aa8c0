package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the rentverse client.
//
// Units: APITimeout and TokenRefreshSkew are durations, MaxImageSize is bytes.
type Config struct {
	APIBaseURL       string        `envconfig:"API_BASE_URL"`
	APITimeout       time.Duration `envconfig:"API_TIMEOUT"`
	TokenRefreshSkew time.Duration `envconfig:"TOKEN_REFRESH_SKEW"`

	// RequestsPerSecond and RequestBurst throttle outbound API calls.
	RequestsPerSecond float64 `envconfig:"REQUESTS_PER_SECOND"`
	RequestBurst      int     `envconfig:"REQUEST_BURST"`

	DatabasePath string `envconfig:"DATABASE_PATH"`
	// StoreSecret seals tokens at rest; empty keeps them in plain form.
	StoreSecret string `envconfig:"STORE_SECRET"`

	LogLevel  string `envconfig:"LOG_LEVEL"`
	LogFormat string `envconfig:"LOG_FORMAT"`

	GeocoderURL string `envconfig:"GEOCODER_URL"`
	UserAgent   string `envconfig:"USER_AGENT"`

	DefaultPageSize      int   `envconfig:"DEFAULT_PAGE_SIZE"`
	MaxImageSize         int64 `envconfig:"MAX_IMAGE_SIZE"`
	MaxImagesPerProperty int   `envconfig:"MAX_IMAGES_PER_PROPERTY"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.APITimeout = 15 * time.Second
	c.TokenRefreshSkew = 30 * time.Second
	c.RequestsPerSecond = 10
	c.RequestBurst = 5
	c.DatabasePath = "rentverse.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.GeocoderURL = "https://nominatim.openstreetmap.org"
	c.UserAgent = "RentverseApp/1.0"
	c.DefaultPageSize = 10
	c.MaxImageSize = 5 * 1024 * 1024
	c.MaxImagesPerProperty = 5
}

// Load builds a Config from defaults, then the environment (optionally seeded
// from a .env file), then a JSON file, then flags. Later sources win.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
