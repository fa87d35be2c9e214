package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/shoresign/shoresign/internal/logger"
)

// Default display location: Half Moon Bay, CA.
const (
	defaultLat  = 37.4636
	defaultLon  = -122.4286
	defaultZone = "America/Los_Angeles"
)

// AppConfig carries every runtime option: credentials, coordinates, zone,
// cache and output paths, and the force-refresh switches. Missing API keys
// are not an error; the affected source degrades to placeholder output.
type AppConfig struct {
	AstroAPIKey string
	TideAPIKey  string

	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`

	TimeZone  string `validate:"required"`
	CachePath string `validate:"required"`
	OutputDir string `validate:"required"`

	ForceAstronomy bool
	ForceTides     bool

	// HTTPTimeout bounds every outbound request so a hung upstream cannot
	// stall the run.
	HTTPTimeout time.Duration

	// PageSeconds is the carousel dwell time per page.
	PageSeconds int `validate:"gt=0"`

	// RunInterval, when non-zero, enables the built-in interval loop
	// instead of a one-shot run.
	RunInterval time.Duration
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.WithComponent("config").Debugf("no .env file loaded: %v", err)
	}

	cfg := &AppConfig{
		AstroAPIKey:    os.Getenv("ASTRO_API_KEY"),
		TideAPIKey:     os.Getenv("TIDE_API_KEY"),
		TimeZone:       getenvDefault("TIME_ZONE", defaultZone),
		CachePath:      getenvDefault("CACHE_PATH", "data/cache.json"),
		OutputDir:      getenvDefault("OUTPUT_DIR", "public"),
		ForceAstronomy: getenvBool("FORCE_ASTRO"),
		ForceTides:     getenvBool("FORCE_TIDES"),
		PageSeconds:    getenvInt("PAGE_SECONDS", 15),
	}

	var err error
	if cfg.Lat, err = getenvFloat("TIDE_LAT", defaultLat); err != nil {
		return nil, fmt.Errorf("invalid TIDE_LAT: %w", err)
	}
	if cfg.Lon, err = getenvFloat("TIDE_LON", defaultLon); err != nil {
		return nil, fmt.Errorf("invalid TIDE_LON: %w", err)
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	if cfg.HTTPTimeout, err = time.ParseDuration(timeoutStr); err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	if intervalStr := os.Getenv("RUN_INTERVAL"); intervalStr != "" {
		if cfg.RunInterval, err = time.ParseDuration(intervalStr); err != nil {
			return nil, fmt.Errorf("invalid RUN_INTERVAL: %w", err)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

func getenvBool(key string) bool {
	v := os.Getenv(key)
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
