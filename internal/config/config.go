// Package config loads runtime settings from the environment.
//
// A .env file is read first when present (or the file named by
// TOKENSMITH_ENV_FILE); variables already set in the process environment
// take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/tokensmith/internal/colour"
	httputil "github.com/jmylchreest/tokensmith/internal/util/http"
)

// Environment variable names.
const (
	EnvFile          = "TOKENSMITH_ENV_FILE"
	EnvLogLevel      = "TOKENSMITH_LOG_LEVEL"
	EnvNoColour      = "TOKENSMITH_NO_COLOUR"
	EnvExtractCount  = "TOKENSMITH_EXTRACT_COUNT"
	EnvHTTPTimeout   = "TOKENSMITH_HTTP_TIMEOUT"
	EnvExportFormats = "TOKENSMITH_EXPORT_FORMATS"
	EnvCacheDir      = "TOKENSMITH_CACHE_DIR"
)

// DefaultEnvFile is loaded when TOKENSMITH_ENV_FILE is not set.
const DefaultEnvFile = ".env"

// Config holds runtime settings.
type Config struct {
	LogLevel      hclog.Level
	NoColour      bool
	ExtractCount  int
	HTTPTimeout   time.Duration
	ExportFormats []string
	// CacheDir holds downloaded images; empty means the user cache dir.
	CacheDir string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      hclog.Info,
		NoColour:      false,
		ExtractCount:  colour.DefaultExtractCount,
		HTTPTimeout:   httputil.DefaultTimeout,
		ExportFormats: []string{"css"},
	}
}

// Load reads the env file, if any, then the environment.
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}
	return FromEnv(os.Getenv)
}

// loadEnvFile loads the configured env file. A missing default .env is not
// an error; a missing explicitly named file is.
func loadEnvFile() error {
	path, explicit := os.LookupEnv(EnvFile)
	if !explicit || path == "" {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config from the given lookup function, starting from
// Default. Every malformed variable is reported.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	var errs []error

	if v := getenv(EnvLogLevel); v != "" {
		level := hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			errs = append(errs, fmt.Errorf("%s: unknown log level %q", EnvLogLevel, v))
		} else {
			cfg.LogLevel = level
		}
	}

	if v := getenv(EnvNoColour); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvNoColour, err))
		} else {
			cfg.NoColour = b
		}
	}

	if v := getenv(EnvExtractCount); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvExtractCount, err))
		case n < 1 || n > colour.MaxExtractCount:
			errs = append(errs, fmt.Errorf("%s: must be within [1, %d], got %d", EnvExtractCount, colour.MaxExtractCount, n))
		default:
			cfg.ExtractCount = n
		}
	}

	if v := getenv(EnvHTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvHTTPTimeout, err))
		case d <= 0:
			errs = append(errs, fmt.Errorf("%s: must be positive, got %s", EnvHTTPTimeout, d))
		default:
			cfg.HTTPTimeout = d
		}
	}

	if v := getenv(EnvExportFormats); v != "" {
		cfg.ExportFormats = parseList(v)
	}

	cfg.CacheDir = getenv(EnvCacheDir)

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// parseList splits a comma separated list, trimming blanks.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
