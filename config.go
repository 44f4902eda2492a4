package locres

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config carries every tunable the resolver recognizes. Zero values are
// filled in from DefaultConfig, so a partial TOML file or a hand-built struct
// both work.
type Config struct {
	// Extraction cache: short-to-medium lived, successful resolutions only.
	ExtractionCacheSize int
	ExtractionCacheTTL  time.Duration

	// Correction store: long lived, user corrections are high-value signal.
	CorrectionCacheSize int
	CorrectionCacheTTL  time.Duration

	// SweepInterval is how often both caches physically drop expired entries.
	SweepInterval time.Duration

	// ExtractionDeadline bounds the completion call per resolution.
	ExtractionDeadline time.Duration

	// CompletionURL configures the built-in HTTP completion client when no
	// explicit CompletionClient is injected.
	CompletionURL    string
	CompletionAPIKey string

	// ValidationEnabled toggles the external code check for low-confidence
	// candidates; ValidationURL empty means format-only validation.
	ValidationEnabled bool
	ValidationURL     string
}

// DefaultConfig returns the resolver defaults.
func DefaultConfig() Config {
	return Config{
		ExtractionCacheSize: 500,
		ExtractionCacheTTL:  6 * time.Hour,
		CorrectionCacheSize: 1000,
		CorrectionCacheTTL:  7 * 24 * time.Hour,
		SweepInterval:       5 * time.Minute,
		ExtractionDeadline:  10 * time.Second,
		ValidationEnabled:   true,
	}
}

// fileConfig is the TOML shape of Config. Durations are expressed as
// milliseconds for the deadline and sweep, and hours for the TTLs, matching
// how operators think about each knob.
type fileConfig struct {
	ExtractionCacheSize  int     `toml:"extraction_cache_size"`
	ExtractionCacheTTLH  float64 `toml:"extraction_cache_ttl_hours"`
	CorrectionCacheSize  int     `toml:"correction_cache_size"`
	CorrectionCacheTTLH  float64 `toml:"correction_cache_ttl_hours"`
	SweepIntervalMS      int     `toml:"sweep_interval_ms"`
	ExtractionDeadlineMS int     `toml:"extraction_deadline_ms"`
	CompletionURL        string  `toml:"completion_url"`
	CompletionAPIKey     string  `toml:"completion_api_key"`
	ValidationEnabled    *bool   `toml:"validation_enabled"`
	ValidationURL        string  `toml:"validation_url"`
}

// LoadConfig reads a TOML config file, layering it over DefaultConfig. Keys
// absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}

	if fc.ExtractionCacheSize > 0 {
		cfg.ExtractionCacheSize = fc.ExtractionCacheSize
	}
	if fc.ExtractionCacheTTLH > 0 {
		cfg.ExtractionCacheTTL = time.Duration(fc.ExtractionCacheTTLH * float64(time.Hour))
	}
	if fc.CorrectionCacheSize > 0 {
		cfg.CorrectionCacheSize = fc.CorrectionCacheSize
	}
	if fc.CorrectionCacheTTLH > 0 {
		cfg.CorrectionCacheTTL = time.Duration(fc.CorrectionCacheTTLH * float64(time.Hour))
	}
	if fc.SweepIntervalMS > 0 {
		cfg.SweepInterval = time.Duration(fc.SweepIntervalMS) * time.Millisecond
	}
	if fc.ExtractionDeadlineMS > 0 {
		cfg.ExtractionDeadline = time.Duration(fc.ExtractionDeadlineMS) * time.Millisecond
	}
	if fc.CompletionURL != "" {
		cfg.CompletionURL = fc.CompletionURL
	}
	if fc.CompletionAPIKey != "" {
		cfg.CompletionAPIKey = fc.CompletionAPIKey
	}
	if fc.ValidationEnabled != nil {
		cfg.ValidationEnabled = *fc.ValidationEnabled
	}
	if fc.ValidationURL != "" {
		cfg.ValidationURL = fc.ValidationURL
	}
	return cfg, nil
}
