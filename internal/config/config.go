// Package config reads runtime settings from CRAMIT_* environment variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Delays holds the cosmetic animation timings. A zero delay fires immediately.
type Delays struct {
	Initiate    time.Duration // cram button "Initiating..." label
	Search      time.Duration // search quiescence window
	Press       time.Duration // generic button press
	DeckPress   time.Duration // deck card press
	Loading     time.Duration // session spinner
	Stagger     time.Duration // per-chapter entrance delay
	DeckStagger time.Duration // per-deck-card entrance delay
}

// Config holds all runtime configuration.
type Config struct {
	LogFile        string
	LogLevel       slog.Level
	Haptics        bool
	DefaultSubject string
	CatalogPath    string
	Delays         Delays
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		LogLevel:       slog.LevelInfo,
		Haptics:        true,
		DefaultSubject: "physics",
		Delays: Delays{
			Initiate:    800 * time.Millisecond,
			Search:      300 * time.Millisecond,
			Press:       100 * time.Millisecond,
			DeckPress:   150 * time.Millisecond,
			Loading:     1000 * time.Millisecond,
			Stagger:     40 * time.Millisecond,
			DeckStagger: 100 * time.Millisecond,
		},
	}
}

// ImmediateDelays returns delays that all fire without waiting.
func ImmediateDelays() Delays {
	return Delays{}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CRAMIT_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("CRAMIT_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("CRAMIT_HAPTICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Haptics = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("CRAMIT_DEFAULT_SUBJECT")); v != "" {
		cfg.DefaultSubject = v
	}
	if v := os.Getenv("CRAMIT_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}

	applyDelayEnv(&cfg.Delays.Initiate, "CRAMIT_INITIATE_DELAY_MS")
	applyDelayEnv(&cfg.Delays.Search, "CRAMIT_SEARCH_DEBOUNCE_MS")
	applyDelayEnv(&cfg.Delays.Press, "CRAMIT_PRESS_DELAY_MS")
	applyDelayEnv(&cfg.Delays.DeckPress, "CRAMIT_DECK_PRESS_DELAY_MS")
	applyDelayEnv(&cfg.Delays.Loading, "CRAMIT_LOADING_DELAY_MS")
	applyDelayEnv(&cfg.Delays.Stagger, "CRAMIT_STAGGER_MS")
	applyDelayEnv(&cfg.Delays.DeckStagger, "CRAMIT_DECK_STAGGER_MS")

	return cfg
}

func applyDelayEnv(d *time.Duration, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return
	}
	*d = time.Duration(n) * time.Millisecond
}
