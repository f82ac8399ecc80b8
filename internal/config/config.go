// Package config loads runtime settings from a .env file and the
// environment. Command-line flags take precedence over everything here.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Msundarv/CFP-NER/internal/ner"
	"github.com/Msundarv/CFP-NER/internal/scraper"
)

// Cfg holds all runtime configuration loaded from environment variables.
type Cfg struct {
	// ModelPath points at the MITIE english model data used by model m1.
	// Populated from MITIE_MODEL_PATH.
	ModelPath string

	// HTTPTimeout bounds the scrape request. Populated from
	// CFP_HTTP_TIMEOUT (a Go duration string, e.g. "10s").
	HTTPTimeout time.Duration
}

// Load reads .env (if present) then environment variables and returns Cfg.
func Load() *Cfg {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	modelPath := strings.TrimSpace(os.Getenv("MITIE_MODEL_PATH"))
	if modelPath == "" {
		modelPath = ner.DefaultModelPath
	}

	timeout := scraper.DefaultTimeout
	if raw := strings.TrimSpace(os.Getenv("CFP_HTTP_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	return &Cfg{
		ModelPath:   modelPath,
		HTTPTimeout: timeout,
	}
}
