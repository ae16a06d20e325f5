package app

import (
	"strings"
	"time"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/adapters"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/core"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/policies"
)

// Config carries the run-wide settings gathered from flags, environment
// and config file.
type Config struct {
	OutputPath   string
	Store        bool
	CacheDir     string
	BaseURL      string
	RequestDelay time.Duration
	HTTPTimeout  time.Duration
	MaxMergeHops int
	DatasetTag   string
}

const defaultHTTPTimeout = 60 * time.Second

// NormalizeConfig fills defaults. A zero request delay is kept: it is how
// tests and local mirrors switch throttling off.
func NormalizeConfig(cfg Config) Config {
	cfg.OutputPath = strings.TrimSpace(cfg.OutputPath)
	cfg.CacheDir = strings.TrimSpace(cfg.CacheDir)
	if cfg.CacheDir == "" {
		cfg.CacheDir = "."
	}
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = adapters.DefaultSNPBaseURL
	}
	if cfg.RequestDelay < 0 {
		cfg.RequestDelay = adapters.DefaultRequestDelay
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.MaxMergeHops <= 0 {
		cfg.MaxMergeHops = core.DefaultMaxMergeHops
	}
	cfg.DatasetTag = strings.TrimSpace(cfg.DatasetTag)
	if cfg.DatasetTag == "" {
		cfg.DatasetTag = policies.DefaultDatasetTag
	}
	return cfg
}
