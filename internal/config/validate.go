package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	switch strings.ToLower(c.Database.QueryLogLevel) {
	case "none", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("database.query_log_level %q is not a pgx log level", c.Database.QueryLogLevel)
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Glossary.validate(); err != nil {
		return fmt.Errorf("glossary: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("telemetry.sample_ratio must be in [0, 1] (got %v)", c.Telemetry.SampleRatio)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

// OwnershipType returns the configured preferred ownership type.
func (g GlossaryConfig) OwnershipType() domain.OwnershipType {
	return domain.OwnershipType(strings.ToUpper(strings.TrimSpace(g.PreferredOwnershipType)))
}

func (g *GlossaryConfig) validate() error {
	if g.WorkerLimit <= 0 {
		return fmt.Errorf("worker_limit must be > 0 (got %d)", g.WorkerLimit)
	}
	if t := g.OwnershipType(); !t.IsValid() || t == domain.OwnershipTypeNone {
		return fmt.Errorf("preferred_ownership_type %q is not a known ownership type", g.PreferredOwnershipType)
	}
	if g.CreateRateLimit < 0 {
		return fmt.Errorf("create_rate_limit must be >= 0 (got %d)", g.CreateRateLimit)
	}
	if g.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", g.RequestTimeout)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level %q must be one of debug, info, warn, error", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format %q must be json or text", l.Format)
	}
	return nil
}
