package store

import (
	"time"

	"comprehend/internal/platform/config"
	"comprehend/internal/platform/logger"
)

// Config aggregates per backend configuration
type Config struct {
	// AppName tags connections (pg application_name, ch client info)
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures Postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the boot ping loop
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures ClickHouse connectivity
type CHConfig struct {
	Enabled bool
	// URL is a clickhouse:// DSN
	URL string
	// Role is reported in the client info, e.g. "stub"
	Role string
}

// FromConfig reads PG_* and CH_* keys under cfg. A backend is enabled when its URL is set
func FromConfig(cfg config.Conf, app string) Config {
	pg := cfg.Prefix("PG_")
	ch := cfg.Prefix("CH_")
	out := Config{
		AppName: app,
		PG: PGConfig{
			URL:            pg.MayString("URL", ""),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 4)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 500),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			URL:  ch.MayString("URL", ""),
			Role: app,
		},
	}
	out.PG.Enabled = out.PG.URL != ""
	out.CH.Enabled = out.CH.URL != ""
	return out
}

// Option adjusts the Store before any backend is opened
type Option func(*Store) error

// WithLogger routes the pgx tracer and the open retry loop through log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
