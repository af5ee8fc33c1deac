package module

import (
	"time"

	"comprehend/internal/platform/config"
)

// Options holds configuration settings for the client module
type Options struct {
	ValidateRequests  bool
	AllowUnknownEnums bool
	Endpoint          string
	Timeout           time.Duration
}

// FromConfig reads COMPREHEND_* settings from cfg
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("COMPREHEND_")
	return Options{
		ValidateRequests:  c.MayBool("VALIDATE_REQUESTS", false),
		AllowUnknownEnums: c.MayBool("ALLOW_UNKNOWN_ENUMS", false),
		Endpoint:          c.MayURL("ENDPOINT", "http://localhost:4010"),
		Timeout:           c.MayDuration("TIMEOUT", 30*time.Second),
	}
}
