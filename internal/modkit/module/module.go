// Package module looks up port sets across modules during bootstrap
package module

import (
	phttp "comprehend/internal/platform/net/http"
)

// Module mirrors modkit.Module so callers can avoid importing modkit
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
