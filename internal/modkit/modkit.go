// Package modkit wires service modules from shared deps and options
package modkit

import (
	phttp "comprehend/internal/platform/net/http"
)

// Module is the surface every service module exposes to a binary
type Module interface {
	// MountRoutes attaches HTTP routes; modules without routes leave it empty
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set for cross wiring
	Ports() any
	Name() string
}
