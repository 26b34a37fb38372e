package public

import "github.com/bkpsdm/portal-api/internal/provider"

// Handler public site API handlers
type Handler struct {
	*provider.Container
}

// New creates the public handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
