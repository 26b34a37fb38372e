package admin

import "github.com/bkpsdm/portal-api/internal/provider"

// Handler backoffice API handlers
type Handler struct {
	*provider.Container
}

// New creates the admin handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
