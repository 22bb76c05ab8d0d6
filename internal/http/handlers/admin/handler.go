package admin

import "github.com/stylemart/internal/provider"

// Handler serves the admin API. Every route behind it requires an
// authenticated admin.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
