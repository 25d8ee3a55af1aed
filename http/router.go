package http

import (
	"net/http"

	"go.uber.org/zap"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Page       *PageHandler
	Contact    *ContactHandler
	Projection *ProjectionHandler
}

// NewRouter wires the routes. Only lead submissions are rate limited; the
// calculator hits /api/projection on every keystroke.
func NewRouter(h Handlers, contactLimiter *RateLimiter, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Page.Landing)
	mux.HandleFunc("GET /healthz", Health)
	mux.Handle("POST /api/contact", RateLimitMiddleware(contactLimiter, logger, http.HandlerFunc(h.Contact.Submit)))
	mux.HandleFunc("GET /api/projection", h.Projection.Calculate)
	mux.HandleFunc("POST /api/projection", h.Projection.Calculate)
	mux.HandleFunc("GET /api/projection/illustration.pdf", h.Projection.Illustration)

	return LoggingMiddleware(logger, mux)
}
