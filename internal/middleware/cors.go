package middleware

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"

	"github.com/RubachokBoss/task-manager/internal/config"
)

// NewCORS builds the CORS handler. Browsers refuse a "*" origin on
// credentialed requests, so a wildcard combined with credentials echoes the
// caller's origin instead.
func NewCORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if cfg.AllowCredentials && slices.Contains(cfg.AllowedOrigins, "*") {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return true
		}
	}

	return cors.Handler(opts)
}
