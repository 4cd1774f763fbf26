package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"HEYNOM_BACK-END/internal/config"
)

// CORS wraps next with the configured cross-origin policy
func CORS(next http.Handler, cfg *config.CORSConfig) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
	})
	return c.Handler(next)
}
