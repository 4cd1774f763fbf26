package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"HEYNOM_BACK-END/internal/config"
	"HEYNOM_BACK-END/internal/handlers"
	"HEYNOM_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes and returns the wrapped handler
func SetupRoutes(mux *http.ServeMux, cfg *config.Config, foodHandler *handlers.FoodHandler, healthHandler *handlers.HealthHandler) http.Handler {
	// Health check routes
	mux.HandleFunc("GET /healthz", healthHandler.HealthCheck)
	mux.HandleFunc("GET /livez", healthHandler.LivenessCheck)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessCheck)

	// Food log routes, with and without the trailing slash
	prefix := cfg.Server.APIPrefix
	auth := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(h, &cfg.JWT)
	}
	for _, collection := range []string{prefix + "/food/{$}", prefix + "/food"} {
		mux.HandleFunc("GET "+collection, auth(foodHandler.ListEntries))
		mux.HandleFunc("POST "+collection, auth(foodHandler.CreateEntry))
	}
	mux.HandleFunc("DELETE "+prefix+"/food/{entry_id}", auth(foodHandler.DeleteEntry))

	if cfg.SwaggerEnabled {
		mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)

	return middleware.RequestLogger(middleware.Recovery(middleware.CORS(mux, &cfg.CORS)))
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("HeyNom backend is running."))
}
