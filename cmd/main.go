// @title HeyNom Backend API
// @version 1.0
// @description Food log API scoped to the authenticated user

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "HEYNOM_BACK-END/docs" // This is required for swagger
	"HEYNOM_BACK-END/internal/config"
	"HEYNOM_BACK-END/internal/database"
	"HEYNOM_BACK-END/internal/handlers"
	"HEYNOM_BACK-END/internal/routes"
	"HEYNOM_BACK-END/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Pool lives for the whole process and is closed on shutdown
	pool, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if cfg.Database.BootstrapSchema {
		if err := database.EnsureSchema(context.Background(), pool, cfg.Database.Schema); err != nil {
			log.Fatalf("database: %v", err)
		}
		log.Printf("Schema %s is ready", cfg.Database.Schema)
	}

	// --- HTTP Handlers ---
	foodService := services.NewFoodEntryService(pool, cfg.Database.Schema, cfg.Database.QueryTimeout)
	foodHandler := handlers.NewFoodHandler(foodService)
	healthHandler := handlers.NewHealthHandler(pool)

	handler := routes.SetupRoutes(http.NewServeMux(), cfg, foodHandler, healthHandler)

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           otelhttp.NewHandler(handler, "heynom-backend"),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		log.Printf("ListenAndServe: %v", err)
	}
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
