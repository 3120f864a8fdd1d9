// @title SkillBarter Backend API
// @version 1.0
// @description SkillBarter backend API for skill-exchange matching

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/docs" // This is required for swagger
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/auth"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/config"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/handlers"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/routes"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/service"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/storage"
)

// defaultSkillCatalog seeds the barterable-skill list on boot. Seeding
// is idempotent, so restarts never duplicate rows.
var defaultSkillCatalog = []string{
	"Cooking",
	"Baking",
	"Guitar",
	"Piano",
	"Singing",
	"Painting",
	"Drawing",
	"Photography",
	"Graphic Design",
	"Web Development",
	"Gardening",
	"Carpentry",
	"Knitting",
	"Yoga",
	"Swimming",
	"Chess",
	"Public Speaking",
	"Creative Writing",
	"Spanish",
	"French",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	pool, err := storage.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	if err := storage.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userStore := storage.NewPostgresUserStore(pool)
	skillStore := storage.NewPostgresSkillStore(pool)
	if err := skillStore.Seed(ctx, defaultSkillCatalog); err != nil {
		log.Fatalf("seed skills: %v", err)
	}

	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.SessionTTL)
	profileSvc := service.NewProfileService(userStore, skillStore, issuer)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(profileSvc, issuer)
	swipeHandler := handlers.NewSwipeHandler(profileSvc)
	catalogHandler := handlers.NewCatalogHandler(profileSvc)
	healthHandler := handlers.NewHealthHandler(pool)
	googleAuthHandler := handlers.NewGoogleAuthHandler(profileSvc, issuer, &cfg.GoogleOAuth)

	// Setup all routes
	mux := http.NewServeMux()
	routes.SetupRoutes(mux, userHandler, swipeHandler, catalogHandler, healthHandler, googleAuthHandler, issuer, userStore)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      c.Handler(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
