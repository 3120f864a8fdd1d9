package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/auth"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/handlers"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/middleware"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/storage"
)

// SetupRoutes configures all application routes. Handlers behind
// AuthMiddleware receive the fully loaded caller in the request
// context.
func SetupRoutes(
	mux *http.ServeMux,
	userHandler *handlers.UserHandler,
	swipeHandler *handlers.SwipeHandler,
	catalogHandler *handlers.CatalogHandler,
	healthHandler *handlers.HealthHandler,
	googleAuthHandler *handlers.GoogleAuthHandler,
	issuer *auth.TokenIssuer,
	users storage.UserStore,
) {
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, issuer, users)
	}

	// Health check routes
	mux.HandleFunc("/healthz", healthHandler.HealthCheck)
	mux.HandleFunc("/livez", healthHandler.LivenessCheck)
	mux.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Account routes
	mux.HandleFunc("/user/register", userHandler.Register)
	mux.HandleFunc("/user/login", userHandler.Login)
	mux.HandleFunc("/user/logout", userHandler.Logout)
	mux.HandleFunc("/user/google/login", googleAuthHandler.GoogleLogin)
	mux.HandleFunc("/user/google/callback", googleAuthHandler.GoogleCallback)

	// Profile routes (authenticated)
	mux.HandleFunc("/user/profile", authed(userHandler.ViewProfile))
	mux.HandleFunc("/user/editProfile", authed(userHandler.EditProfile))
	mux.HandleFunc("/user/updateSkills", authed(userHandler.UpdateSkills))
	mux.HandleFunc("/user/updateInterests", authed(userHandler.UpdateInterests))
	mux.HandleFunc("/user/getMatches", authed(userHandler.GetMatches))
	mux.HandleFunc("/user/getNotifications", authed(userHandler.GetNotifications))

	// Swipe routes (authenticated)
	mux.HandleFunc("/swipe/like", authed(swipeHandler.Like))

	// Catalog routes
	mux.HandleFunc("/home/skills", catalogHandler.ListSkills)

	// API documentation
	mux.Handle("/swagger/", httpSwagger.Handler())

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("SkillBarter backend is running."))
}
