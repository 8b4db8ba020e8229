package api

import (
	"net/http"
	"time"

	"copilot_accounts/internal/api/handler"
	"copilot_accounts/internal/app/service"
	"copilot_accounts/internal/common"
	"copilot_accounts/internal/platform/throttle"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(authService *service.AuthService, loginLimiter *throttle.LoginLimiter) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	authHandler := handler.NewAuthHandler(authService, loginLimiter)
	r.Route("/api/auth", authHandler.RegisterRoutes)

	return r
}
