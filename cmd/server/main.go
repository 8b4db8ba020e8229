package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"copilot_accounts/internal/api"
	"copilot_accounts/internal/app/service"
	"copilot_accounts/internal/common/security"
	"copilot_accounts/internal/domain/repository"
	"copilot_accounts/internal/platform/config"
	"copilot_accounts/internal/platform/database"
	"copilot_accounts/internal/platform/throttle"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}
	log.Println("Configuration loaded.")

	// 2. Initialize Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected.")

	// 3. Initialize Redis (login throttle only; the service runs without it)
	var loginLimiter *throttle.LoginLimiter
	rdb, err := throttle.ConnectRedis(cfg)
	if err != nil {
		log.Printf("Redis unavailable, login throttling disabled: %v", err)
	} else {
		defer rdb.Close()
		loginLimiter = throttle.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)
		log.Println("Redis connected.")
	}

	// 4. Initialize Repositories & Services
	accountRepo := repository.NewPgAccountRepository(db)
	tokenService := security.NewTokenService(cfg.JWTSecret, cfg.JWTExp)
	authService := service.NewAuthService(accountRepo, tokenService)

	// 5. Initialize Router & HTTP Server
	router := api.NewRouter(authService, loginLimiter)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
