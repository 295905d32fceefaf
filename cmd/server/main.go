package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduquest/internal/config"
	"eduquest/internal/database"
	"eduquest/internal/handlers"
	"eduquest/internal/security"
	"eduquest/internal/service"
	"eduquest/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("[STARTUP] Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("[STARTUP] Migrations completed successfully")

	// Initialize the progress store and seed demo accounts on first run
	documents := database.NewDocumentStore(db)
	progressStore := store.New(documents)
	if err := progressStore.Initialize(); err != nil {
		log.Fatalf("Failed to initialize progress store: %v", err)
	}

	log.Println("[STARTUP] Progress store initialized")

	// Initialize services
	progressService := service.NewProgressService(progressStore)
	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.EmailDebug)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}

	// Security helpers
	sessions := security.NewSessionManager(cfg.SessionSecret, cfg.SessionDuration)
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	limiter := security.NewRateLimiter(10, time.Minute)

	// Handlers
	middleware := handlers.NewMiddleware(sessions, csrf, limiter, cfg.AdminUser, cfg.AdminPasswordHash)
	authHandler := handlers.NewAuthHandler(progressStore, sessions, csrf)
	progressHandler := handlers.NewProgressHandler(progressStore, progressService)
	leaderboardHandler := handlers.NewLeaderboardHandler(progressStore)
	adminHandler := handlers.NewAdminHandler(progressStore, reportService)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthCheck)

	// Public routes
	mux.HandleFunc("POST /api/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/leaderboard", leaderboardHandler.Leaderboard)

	// Authenticated learner routes
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(authHandler.Profile))
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(progressHandler.Dashboard))
	mux.HandleFunc("GET /api/continue", middleware.RequireAuth(progressHandler.Continue))
	mux.HandleFunc("POST /api/topics/open", middleware.RequireAuth(middleware.CSRFProtect(progressHandler.OpenTopic)))
	mux.HandleFunc("POST /api/videos/complete", middleware.RequireAuth(middleware.CSRFProtect(progressHandler.CompleteVideo)))
	mux.HandleFunc("POST /api/puzzles/solve", middleware.RequireAuth(middleware.CSRFProtect(progressHandler.SolvePuzzle)))
	mux.HandleFunc("POST /api/progress/reset", middleware.RequireAuth(middleware.CSRFProtect(progressHandler.Reset)))

	// Admin routes
	mux.HandleFunc("GET /admin/users", middleware.RequireAdmin(adminHandler.ListUsers))
	mux.HandleFunc("POST /admin/users/{username}/reset", middleware.RequireAdmin(adminHandler.ResetUser))
	mux.HandleFunc("POST /admin/reports/send", middleware.RequireAdmin(adminHandler.SendReports))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("[STARTUP] Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[SHUTDOWN] Server shutting down...")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
