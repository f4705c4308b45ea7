package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"classboard/internal/auth"
	"classboard/internal/config"
	"classboard/internal/handler"
	"classboard/internal/middleware"
	"classboard/internal/repository/postgres"
	serviceAuth "classboard/internal/service/auth"
	"classboard/internal/service/bulletin"
	"classboard/internal/service/notes"
	"classboard/internal/service/timetable"
	"classboard/internal/storage"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Session tokens for admin login
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	// Database
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	logger.Info("database connected")

	// Repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	nodeRepo := postgres.NewNodeRepository(repoConfig)
	announcementRepo := postgres.NewAnnouncementRepository(repoConfig)
	notificationRepo := postgres.NewNotificationRepository(repoConfig)
	timetableRepo := postgres.NewTimetableRepository(repoConfig)

	// Upload store
	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to create upload store: %v", err)
	}

	// Services
	notesService := notes.NewService(nodeRepo, store, logger)
	bulletinService := bulletin.NewService(announcementRepo, notificationRepo, logger)
	timetableService := timetable.NewService(timetableRepo, logger)
	authService := serviceAuth.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, tokens, logger)

	// Handlers
	notesHandler := handler.NewNotesHandler(notesService, logger)
	bulletinHandler := handler.NewBulletinHandler(bulletinService, logger)
	timetableHandler := handler.NewTimetableHandler(timetableService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	logger.Info("services initialized")

	// Admin guard for mutating routes; reads stay public
	requireAdmin := middleware.RequireAdmin(tokens)
	admin := func(h http.HandlerFunc) http.Handler {
		return requireAdmin(h)
	}

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Auth
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	// Notes drive
	mux.HandleFunc("GET /api/notes/list", notesHandler.List)
	mux.Handle("POST /api/notes/folder", admin(notesHandler.CreateFolder))
	mux.Handle("POST /api/notes/upload", admin(notesHandler.Upload))
	mux.Handle("DELETE /api/notes/{id}", admin(notesHandler.Delete))
	mux.HandleFunc("GET /uploads/{filename}", notesHandler.ServeDocument)

	// Announcements
	mux.HandleFunc("GET /api/announcements", bulletinHandler.ListAnnouncements)
	mux.Handle("POST /api/announcements", admin(bulletinHandler.CreateAnnouncement))
	mux.Handle("PUT /api/announcements/{id}", admin(bulletinHandler.UpdateAnnouncement))
	mux.Handle("DELETE /api/announcements/{id}", admin(bulletinHandler.DeleteAnnouncement))

	// Notifications
	mux.HandleFunc("GET /api/notifications", bulletinHandler.ListNotifications)
	mux.Handle("POST /api/notifications", admin(bulletinHandler.CreateNotification))
	mux.Handle("DELETE /api/notifications/{id}", admin(bulletinHandler.DeleteNotification))

	// Timetable
	mux.HandleFunc("GET /api/timetable", timetableHandler.List)
	mux.Handle("POST /api/timetable", admin(timetableHandler.Create))
	mux.Handle("PUT /api/timetable/{id}", admin(timetableHandler.Update))
	mux.Handle("DELETE /api/timetable/{id}", admin(timetableHandler.Delete))

	// Middleware chain: CORS → Recovery → Routes
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
