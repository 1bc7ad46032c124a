package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"podkeeper/internal/config"
	"podkeeper/internal/database"
	"podkeeper/internal/handler"
	"podkeeper/internal/mailer"
	"podkeeper/internal/middleware"
	"podkeeper/internal/pdf"
	"podkeeper/internal/repository"
	"podkeeper/internal/router"
	"podkeeper/internal/service"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	recordRepo := repository.NewRecordRepository(pool)
	slog.Info("database ready")

	authService, err := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := middleware.NewAuthMiddleware(authService)
	authHandler := handler.NewAuthHandler(authService)

	recordService := service.NewRecordService(recordRepo)
	renderer := pdf.NewRenderer()
	notifier := mailer.New(cfg.SMTP)
	if !cfg.SMTP.Configured() {
		slog.Warn("smtp relay not configured; send-email will always fail")
	}
	recordHandler := handler.NewRecordHandler(recordService, renderer, notifier)

	uploadHandler, err := handler.NewUploadHandler(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize upload handler: %w", err)
	}

	appRouter := router.New(cfg, authMiddleware, authHandler, recordHandler, uploadHandler)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			func() {
				db.Close()
			},
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
