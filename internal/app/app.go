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

	"ticket-flow-api/internal/config"
	"ticket-flow-api/internal/database"
	"ticket-flow-api/internal/handler"
	"ticket-flow-api/internal/middleware"
	"ticket-flow-api/internal/repository"
	"ticket-flow-api/internal/router"
	"ticket-flow-api/internal/service"
	"ticket-flow-api/internal/token"
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

	if cfg.UsesDefaultSecret() {
		slog.Warn("JWT_SECRET not set; using the built-in development secret. Do not run this in production.")
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background(), cfg.DefaultTenantSlug); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	tenantRepo := repository.NewTenantRepository(db.Pool)
	slog.Info("database ready")

	engine := token.NewEngine(cfg.JWTSecret, cfg.JWTAccessTTL)
	authService := service.NewAuthService(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminPasswordHash, engine)
	tenantService := service.NewTenantService(tenantRepo, cfg.DefaultTenantSlug)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	tenantMiddleware := middleware.NewTenantMiddleware(tenantService)
	authHandler := handler.NewAuthHandler(authService)
	tenantHandler := handler.NewTenantHandler()

	appRouter := router.New(cfg, authMiddleware, tenantMiddleware, authHandler, tenantHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
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
