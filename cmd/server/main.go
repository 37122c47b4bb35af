package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"dayboard/docs" // swagger docs

	"dayboard/internal/auth"
	"dayboard/internal/cache"
	"dayboard/internal/config"
	"dayboard/internal/db"
	"dayboard/internal/handler"
	"dayboard/internal/logger"
	"dayboard/internal/metrics"
	"dayboard/internal/repository"
	"dayboard/internal/router"
	"dayboard/internal/service"
)

// @title Dayboard API
// @version 1.0
// @description Personal productivity API: todos, daily goals, notes, habits and dashboard stats.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.SetupDefault(os.Stdout, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	if err := db.RunMigrations(cfg.MySQLDSN, cfg.ResetDB); err != nil {
		return err
	}
	if cfg.ResetDB {
		log.Warn("RESET_DB=true, schema dropped and recreated")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "dayboard:")
	defer cacheClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if !cacheClient.Ping(pingCtx) {
		log.Warn("redis unavailable, continuing without cache", slog.String("addr", cfg.RedisAddr))
	}
	cancelPing()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)
	goalRepo := repository.NewGoalRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)
	habitRepo := repository.NewHabitRepository(gormDB)
	statsRepo := repository.NewStatsRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, jwtService, cacheClient)
	todoService := service.NewTodoService(todoRepo)
	goalService := service.NewGoalService(goalRepo)
	noteService := service.NewNoteService(noteRepo)
	habitService := service.NewHabitService(habitRepo)
	statsService := service.NewStatsService(statsRepo)

	e := echo.New()
	e.HidePort = true
	router.Register(e, cfg, router.Options{
		Logger:         log,
		Verifier:       authService,
		Metrics:        collector,
		MetricsHandler: metrics.Handler(reg),
	}, router.Handlers{
		Auth:   handler.NewAuthHandler(authService, collector),
		Todo:   handler.NewTodoHandler(todoService),
		Goal:   handler.NewGoalHandler(goalService),
		Note:   handler.NewNoteHandler(noteService),
		Habit:  handler.NewHabitHandler(habitService),
		Stats:  handler.NewStatsHandler(statsService),
		Health: handler.NewHealthHandler(func(ctx context.Context) error { return db.Ping(ctx, gormDB) }),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("API server starting",
			slog.String("addr", ":"+cfg.ServerPort),
			slog.String("swagger", swaggerURL(cfg)),
		)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server start: %w", err)
		}
		return nil
	case <-stop:
	}
	log.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("API server stopped gracefully")
	return nil
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
