package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zestie-cloud/pawmatch/internal/config"
	dbRedis "github.com/zestie-cloud/pawmatch/internal/db/redis"
	logpkg "github.com/zestie-cloud/pawmatch/internal/logger"
	"github.com/zestie-cloud/pawmatch/internal/metrics"
	catalogrepo "github.com/zestie-cloud/pawmatch/internal/repository/catalog"
	usagerepo "github.com/zestie-cloud/pawmatch/internal/repository/usage"
	viewsrepo "github.com/zestie-cloud/pawmatch/internal/repository/views"
	chiTransport "github.com/zestie-cloud/pawmatch/internal/transport/chi"
	healthuc "github.com/zestie-cloud/pawmatch/internal/usecase/health"
	matcheruc "github.com/zestie-cloud/pawmatch/internal/usecase/matcher"
	usageuc "github.com/zestie-cloud/pawmatch/internal/usecase/usage"
	"github.com/zestie-cloud/pawmatch/internal/version"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the pawmatch API server",
		Run:   runServe,
	}
	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting pawmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	// Register engine metrics explicitly (no init())
	metrics.RegisterMatchMetrics()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	holder := catalogrepo.NewHolder()

	var (
		usageSvc  *usageuc.Service
		healthSvc *healthuc.Service
	)

	switch cfg.Catalog.Source {
	case "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to database")

		loader := catalogrepo.NewLoader(store, cfg.Catalog.FeedKey, logger)
		refresher := catalogrepo.NewRefresher(
			loader, holder, time.Duration(cfg.Catalog.RefreshSec)*time.Second, logger,
		)
		go refresher.Run(ctx)

		usageSvc = usageuc.New(
			usagerepo.New(store, cfg.Storage.KeyPrefix),
			viewsrepo.New(store, cfg.Storage.KeyPrefix),
		)
		healthSvc = healthuc.New(store, holder)

	case "file":
		records, err := catalogrepo.LoadFile(cfg.Catalog.FeedPath, logger)
		if err != nil {
			logger.Fatal("Failed to load catalog file", zap.Error(err))
		}
		holder.Swap(records)
		logger.Info("Catalog loaded from file",
			zap.String("path", cfg.Catalog.FeedPath),
			zap.Int("dogs", len(records)),
		)
		healthSvc = healthuc.New(nil, holder)

	default:
		logger.Fatal("Unknown catalog source", zap.String("source", cfg.Catalog.Source))
	}

	matchSvc := matcheruc.New(holder, matcheruc.Config{
		BestThreshold: cfg.Matching.BestThreshold,
		BestCap:       cfg.Matching.BestCap,
		ExploreCap:    cfg.Matching.ExploreCap,
		SourceCap:     cfg.Matching.SourceCap,
		TopReasons:    cfg.Matching.TopReasons,
		MinResults:    cfg.Matching.MinResults,
		NeutralScore:  cfg.Matching.NeutralScore,
	})

	server := chiTransport.NewServer(matchSvc, usageSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
