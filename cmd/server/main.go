package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"github.com/redsight/redsight/internal/analytics"
	"github.com/redsight/redsight/internal/cache"
	"github.com/redsight/redsight/internal/config"
	"github.com/redsight/redsight/internal/handlers"
	"github.com/redsight/redsight/internal/logger"
	"github.com/redsight/redsight/internal/middleware"
	"github.com/redsight/redsight/internal/services/reddit"
	"github.com/redsight/redsight/internal/telemetry"
)

// version is set at build time via -ldflags
var (
	version = "dev"
	commit  = ""
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync(zapLogger)
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("reddit_base_url", cfg.RedditBaseURL),
		zap.String("analysis_timezone", cfg.AnalysisTimezone),
		zap.Bool("cache_enabled", cfg.RedisURL != ""),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// OpenTelemetry is optional; a broken collector endpoint must not keep
	// the server from starting
	var tracerProvider interface{ Shutdown(context.Context) error }
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), "redsight-api", cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				tracerProvider = tp
				zapLogger.Info("otel_tracer_initialized",
					zap.String("endpoint", cfg.OTELEndpoint),
				)
				defer func() {
					shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer shutdownCancel()
					if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	// Upstream Reddit client
	redditClient := reddit.NewClient(reddit.ClientConfig{
		BaseURL:           cfg.RedditBaseURL,
		UserAgent:         cfg.RedditUserAgent,
		FetchLimit:        cfg.RedditFetchLimit,
		Timeout:           cfg.RedditTimeout,
		RequestsPerSecond: cfg.RedditRatePerSec,
	}, zapLogger)

	// Wrap with the Redis cache when configured. Without Redis the server
	// still works, every request just hits Reddit directly.
	var provider reddit.Provider = redditClient
	var activityCache *cache.ActivityCache
	var rateLimitMW func(http.Handler) http.Handler

	if cfg.RedisURL != "" {
		activityCache, err = cache.NewActivityCache(redditClient, cfg.RedisURL, cfg.CacheTTL, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed_to_connect_to_redis", zap.Error(err))
		}
		defer func() {
			if err := activityCache.Close(); err != nil {
				zapLogger.Warn("failed_to_close_redis_connection", zap.Error(err))
			}
		}()
		provider = activityCache
		zapLogger.Info("connected_to_redis", zap.Duration("cache_ttl", cfg.CacheTTL))

		redisConn, err := middleware.NewRedisConn(cfg.RedisURL)
		if err != nil {
			zapLogger.Fatal("failed_to_connect_to_redis", zap.Error(err))
		}
		defer func() {
			if err := redisConn.Close(); err != nil {
				zapLogger.Warn("failed_to_close_redis_connection", zap.Error(err))
			}
		}()
		rateLimitMW, err = middleware.RateLimit(redisConn, cfg.RateLimit)
		if err != nil {
			zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
		}
	} else {
		rateLimitMW, err = middleware.RateLimitInMemory(cfg.RateLimit)
		if err != nil {
			zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
		}
		zapLogger.Info("rate_limiting_in_memory")
	}

	analyzer := analytics.NewAnalyzer(cfg.Location())

	// Handlers
	analysisHandler := handlers.NewAnalysisHandler(provider, analyzer, zapLogger)

	// Avoid handing a typed nil to the interface-valued health checker
	var cachePinger handlers.Pinger
	if activityCache != nil {
		cachePinger = activityCache
	}
	healthChecker := handlers.NewHealthChecker(cachePinger)
	versionHandler := handlers.NewVersionHandler(version, commit)

	// Router and middleware. gorilla/mux runs middleware in registration
	// order, so the first Use is the outermost wrapper.
	r := mux.NewRouter()

	if cfg.OTELEnabled && tracerProvider != nil {
		r.Use(otelmux.Middleware("redsight-api"))
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORSFromEnv(cfg.FrontendURL))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ErrorHandler(zapLogger))
	r.Use(middleware.Logging(zapLogger))

	// Public routes, no rate limiting for health checks
	r.HandleFunc("/healthz", healthChecker.HealthCheck).Methods("GET")
	r.HandleFunc("/version", versionHandler.Version).Methods("GET")

	openAPIPath := filepath.Join("api", "openapi", "openapi.yaml")
	openAPIHandler := handlers.NewOpenAPIHandler(openAPIPath)
	openAPIHandler.RegisterRoutes(r)

	// API v1 routes, rate limited per client IP
	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(rateLimitMW)
	analysisHandler.RegisterRoutes(apiRouter)

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting",
			zap.String("port", cfg.ServerPort),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}
