package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/username/propfolio/backend/src/cache"
	"github.com/username/propfolio/backend/src/config"
	"github.com/username/propfolio/backend/src/database"
	"github.com/username/propfolio/backend/src/handlers"
	"github.com/username/propfolio/backend/src/logger"
	"github.com/username/propfolio/backend/src/processors"
	"github.com/username/propfolio/backend/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			config.Cfg.CORSAllowedOrigin: true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func newResultCache() cache.Cache {
	if config.Cfg.CacheBackend == "redis" {
		logger.L.Info("Using redis result cache", "addr", config.Cfg.RedisAddr)
		return cache.NewRedisCache(config.Cfg.RedisAddr, config.Cfg.CacheExpiration)
	}
	logger.L.Info("Using in-memory result cache",
		"expiration", config.Cfg.CacheExpiration,
		"cleanupInterval", config.Cfg.CacheCleanupInterval)
	return cache.NewMemoryCache(config.Cfg.CacheExpiration, config.Cfg.CacheCleanupInterval)
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Propfolio backend server starting...")

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	logger.L.Info("Database initialized successfully.")

	logger.L.Info("Initializing result cache...")
	resultCache := newResultCache()
	logger.L.Info("Result cache initialized.")

	logger.L.Info("Initializing services and handlers...")
	evaluationProcessor := processors.NewEvaluationProcessor()
	advancedProcessor := processors.NewAdvancedProcessor()
	roiProcessor := processors.NewROIProcessor()
	loanProcessor := processors.NewLoanProcessor()

	evaluationService := services.NewEvaluationService(evaluationProcessor, advancedProcessor, resultCache)

	evaluationHandler := handlers.NewEvaluationHandler(evaluationService)
	roiHandler := handlers.NewROIHandler(roiProcessor)
	loanHandler := handlers.NewLoanHandler(loanProcessor)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("POST /api/evaluations", evaluationHandler.HandleEvaluate)
	apiRouter.HandleFunc("GET /api/evaluations/list", evaluationHandler.HandleListEvaluations)
	apiRouter.HandleFunc("DELETE /api/evaluations/all", evaluationHandler.HandleDeleteAllEvaluations)
	apiRouter.HandleFunc("GET /api/evaluations/{id}", evaluationHandler.HandleGetEvaluation)
	apiRouter.HandleFunc("DELETE /api/evaluations/{id}", evaluationHandler.HandleDeleteEvaluation)
	apiRouter.HandleFunc("POST /api/roi/metrics", roiHandler.HandleCalculateROI)
	apiRouter.HandleFunc("POST /api/loans/payment-schedule", loanHandler.HandleGetPaymentSchedule)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "PROPFOLIO Backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
