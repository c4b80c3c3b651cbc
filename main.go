package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/vishal-keshav/expense-track/src/config"
	"github.com/vishal-keshav/expense-track/src/handlers"
	"github.com/vishal-keshav/expense-track/src/logger"
	"github.com/vishal-keshav/expense-track/src/processor"
	"github.com/vishal-keshav/expense-track/src/services"
)

func rateLimitMiddleware(limiter *rate.Limiter, next http.Handler) http.Handler {
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

func enableCORS(allowedOrigin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == allowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == http.MethodOptions {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Expense track server starting...")

	if err := os.MkdirAll(config.Cfg.UploadDir, 0o755); err != nil {
		logger.L.Error("Failed to create upload directory", "dir", config.Cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	logger.L.Info("Initializing report cache...")
	reportCache := cache.New(config.Cfg.ReportCacheTTL, config.Cfg.CacheCleanupEvery)

	logger.L.Info("Initializing services and handlers...")
	expenseProcessor := processor.NewDailyExpenseProcessor()
	uploadService := services.NewUploadService(expenseProcessor, reportCache, config.Cfg.UploadDir)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	logger.L.Info("Configuring routes...")
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/upload", uploadHandler.HandleUpload)
	mux.HandleFunc("GET /api/report/{id}", uploadHandler.HandleGetReport)
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Expense track backend is running"})
	})

	limiter := rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst)
	finalHandler := enableCORS(config.Cfg.CORSAllowedOrigin, rateLimitMiddleware(limiter, mux))

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
	}
}
