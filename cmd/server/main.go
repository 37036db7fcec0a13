package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/consciouswork/backend/internal/config"
	"github.com/consciouswork/backend/internal/database"
	"github.com/consciouswork/backend/internal/handlers"
	"github.com/consciouswork/backend/internal/middleware"
	"github.com/consciouswork/backend/internal/routes"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB. Missing or bad configuration degrades rather than
	// crashing: writes fail per request and reads come back empty.
	log.Printf("Connecting to MongoDB...")
	store := database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	defer store.Disconnect()

	// Optional Redis for rate limiting
	var redisClient *redis.Client
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		redisClient = database.ConnectRedis(cfg.RedisURI)
	} else {
		log.Println("REDIS_URI not set. Rate limiting disabled")
	}

	h := handlers.New(store, cfg)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Fully open CORS: any origin, any method, any header, credentials allowed
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(redisClient))

	// Health check (plain text, for platform probes)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, h)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /")
	log.Println("  GET  /health")
	log.Println("  GET  /test")
	log.Println("  GET  /api/hello")
	log.Println("  POST /api/intentions")
	log.Println("  GET  /api/intentions")
	log.Println("  POST /api/affirmations")
	log.Println("  GET  /api/affirmations")
	log.Println("  POST /api/sessions")
	log.Println("  GET  /api/sessions")
	log.Println("  GET  /api/summary")
	log.Println("  GET  /schema")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Consciousness Work backend running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
