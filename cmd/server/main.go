package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"Devlife/internal/api/middleware"
	"Devlife/internal/api/routes"
	"Devlife/internal/core/events"
	"Devlife/internal/core/identity"
	"Devlife/internal/db/mongodb"
)

// identityCacheSize bounds the in-process profile cache
const identityCacheSize = 1024

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "devlife"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	client, err := mongodb.Connect(context.Background(), mongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from mongodb", "error", err)
		}
	}()

	logger.Info("connected to mongodb", "db", dbName)

	db := client.Database(dbName)

	// Initialize repositories and services
	eventRepo := mongodb.NewEventRepository(db)

	resolver, err := identity.NewCachedResolver(mongodb.NewUserDirectory(db), identityCacheSize)
	if err != nil {
		log.Fatal("Failed to create identity cache: ", err)
	}

	eventService := events.NewEventService(eventRepo, resolver, logger)
	engagementService := events.NewEngagementService(eventRepo, resolver, logger)

	authMiddleware := middleware.NewAuthMiddleware([]byte(jwtSecret), logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Rate limiting: 100 requests per minute per IP
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	routes.RegisterEventRoutes(r, eventService, authMiddleware)
	routes.RegisterEngagementRoutes(r, engagementService, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health response", "error", err)
		}
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("devlife events server starting", "port", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
