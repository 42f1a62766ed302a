package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Murmur/internal/api/middleware"
	"Murmur/internal/api/routes"
	"Murmur/internal/config"
	"Murmur/internal/core/comments"
	"Murmur/internal/core/notifications"
	"Murmur/internal/core/posts"
	"Murmur/internal/core/reactions"
	"Murmur/internal/db/migrations"
	postgresRepo "Murmur/internal/db/postgres"
	"Murmur/internal/events/kafka"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		log.Fatal("Failed to read configuration:", err)
	}

	logger := newLogger(cfg.Logging.Level)
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.Storage.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations from the embedded filesystem
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	// Notification sink: Kafka when brokers are configured, no-op otherwise
	var sink notifications.Sink = notifications.NoopSink{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer publisher.Close()
		sink = publisher
		logger.Info("notification publisher enabled", "topic", cfg.Kafka.Topic)
	} else {
		logger.Warn("no kafka brokers configured, notifications disabled")
	}

	// Initialize repositories and services
	store := postgresRepo.NewStore(db)
	postRepo := postgresRepo.NewPostRepository(store)
	commentRepo := postgresRepo.NewCommentRepository(store)
	reactionRepo := postgresRepo.NewReactionRepository(store)

	postService := posts.NewPostService(postRepo, sink, logger)
	commentService := comments.NewCommentService(commentRepo, postRepo, store, sink, logger)
	reactionService := reactions.NewReactionService(reactionRepo, postRepo, commentRepo, store, sink, logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Rate limiting: 100 requests per minute per IP
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.Secret)

	routes.RegisterPostRoutes(r, postService, authMiddleware)
	routes.RegisterCommentRoutes(r, commentService, authMiddleware)
	routes.RegisterReactionRoutes(r, reactionService, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("Murmur starting on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
