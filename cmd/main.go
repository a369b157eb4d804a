package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-image-gallery/internal/facades"
	"github.com/sbilibin2017/gw-image-gallery/internal/handlers"
	"github.com/sbilibin2017/gw-image-gallery/internal/jwt"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/middlewares"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/repositories"
	"github.com/sbilibin2017/gw-image-gallery/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	AdminEmails    []string
	UploadDir      string
	PublicBaseURL  string
	MaxUploadBytes int64

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
}

// @title gw-image-gallery API
// @version 1.0.0
// @description Image sharing backend with moderation, likes and comments
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, if present, and
// returns the application configuration. Variables already set in the
// environment take precedence over the file.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getList := func(key string) []string {
		var out []string
		for _, v := range strings.Split(getEnv(key, ""), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.AdminEmails = getList("APP_ADMIN_EMAILS")
	cfg.UploadDir = getEnv("APP_UPLOAD_DIR", "uploads")
	cfg.PublicBaseURL = getEnv("APP_PUBLIC_BASE_URL", fmt.Sprintf("http://%s:%s/uploads", cfg.AppHost, cfg.AppPort))
	if cfg.MaxUploadBytes, err = strconv.ParseInt(getEnv("APP_MAX_UPLOAD_BYTES", "10485760"), 10, 64); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config. No brokers means events are not published.
	cfg.KafkaBrokers = getList("KAFKA_BROKERS")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "image-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, object storage and HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for image events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, image events will not be published")
	}

	// Object storage for image bytes
	objects, err := facades.NewFileObjectStorage(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("object storage init failed: %w", err)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	imageReadRepo := repositories.NewImageReadRepository(db)
	imageWriteRepo := repositories.NewImageWriteRepository(db)
	likeWriteRepo := repositories.NewLikeWriteRepository(db, middlewares.GetTxFromContext)
	likeReadRepo := repositories.NewLikeReadRepository(db)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)
	revocationRepo := repositories.NewTokenRevocationRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, revocationRepo,
		services.WithAdminEmails(cfg.AdminEmails...))
	userService := services.NewUserService(userReadRepo, userWriteRepo, imageReadRepo, objects, authService)
	imageService := services.NewImageService(imageReadRepo, imageWriteRepo, objects, kafkaWriter)
	moderationService := services.NewModerationService(imageReadRepo, imageWriteRepo, kafkaWriter)
	likeService := services.NewLikeService(likeWriteRepo, likeReadRepo)
	commentService := services.NewCommentService(commentReadRepo, commentWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	authMiddleware := middlewares.AuthMiddleware(tokens, authService)

	r.Get("/", handlers.NewRootHandler())

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))
		r.Get("/images/public", handlers.NewListPublicImagesHandler(imageService))
		r.Get("/comments/{imageId}", handlers.NewListCommentsHandler(commentService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/auth/logout", handlers.NewLogoutHandler(authService))

			r.Get("/user/me", handlers.NewGetProfileHandler(userService))
			r.Put("/user/me", handlers.NewUpdateProfileHandler(userService))
			r.Delete("/user/me", handlers.NewDeleteAccountHandler(userService))

			r.Post("/images/upload", handlers.NewUploadImageHandler(imageService, cfg.MaxUploadBytes))
			r.Get("/images/me", handlers.NewListMyImagesHandler(imageService))
			r.Patch("/images/{imageId}/visibility", handlers.NewSetVisibilityHandler(imageService))
			r.Delete("/images/{imageId}", handlers.NewDeleteImageHandler(imageService))

			r.Post("/comments/{imageId}", handlers.NewAddCommentHandler(commentService))
			r.Delete("/comments/{commentId}", handlers.NewDeleteCommentHandler(commentService))

			r.With(middlewares.TxMiddleware(db)).Post("/likes/{imageId}", handlers.NewToggleLikeHandler(likeService))
			r.Get("/likes/{imageId}", handlers.NewLikeStatusHandler(likeService))

			r.Route("/admin", func(r chi.Router) {
				r.With(middlewares.RequireCapability(models.CapModerate)).Group(func(r chi.Router) {
					r.Get("/images", handlers.NewModerationQueueHandler(moderationService))
					r.Patch("/images/{imageId}/approve", handlers.NewApproveImageHandler(moderationService))
					r.Patch("/images/{imageId}/reject", handlers.NewRejectImageHandler(moderationService))
				})
				r.With(middlewares.RequireCapability(models.CapManageUsers)).Get("/users", handlers.NewListUsersHandler(userService))
			})
		})
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
