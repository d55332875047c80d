package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-private-chat/docs"
	"github.com/sbilibin2017/gw-private-chat/internal/handlers"
	"github.com/sbilibin2017/gw-private-chat/internal/idgen"
	"github.com/sbilibin2017/gw-private-chat/internal/logger"
	"github.com/sbilibin2017/gw-private-chat/internal/middlewares"
	"github.com/sbilibin2017/gw-private-chat/internal/password"
	"github.com/sbilibin2017/gw-private-chat/internal/presence"
	"github.com/sbilibin2017/gw-private-chat/internal/repositories"
	"github.com/sbilibin2017/gw-private-chat/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-private-chat API
// @version 1.0.0
// @description Chat backend with accounts, presence and private 1:1 conversations
// @host localhost:7860
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logFormat,
		dataDir, publicDir, passwordHash,
		presenceBackend, presenceTTL,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		rateLimitPerMinute, rateLimitBurst,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logFormat,
		dataDir, publicDir, passwordHash,
		presenceBackend, presenceTTL,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		rateLimitPerMinute, rateLimitBurst,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, storage, presence, Kafka and rate limit configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logFormat string,
	dataDir, publicDir, passwordHash string,
	presenceBackend string, presenceTTLSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	rateLimitPerMinute, rateLimitBurst int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "")
	appPort = getEnv("PORT", "7860")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFormat = getEnv("APP_LOG_FORMAT", "json")

	// Storage config
	dataDir = getEnv("DATA_DIR", ".")
	publicDir = getEnv("PUBLIC_DIR", "public")
	passwordHash = getEnv("PASSWORD_HASH", "sha256")

	// Presence config
	presenceBackend = getEnv("PRESENCE_BACKEND", "memory")
	if presenceTTLSecond, err = strconv.Atoi(getEnv("PRESENCE_TTL_SECOND", "120")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "private-messages")

	// Rate limit config
	if rateLimitPerMinute, err = strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "60")); err != nil {
		return
	}
	if rateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return
	}

	return
}

// run initializes the logger, file stores, presence backend, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, logFormat string,
	dataDir, publicDir, passwordHash string,
	presenceBackend string, presenceTTLSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	rateLimitPerMinute, rateLimitBurst int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	hasher, err := password.ByName(passwordHash)
	if err != nil {
		return err
	}

	// Initialize file stores
	ids := idgen.New()

	userRepo, err := repositories.NewUserFileRepository(filepath.Join(dataDir, repositories.UsersFileName))
	if err != nil {
		return fmt.Errorf("init user store: %w", err)
	}
	conversationRepo, err := repositories.NewConversationFileRepository(
		filepath.Join(dataDir, repositories.ConversationsFileName),
		repositories.DefaultMessageLimit,
		ids,
	)
	if err != nil {
		return fmt.Errorf("init conversation store: %w", err)
	}
	pictureRepo, err := repositories.NewPictureFileRepository(filepath.Join(publicDir, "uploads"))
	if err != nil {
		return fmt.Errorf("init picture store: %w", err)
	}

	// Initialize presence tracker
	window := time.Duration(presenceTTLSecond) * time.Second
	var tracker services.PresenceTracker
	switch presenceBackend {
	case "", "memory":
		tracker = presence.NewMemoryTracker(window)
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		tracker = presence.NewRedisTracker(rdb, presence.DefaultRedisKey, window)
	default:
		return fmt.Errorf("unknown presence backend %q", presenceBackend)
	}
	logger.Log.Infow("presence tracker ready", "backend", presenceBackend, "window", window)

	// Initialize Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(kafkaBrokers...),
			Topic:        kafkaTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("publishing message events", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Initialize services
	accountService := services.NewAccountService(userRepo, pictureRepo, tracker, hasher, ids)
	messagingService := services.NewMessagingService(conversationRepo, tracker, kafkaWriter)

	limiter := middlewares.NewLimiterStore(rateLimitPerMinute, rateLimitBurst, time.Minute)
	defer limiter.Stop()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(limiter))
			r.Post("/login", handlers.NewLoginHandler(accountService))
			r.Post("/register", handlers.NewRegisterHandler(accountService))
		})

		r.Get("/users", handlers.NewListUsersHandler(accountService))
		r.Get("/users/online", handlers.NewListOnlineUsersHandler(accountService))
		r.Post("/users/status", handlers.NewUpdateStatusHandler(messagingService))
		r.Post("/users/profile-picture", handlers.NewUploadProfilePictureHandler(accountService))
		r.Put("/users/profile", handlers.NewUpdateProfileHandler(accountService))
		r.Put("/users/password", handlers.NewChangePasswordHandler(accountService))
		r.Delete("/users/{userId}", handlers.NewDeleteAccountHandler(accountService))

		r.Get("/chat/private", handlers.NewGetPrivateChatHandler(messagingService))
		r.Post("/chat/private", handlers.NewSendPrivateMessageHandler(messagingService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Handle("/*", http.FileServer(http.Dir(publicDir)))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
