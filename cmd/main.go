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

	"github.com/okhuysen/peturnidad-api/internal/facades"
	"github.com/okhuysen/peturnidad-api/internal/handlers"
	"github.com/okhuysen/peturnidad-api/internal/jwt"
	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/middlewares"
	"github.com/okhuysen/peturnidad-api/internal/repositories"
	"github.com/okhuysen/peturnidad-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title peturnidad API
// @version 1.0.0
// @description Community lost-and-found pet service: accounts, pet registry and colonia emergency alerts
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		feedCacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		pushURL, pushTimeoutSecond,
		mediaURL, mediaFolder, mediaTimeoutSecond,
		jwtSecret, jwtExpSecond,
		cleanupRetentionHour,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		feedCacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		pushURL, pushTimeoutSecond,
		mediaURL, mediaFolder, mediaTimeoutSecond,
		jwtSecret, jwtExpSecond,
		cleanupRetentionHour,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, gateway, JWT and maintenance
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	feedCacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	pushURL string, pushTimeoutSecond int,
	mediaURL, mediaFolder string, mediaTimeoutSecond int,
	jwtSecret string, jwtExpSecond int,
	cleanupRetentionHour int,
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
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "peturnidad")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
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
	if feedCacheTTLSecond, err = strconv.Atoi(getEnv("FEED_CACHE_TTL_SECOND", "30")); err != nil {
		return
	}

	// Kafka config (empty brokers disables event publishing)
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "alert-events")

	// Push gateway config
	pushURL = getEnv("PUSH_GATEWAY_URL", "https://exp.host/--/api/v2/push/send")
	if pushTimeoutSecond, err = strconv.Atoi(getEnv("PUSH_TIMEOUT_SECOND", "5")); err != nil {
		return
	}

	// Media host config
	mediaURL = getEnv("MEDIA_UPLOAD_URL", "")
	mediaFolder = getEnv("MEDIA_FOLDER", "peturnidad")
	if mediaTimeoutSecond, err = strconv.Atoi(getEnv("MEDIA_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// JWT config
	jwtSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Maintenance config
	if cleanupRetentionHour, err = strconv.Atoi(getEnv("CLEANUP_RETENTION_HOUR", "24")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka and gateway facades,
// wires repositories, services and handlers, and serves HTTP with graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	feedCacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	pushURL string, pushTimeoutSecond int,
	mediaURL, mediaFolder string, mediaTimeoutSecond int,
	jwtSecret string, jwtExpSecond int,
	cleanupRetentionHour int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for alert-lifecycle events, optional
	var alertEvents services.KafkaWriter
	if kafkaBrokers != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		alertEvents = kw
		logger.Log.Infof("Kafka event publishing enabled, topic %s", kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, alert events disabled")
	}

	// External gateway facades
	pushGateway := facades.NewPushGatewayFacade(pushURL, time.Duration(pushTimeoutSecond)*time.Second)
	mediaHost := facades.NewMediaHostFacade(mediaURL, mediaFolder, time.Duration(mediaTimeoutSecond)*time.Second)

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecret),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, middlewares.GetTxFromContext)
	petReadRepo := repositories.NewPetReadRepository(db)
	petWriteRepo := repositories.NewPetWriteRepository(db, middlewares.GetTxFromContext)
	alertReadRepo := repositories.NewEmergencyAlertReadRepository(db)
	alertWriteRepo := repositories.NewEmergencyAlertWriteRepository(db, middlewares.GetTxFromContext)
	foundReadRepo := repositories.NewFoundPetReadRepository(db)
	foundWriteRepo := repositories.NewFoundPetWriteRepository(db, middlewares.GetTxFromContext)
	feedCache := repositories.NewLostPetsCacheRepository(rdb, time.Duration(feedCacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	profileService := services.NewProfileService(userReadRepo, profileReadRepo, profileWriteRepo, userWriteRepo)
	petsService := services.NewPetsService(userReadRepo, petReadRepo, petWriteRepo)
	alertsService := services.NewAlertsService(userReadRepo, profileReadRepo, userReadRepo,
		alertReadRepo, alertWriteRepo, pushGateway, feedCache, alertEvents)
	foundService := services.NewFoundService(foundReadRepo, foundWriteRepo, alertEvents)
	maintenanceService := services.NewMaintenanceService(userWriteRepo, time.Duration(cleanupRetentionHour)*time.Hour)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	registerExtendedHandler := handlers.NewRegisterExtendedHandler(profileService)
	userProfileHandler := handlers.NewUserProfileHandler(profileService)
	profilePictureHandler := handlers.NewProfilePictureHandler(profileService)
	savePushTokenHandler := handlers.NewSavePushTokenHandler(profileService)
	petRegisterHandler := handlers.NewPetRegisterHandler(petsService)
	petsListHandler := handlers.NewPetsListHandler(petsService)
	sendEmergencyHandler := handlers.NewSendEmergencyHandler(alertsService)
	lostPetsHandler := handlers.NewLostPetsHandler(alertsService)
	myAlertsHandler := handlers.NewMyAlertsHandler(alertsService)
	deleteAlertHandler := handlers.NewDeleteEmergencyAlertHandler(alertsService)
	foundPetHandler := handlers.NewFoundPetHandler(foundService)
	foundPetsHandler := handlers.NewFoundPetsHandler(foundService)
	uploadImageHandler := handlers.NewUploadImageHandler(mediaHost)
	cleanupHandler := handlers.NewCleanupHandler(maintenanceService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		// Profile completion runs inside a per-request transaction.
		r.With(middlewares.TxMiddleware(db)).Post("/register-extended", registerExtendedHandler)
		r.Get("/user-profile", userProfileHandler)
		r.Put("/user-profile-picture", profilePictureHandler)
		r.Put("/save-push-token", savePushTokenHandler)

		r.Post("/pet", petRegisterHandler)
		r.Get("/pets", petsListHandler)

		r.Post("/send-emergency", sendEmergencyHandler)
		r.Get("/lost-pets", lostPetsHandler)
		r.Get("/my-alerts", myAlertsHandler)
		r.Delete("/emergency-alert", deleteAlertHandler)

		r.Post("/i-found-a-pet", foundPetHandler)
		r.Get("/found-pets/{owner_id}", foundPetsHandler)

		r.Post("/upload-image", uploadImageHandler)

		r.With(middlewares.AuthMiddleware(jwtSvc)).Delete("/cleanup-incomplete-users", cleanupHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
