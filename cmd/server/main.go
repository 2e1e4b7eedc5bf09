package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bank-assistant/internal/config"
	"bank-assistant/internal/database"
	"bank-assistant/internal/handlers"
	custommw "bank-assistant/internal/middleware"
	"bank-assistant/internal/models"
	"bank-assistant/internal/repositories"
	"bank-assistant/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/genai"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The ledger and identity stores are independent deployments. Each gets
	// its own pool so an outage on one side never blocks the other.
	ledgerDB, err := database.Initialize("ledger", &cfg.Ledger, &models.Transaction{})
	if err != nil {
		log.Printf("Failed to initialize ledger store: %v", err)
		os.Exit(1)
	}
	defer ledgerDB.Close()

	identityDB, err := database.Initialize("identity", &cfg.Identity, &models.User{})
	if err != nil {
		log.Printf("Failed to initialize identity store: %v", err)
		os.Exit(1)
	}
	defer identityDB.Close()

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.Assistant.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: cfg.Assistant.APIVersion},
	})
	if err != nil {
		log.Printf("Failed to create reasoning-service client: %v", err)
		os.Exit(1)
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	transactionRepo := repositories.NewTransactionRepository(ledgerDB.DB)
	userRepo := repositories.NewUserRepository(identityDB.DB)

	fetcher := services.NewTransactionFetcher(ledgerDB, identityDB, transactionRepo, userRepo, metrics)
	summarizer := services.NewSummaryService()
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	assistant := services.NewAssistantService(
		genaiClient.Models,
		fetcher,
		summarizer,
		breaker,
		metrics,
		cfg.Assistant.Model,
	)

	chatHandler := handlers.NewChatHandler(assistant, metrics)
	healthHandler := handlers.NewHealthCheckHandler(ledgerDB, identityDB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	e.GET("/hello", healthHandler.Hello)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	rateLimiter := custommw.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	)
	e.POST("/chat", chatHandler.Chat, rateLimiter)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionRepo, userRepo)
		e.POST("/dev/accounts/:id/seed", devHandler.SeedAccount)
		slog.Info("Development seed endpoint registered")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server starting",
			"addr", srv.Addr,
			"environment", cfg.Server.Environment,
			"model", cfg.Assistant.Model,
		)
		if err := e.StartServer(srv); err != nil && err != http.ErrServerClosed {
			log.Printf("Server failed to start: %v", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	slog.Info("Server stopped gracefully")
}

// setupLogger configures the process-wide structured logger. Production runs
// emit JSON for log aggregation; everything else stays human-readable.
func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
