package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	authUseCase "github.com/caiofernandes-dev/banco-api/internal/domain/usecase/auth"
	bankUseCase "github.com/caiofernandes-dev/banco-api/internal/domain/usecase/bank"

	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/api/handler"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/api/routes"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/auth"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/database"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/logger"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/repository"
	timeProvider "github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/time"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrator := database.NewMigrator(dbManager.DB(), appLogger)
	if err := migrator.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(dbManager.DB(), appLogger)
	accountRepo := repository.NewAccountRepository(dbManager.DB(), tp, appLogger)
	credentialRepo := repository.NewCredentialRepository(dbManager.DB(), appLogger)
	uow := dbManager.CreateUnitOfWork()

	// Auth adapters
	tokens := auth.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.ExpireMinutes, tp)
	hasher := auth.NewBcryptHasher()

	// Initialize use cases
	bankService := bankUseCase.NewService(customerRepo, accountRepo, uow, tp, appLogger)
	authService := authUseCase.NewService(credentialRepo, hasher, tokens, appLogger)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	bankHandler := handler.NewBankHandler(bankService, appLogger)
	queryHandler := handler.NewQueryHandler(bankService, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, authHandler, bankHandler, queryHandler, tokens, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or BANCO_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or BANCO_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or BANCO_DB_NAME environment variable)")
	}
	if cfg.JWT.Secret == "" {
		missing = append(missing, "jwt.secret (or BANCO_JWT_SECRET environment variable)")
	}
	if cfg.JWT.ExpireMinutes <= 0 {
		missing = append(missing, "jwt.expireMinutes")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}
	return nil
}
