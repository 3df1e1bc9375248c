package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/pkg/config"
	"github.com/spendwise/spendwise/internal/pkg/database"
	"github.com/spendwise/spendwise/internal/pkg/health"
	"github.com/spendwise/spendwise/internal/pkg/logger"
	"github.com/spendwise/spendwise/internal/pkg/middleware"
	nsqpkg "github.com/spendwise/spendwise/internal/pkg/nsq"
	"github.com/spendwise/spendwise/internal/pkg/server"
	ledgerGateway "github.com/spendwise/spendwise/services/ledger/gateway"
	ledgerHandler "github.com/spendwise/spendwise/services/ledger/handler"
	ledgerRepository "github.com/spendwise/spendwise/services/ledger/repository"
	ledgerUsecase "github.com/spendwise/spendwise/services/ledger/usecase"
	userHandler "github.com/spendwise/spendwise/services/users/handler"
	userRepository "github.com/spendwise/spendwise/services/users/repository"
	userUsecase "github.com/spendwise/spendwise/services/users/usecase"
)

func main() {
	appName := "spendwise-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	// Money amounts serialize as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	if err := database.RunMigrations(postgresClient.GetDB()); err != nil {
		logger.Fatal("Failed to run migrations", logger.Err(err))
	}

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// NSQ producer for ledger change events, optional
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer nsqProducer.Stop()
	}

	// Ledger service wiring
	ledgerRepo := ledgerRepository.NewLedgerRepo(configs, postgresClient.GetDB(), redisClient)
	ledgerGW := ledgerGateway.NewLedgerGW(nsqProducer)
	ledgerUC := ledgerUsecase.NewLedgerUC(ledgerRepo, ledgerGW, configs)
	ledgerH := ledgerHandler.NewHandler(ledgerUC, configs)

	// Users service wiring
	userRepo := userRepository.NewUserRepo(configs, postgresClient.GetDB())
	userUC := userUsecase.NewUserUC(userRepo, configs)
	userH := userHandler.NewHandler(userUC, configs, redisClient)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(middleware.DefaultPanicRecoveryConfig(zapLogger)))

	health.RegisterHealthEndpoints(e, appName)

	userH.RegisterRoutes(e)
	ledgerH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server shutdown failed", logger.Err(err))
	}
}
