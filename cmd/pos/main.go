package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/shoplite/pos-backend/docs"
	"github.com/shoplite/pos-backend/internal/checkout"
	checkouthttp "github.com/shoplite/pos-backend/internal/checkout/delivery/http"
	checkoutdomain "github.com/shoplite/pos-backend/internal/checkout/domain"
	"github.com/shoplite/pos-backend/internal/receipt"
	"github.com/shoplite/pos-backend/internal/sales"
	salesrecorder "github.com/shoplite/pos-backend/internal/sales/recorder"
	salesrepo "github.com/shoplite/pos-backend/internal/sales/repository"
	"github.com/shoplite/pos-backend/internal/server"
	"github.com/shoplite/pos-backend/internal/stock"
	stockdomain "github.com/shoplite/pos-backend/internal/stock/domain"
	"github.com/shoplite/pos-backend/internal/user"
	userdomain "github.com/shoplite/pos-backend/internal/user/domain"
	"github.com/shoplite/pos-backend/kafka"
	"github.com/shoplite/pos-backend/pkg/config"
	"github.com/shoplite/pos-backend/pkg/database"
	"github.com/shoplite/pos-backend/pkg/logger"
	"github.com/shoplite/pos-backend/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting pos backend")

	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	dbConfig := database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&stockdomain.StockItem{}, &userdomain.User{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Raw connection for the bill archive, same database
	archiveDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open bill archive connection")
	}
	defer archiveDB.Close()

	billArchive := salesrepo.NewPostgresBillArchive(archiveDB)
	if err := billArchive.Migrate(context.Background()); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate bills table")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	csvRecorder := salesrecorder.NewCSVRecorder(cfg.SalesLogPath)

	renderer, err := receipt.NewFileRenderer(cfg.ReceiptDir)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize receipt renderer")
	}

	var events checkoutdomain.SalePublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer publisher.Close()
		events = publisher
	}

	stockHandler, err := stock.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize stock handler")
	}
	checkoutHandler, err := checkout.InitializeHTTPHandler(db, csvRecorder, billArchive, renderer, events)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize checkout handler")
	}
	salesHandler, err := sales.InitializeHTTPHandler(csvRecorder)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize sales handler")
	}
	userHandler, err := user.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}

	router := mux.NewRouter()

	mwConfig := server.DefaultMiddlewareConfig()
	mwConfig.TimeoutDuration = cfg.RequestTimeout
	server.RegisterMiddlewares(router, mwConfig)

	stockHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)
	salesHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)

	stockHandler.RegisterHealthCheck(router, sqlDB)
	checkouthttp.RegisterSwaggerDocs(router, httpSwagger.Handler())
	router.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: server.SetupCORS(mwConfig)(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}
