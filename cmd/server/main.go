package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/cloudcast-service/config"
	"ulascansenturk/cloudcast-service/internal/api/v1/handlers"
	"ulascansenturk/cloudcast-service/internal/db/forecastquery"
	"ulascansenturk/cloudcast-service/internal/providers"
	"ulascansenturk/cloudcast-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var forecastQueryRepo forecastquery.Repository
	if conf.DatabaseEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		forecastQueryRepo = forecastquery.NewRepository(db)
	} else {
		log.Warn().Msg("DATABASE_HOST not set, forecast query log disabled")
	}

	forecastProvider, err := newForecastProvider(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create forecast client")
	}

	aggregator := service.NewForecastRequestAggregator(
		forecastProvider,
		forecastQueryRepo,
		conf.MaxQueueSize,
		conf.MaxWaitTime,
	)
	forecastService := service.NewForecastService(aggregator)

	router := handlers.NewRouter(
		handlers.NewForecastHandler(forecastService, conf.HTTPTimeoutDuration()),
		handlers.NewQueryHandler(forecastQueryRepo),
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: conf.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", handlers.RequestIDHeader},
		ExposedHeaders: []string{handlers.RequestIDHeader},
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		aggregator.Shutdown()

		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func newForecastProvider(conf *config.Config) (providers.ForecastProvider, error) {
	client, err := providers.NewForecastClient(
		conf.ForecastAPIBaseURL,
		providers.WithTimeout(conf.ForecastAPITimeout),
	)
	if err != nil {
		return nil, err
	}

	if conf.ForecastAPIRateLimit <= 0 {
		return client, nil
	}

	return providers.NewRateLimitedForecastProvider(client, conf.ForecastAPIRateLimit, conf.ForecastAPIRateBurst), nil
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&forecastquery.ForecastQuery{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
