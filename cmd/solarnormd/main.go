package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/sunslope/solarnorm/internal/fleet"
	"github.com/sunslope/solarnorm/internal/norm"
	"github.com/sunslope/solarnorm/internal/server"
)

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(config)
	if err != nil {
		fallbackLogger := zerolog.New(os.Stderr)
		fallbackLogger.Error().Err(err).Msg("invalid logging configuration")
		os.Exit(2)
	}

	fleetConfig, err := loadFleetConfig(config.FleetConfigPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", config.FleetConfigPath).Msg("failed to load fleet config")
	}

	opts := []norm.Option{}
	if fleetConfig.CapacityFactor != nil {
		opts = append(opts, norm.WithCapacityFactor(*fleetConfig.CapacityFactor))
	}
	estimator := norm.NewEstimator(opts...)
	flt := fleet.New(estimator, fleet.Sites(), fleetConfig.Sites, logger)

	srv := &http.Server{
		Addr:    config.ListenAddr,
		Handler: server.New(estimator, flt, logger).Handler(),
	}

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Shutdown failed")
		}
		close(shutdownDone)
	}()

	logger.Info().
		Str("addr", config.ListenAddr).
		Float64("capacity_factor", estimator.CapacityFactor()).
		Int("sites", len(flt.Sites())).
		Msg("Starting solarnorm server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	<-shutdownDone
}

// newLogger builds the process logger from config.
func newLogger(config *Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return zerolog.Logger{}, err
	}

	var logger zerolog.Logger
	if config.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger(), nil
}
