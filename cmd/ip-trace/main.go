package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meli-challenge/ip-trace/internal/pkg/application/distance"
	"github.com/meli-challenge/ip-trace/internal/pkg/application/events"
	"github.com/meli-challenge/ip-trace/internal/pkg/application/invocations"
	"github.com/meli-challenge/ip-trace/internal/pkg/application/trace"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/clients"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/env"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/repositories/database"
	repository "github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/repositories/database/invocations"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/router"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/tracing"
	"github.com/meli-challenge/ip-trace/internal/pkg/presentation/api"
	"github.com/rs/zerolog"
)

const serviceName string = "ip-trace"

func main() {
	serviceVersion := version()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)

	env.LoadDotEnv(logger)

	cfg, err := loadConfig(logger)
	exitIf(err, logger, "invalid configuration")

	err = parseFlags(flag.CommandLine, os.Args[1:], &cfg)
	exitIf(err, logger, "invalid command line arguments")

	logging.SetLevel(cfg.logLevel)
	logger.Info().Msg("starting up ...")

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	exitIf(err, logger, "failed to init tracing")
	defer cleanup()

	notifications, err := loadNotifications(cfg.notificationsFile)
	exitIf(err, logger, "could not load notifications configuration")

	r, err := initialize(ctx, cfg, database.NewConnector(logger, cfg.db), notifications)
	exitIf(err, logger, "failed to initialize service")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = serve(ctx, logger, net.JoinHostPort(cfg.listenAddress, cfg.servicePort), r)
	exitIf(err, logger, "failed to start request router")
}

func initialize(ctx context.Context, cfg appConfig, connect database.ConnectorFunc, notifications *events.Config) (*chi.Mux, error) {
	repo, err := repository.NewInvocationRepository(connect)
	if err != nil {
		return nil, fmt.Errorf("could not create or connect to database: %w", err)
	}

	httpClient := clients.NewHTTPClient(cfg.httpTimeout)
	cacheSize := int64(cfg.cacheSize)

	geolocation, err := clients.NewCachingGeolocationClient(
		clients.NewGeolocationClient(cfg.geolocationURL, httpClient), cacheSize, cfg.cacheTTL)
	if err != nil {
		return nil, err
	}

	countries, err := clients.NewCachingCountryInfoClient(
		clients.NewCountryInfoClient(cfg.countryInfoURL, httpClient), cacheSize, cfg.cacheTTL)
	if err != nil {
		return nil, err
	}

	rates, err := clients.NewCachingExchangeRateClient(
		clients.NewExchangeRateClient(cfg.exchangeRatesURL, cfg.exchangeRatesKey, httpClient), cacheSize, cfg.cacheTTL)
	if err != nil {
		return nil, err
	}

	invocationSvc := invocations.New(repo)
	traceSvc := trace.New(
		geolocation, countries, rates,
		invocationSvc,
		distance.NewCalculator(cfg.origin, cfg.formula),
		events.New(notifications),
	)

	return api.RegisterHandlers(ctx, router.New(serviceName), traceSvc, invocationSvc), nil
}

func loadNotifications(path string) (*events.Config, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return events.LoadConfiguration(f)
}

func serve(ctx context.Context, logger zerolog.Logger, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("listening for requests")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	}
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}
