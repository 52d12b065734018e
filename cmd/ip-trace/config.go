package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/meli-challenge/ip-trace/internal/pkg/application/distance"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/env"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/repositories/database"
	"github.com/rs/zerolog"
)

type appConfig struct {
	listenAddress string
	servicePort   string
	logLevel      string

	origin  distance.GeoPoint
	formula distance.Formula

	geolocationURL   string
	countryInfoURL   string
	exchangeRatesURL string
	exchangeRatesKey string
	httpTimeout      time.Duration

	cacheSize int
	cacheTTL  time.Duration

	notificationsFile string

	db database.ConnectorConfig
}

func loadConfig(log zerolog.Logger) (appConfig, error) {
	envOrDef := func(name, defaultValue string) string {
		return env.GetVariableOrDefault(log, name, defaultValue)
	}

	cfg := appConfig{
		listenAddress: envOrDef("LISTEN_ADDRESS", "0.0.0.0"),
		servicePort:   envOrDef("SERVICE_PORT", "8080"),
		logLevel:      envOrDef("LOG_LEVEL", "info"),

		geolocationURL:   envOrDef("GEOLOCATION_API_URL", "https://api.ip2country.info/ip"),
		countryInfoURL:   envOrDef("COUNTRYINFO_API_URL", "https://restcountries.com/v2/alpha"),
		exchangeRatesURL: envOrDef("EXCHANGERATES_API_URL", "http://data.fixer.io/api/latest"),
		exchangeRatesKey: envOrDef("EXCHANGERATES_ACCESS_KEY", ""),

		notificationsFile: envOrDef("NOTIFICATIONS_FILE", ""),

		db: database.LoadConfigFromEnv(log),
	}

	lat, err := env.GetFloatOrDefault(log, "ORIGIN_LATITUDE", distance.DefaultOrigin.Latitude)
	if err != nil {
		return appConfig{}, fmt.Errorf("invalid ORIGIN_LATITUDE: %w", err)
	}

	lon, err := env.GetFloatOrDefault(log, "ORIGIN_LONGITUDE", distance.DefaultOrigin.Longitude)
	if err != nil {
		return appConfig{}, fmt.Errorf("invalid ORIGIN_LONGITUDE: %w", err)
	}
	cfg.origin = distance.NewGeoPoint(lat, lon)

	cfg.formula, err = distance.ParseFormula(envOrDef("DISTANCE_FORMULA", string(distance.Canonical)))
	if err != nil {
		return appConfig{}, err
	}

	cfg.httpTimeout, err = env.GetDurationOrDefault(log, "HTTP_CLIENT_TIMEOUT", 10*time.Second)
	if err != nil {
		return appConfig{}, fmt.Errorf("invalid HTTP_CLIENT_TIMEOUT: %w", err)
	}

	cfg.cacheSize, err = env.GetIntOrDefault(log, "CACHE_SIZE", 1000)
	if err != nil {
		return appConfig{}, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}

	cfg.cacheTTL, err = env.GetDurationOrDefault(log, "CACHE_TTL", time.Hour)
	if err != nil {
		return appConfig{}, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	return cfg, nil
}

// parseFlags lets command line arguments override defaults and environment variables.
func parseFlags(fs *flag.FlagSet, args []string, cfg *appConfig) error {
	fs.StringVar(&cfg.servicePort, "port", cfg.servicePort, "port to listen on")
	fs.StringVar(&cfg.notificationsFile, "notifications", cfg.notificationsFile, "yaml file with notification subscribers")
	fs.StringVar(&cfg.logLevel, "loglevel", cfg.logLevel, "log level (debug, info, warn, error)")
	fs.Func("formula", "distance formula (canonical, as-found)", func(value string) error {
		f, err := distance.ParseFormula(value)
		if err != nil {
			return err
		}
		cfg.formula = f
		return nil
	})
	fs.IntVar(&cfg.cacheSize, "cachesize", cfg.cacheSize, "number of cached api responses per client, 0 disables caching")

	return fs.Parse(args)
}
