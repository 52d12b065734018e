package env

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// LoadDotEnv reads variables from the given .env files, or ./.env when none
// are given. Missing files are ignored and existing variables are never
// overwritten.
func LoadDotEnv(log zerolog.Logger, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
}

func GetVariableOrDefault(log zerolog.Logger, name, defaultValue string) string {
	value := os.Getenv(name)

	if value == "" {
		log.Debug().Str("variable", name).Msgf("using default value %q", defaultValue)
		return defaultValue
	}

	return value
}

func GetFloatOrDefault(log zerolog.Logger, name string, defaultValue float64) (float64, error) {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseFloat(value, 64)
}

func GetIntOrDefault(log zerolog.Logger, name string, defaultValue int) (int, error) {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func GetDurationOrDefault(log zerolog.Logger, name string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}
