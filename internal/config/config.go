package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port            string
	SeedFile        string
	OperatorWorkers int
	AllowedOrigins  []string
	LogLevel        logrus.Level
}

// ProcessEnvironmentVariables builds the config from defaults, a .env file in
// the working directory if there is one, and the process environment.
func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	env := Config{
		Port:            "9446",
		SeedFile:        "",
		OperatorWorkers: 1,
		AllowedOrigins:  []string{"*"},
		LogLevel:        logrus.InfoLevel,
	}

	envPort := os.Getenv("PORT")
	envSeedFile := os.Getenv("SEED_FILE")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envAllowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	envLogLevel := os.Getenv("LOG_LEVEL")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envSeedFile) != 0 {
		env.SeedFile = envSeedFile
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q", envOperatorWorkers)
		}
		env.OperatorWorkers = workers
	}

	if len(envAllowedOrigins) != 0 {
		var origins []string
		for _, origin := range strings.Split(envAllowedOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		env.AllowedOrigins = origins
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	return &env, nil
}
