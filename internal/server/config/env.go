package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names understood by parseEnv.
const (
	EnvPort        = "PORT"
	EnvHTTPAddr    = "HTTP_ADDR"
	EnvDatabaseDSN = "DATABASE_DSN"
	EnvSecret      = "JWT_SECRET"
	EnvTokenTTL    = "TOKEN_TTL"
	EnvBcryptCost  = "BCRYPT_COST"
	EnvStrictLogs  = "STRICT_LOGS"
	EnvLogLevel    = "LOG_LEVEL"
)

// loadDotEnv reads .env from the working directory when present. Variables
// already set in the process environment win.
var loadDotEnv = func() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not load .env: %v", err)
	}
}

// parseEnv overlays config with environment variables. PORT is accepted as
// a bare port number; HTTP_ADDR takes precedence when both are set.
// Malformed numeric or boolean values are reported and ignored.
func parseEnv(config *Config) {
	loadDotEnv()

	if v, ok := os.LookupEnv(EnvPort); ok && v != "" {
		config.HTTPAddr = ":" + v
	}
	if v, ok := os.LookupEnv(EnvHTTPAddr); ok && v != "" {
		config.HTTPAddr = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvSecret); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(EnvTokenTTL); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("warning: ignoring %s=%q: %v", EnvTokenTTL, v, err)
		} else {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv(EnvBcryptCost); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("warning: ignoring %s=%q: %v", EnvBcryptCost, v, err)
		} else {
			config.PasswordHashCost = n
		}
	}
	if v, ok := os.LookupEnv(EnvStrictLogs); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("warning: ignoring %s=%q: %v", EnvStrictLogs, v, err)
		} else {
			config.StrictLogs = b
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		config.LogLevel = v
	}
}
