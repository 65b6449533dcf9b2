package config

import (
	"errors"
	"os"
	"strconv"
)

// DefaultBcryptCost is the password hashing work factor used when
// BCRYPT_COST is unset or not a positive integer.
const DefaultBcryptCost = 10

// Config holds application level configuration loaded from environment variables.
// It is built once at startup and never mutated afterwards.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	BcryptCost  int
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// JWT_SECRET has no default: tokens signed against a guessable secret are
// worthless, so a missing secret aborts startup.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/todoapp?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   secret,
		BcryptCost:  getEnvPositiveInt("BCRYPT_COST", DefaultBcryptCost),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvPositiveInt(key string, def int) int {
	if v := getEnvInt(key, def); v > 0 {
		return v
	}
	return def
}
