package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays selected Config fields from environment variables.
// A .env file in the working directory is loaded first if present; real
// environment variables take precedence over it, per godotenv semantics.
//
// Supported variables:
//
//	ENDPOINT_ADDR    HTTP bind address
//	DATABASE_DSN     PostgreSQL DSN
//	SECRET_KEY       token signing secret
//	TOKEN_VALIDITY   token lifetime, Go duration syntax (e.g. "12h")
//	TOKEN_LEEWAY     expiry clock-skew tolerance (e.g. "5s")
//	BCRYPT_COST      password hashing work factor
//	REDIS_ADDR       deny-list backend address
//	SECURE_COOKIES   "true"/"false"
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ENDPOINT_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("TOKEN_LEEWAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenExpiryLeeway = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.RedisAddr = v
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.SecureCookies = b
		}
	}
}
