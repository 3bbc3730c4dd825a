package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv_Overlays(t *testing.T) {
	t.Setenv("ENDPOINT_ADDR", ":9999")
	t.Setenv("SECRET_KEY", "env_secret")
	t.Setenv("TOKEN_VALIDITY", "30m")
	t.Setenv("BCRYPT_COST", "14")
	t.Setenv("SECURE_COOKIES", "false")

	cfg := &Config{SecureCookies: true}
	parseEnv(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, "env_secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, 14, cfg.BcryptCost)
	assert.Equal(t, false, cfg.SecureCookies)
}

func Test_parseEnv_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY", "soon")
	t.Setenv("BCRYPT_COST", "high")

	cfg := &Config{TokenValidityDuration: time.Hour, BcryptCost: 10}
	parseEnv(cfg)

	assert.Equal(t, time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
}
