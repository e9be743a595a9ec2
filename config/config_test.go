package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeConfigFile(t, `
env:
  env: test
  serviceName: congo
  log:
    level: debug
    pretty: true
http:
  port: 8080
postgres:
  host: localhost
  port: 5432
  user: congo
  dbName: congo
  sslMode: disable
secretKey:
  session: test-secret
`)

	prevWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "congo", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.True(t, cfg.Env.Log.Pretty)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, "congo", cfg.Postgres.DBName)
	assert.Equal(t, "test-secret", cfg.SecretKey.Session)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeConfigFile(t, `
http:
  port: 8080
postgres:
  host: localhost
`)

	prevWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("POSTGRES_HOST", "db.internal")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	prevWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	_, err = LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 8, cfg.Auth.PasswordMinLength)
	assert.Equal(t, 24, cfg.Auth.SessionTTLHours)

	require.NotNil(t, cfg.Cart)
	assert.Equal(t, "memory", cfg.Cart.Backend)
	assert.Equal(t, 48, cfg.Cart.TTLHours)

	require.NotNil(t, cfg.Checkout)
	assert.Equal(t, 2, cfg.Checkout.DeliveryMinDays)
	assert.Equal(t, 10, cfg.Checkout.DeliveryMaxDays)

	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:     &AuthConfig{BcryptCost: 12, PasswordMinLength: 10, SessionTTLHours: 1},
		Cart:     &CartConfig{Backend: "redis", TTLHours: 2},
		Checkout: &CheckoutConfig{DeliveryMinDays: 1, DeliveryMaxDays: 3},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 10, cfg.Auth.PasswordMinLength)
	assert.Equal(t, "redis", cfg.Cart.Backend)
	assert.Equal(t, 1, cfg.Checkout.DeliveryMinDays)
	assert.Equal(t, 3, cfg.Checkout.DeliveryMaxDays)
}
