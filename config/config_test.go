package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "asset_signatures", cfg.Database.DBName)
	assert.Equal(t, "sha256", cfg.Signing.Algorithm)
	assert.Equal(t, 24*time.Hour, cfg.Signing.FreshnessWindow)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Expiry)
	assert.Equal(t, "asset-signature-service", cfg.Auth.Issuer)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
  mode: release
signing:
  algorithm: hmac-sha256
  key: super-secret-signing-key
  freshness_window: 48h
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "hmac-sha256", cfg.Signing.Algorithm)
	assert.Equal(t, 48*time.Hour, cfg.Signing.FreshnessWindow)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ASIG_DATABASE_HOST", "db.internal")
	t.Setenv("ASIG_SERVER_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_HMACWithoutKeyFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("signing:\n  algorithm: hmac-sha256\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing.key")
}

func TestLoad_UnknownAlgorithmFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("signing:\n  algorithm: md5\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported signing.algorithm")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "svc", Password: "pw",
		DBName: "asset_signatures", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://svc:pw@localhost:5432/asset_signatures?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
