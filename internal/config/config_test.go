package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Beamcalc/internal/errors"
)

// chdir moves the test into an empty directory and clears the overrides, so
// neither a stray .env nor the caller's environment leaks in.
func chdir(t *testing.T) string {
	t.Helper()
	for _, k := range []string{EnvAddr, EnvTokenKey, EnvLogLevel, EnvLocale, EnvRPS} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t, "en", cfg.Report.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "beamcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
  shutdown_timeout: 2s
auth:
  token_key: file-secret
  token_ttl: 1h
rate_limit:
  rps: 5
  burst: 10
report:
  locale: pt-BR
  author: Eng. Silva
logging:
  level: debug
  format: json
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, "pt-BR", cfg.Report.Locale)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOKEN_KEY=dotenv-secret\n"), 0o644))
	t.Setenv(EnvAddr, ":7070")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvRPS, "2.5")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "dotenv-secret", cfg.Auth.TokenKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
}

func TestLoadErrors(t *testing.T) {
	dir := chdir(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("server: [1, 2"), 0o644))
	_, err = Load(bad)
	assert.True(t, errors.IsType(err, errors.TypeParsing))

	t.Setenv(EnvRPS, "fast")
	_, err = Load("")
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"empty addr":       func(c *Config) { c.Server.Addr = "" },
		"half tls":         func(c *Config) { c.Server.TLSCert = "server.crt" },
		"zero body":        func(c *Config) { c.Server.MaxBodyBytes = 0 },
		"negative rate":    func(c *Config) { c.RateLimit.RPS = -1 },
		"zero burst":       func(c *Config) { c.RateLimit.Burst = 0 },
		"auth without ttl": func(c *Config) { c.Auth.TokenKey = "k"; c.Auth.TokenTTL = 0 },
		"bad locale":       func(c *Config) { c.Report.Locale = "not a locale!" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeConfig))
		})
	}
	assert.NoError(t, Default().Validate())
}
