// Package config loads the beamcalc settings from a YAML file, a .env file and
// the environment, in that order of precedence from lowest to highest.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"Beamcalc/internal/errors"
	"Beamcalc/internal/logging"
)

// EnvConfig names the YAML file the server binary loads.
const EnvConfig = "BEAMCALC_CONFIG"

// Environment variables that override the file.
const (
	EnvAddr     = "BEAMCALC_ADDR"
	EnvTokenKey = "TOKEN_KEY"
	EnvLogLevel = "BEAMCALC_LOG_LEVEL"
	EnvLocale   = "BEAMCALC_LOCALE"
	EnvRPS      = "BEAMCALC_RATE_RPS"
)

// Server.MaxBodyBytes bounds JSON and spreadsheet uploads.
type Server struct {
	Addr            string        `yaml:"addr"`
	TLSCert         string        `yaml:"tls_cert"`
	TLSKey          string        `yaml:"tls_key"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// Auth is enabled when TokenKey is set.
type Auth struct {
	TokenKey string        `yaml:"token_key"`
	TokenTTL time.Duration `yaml:"token_ttl"`
	Issuer   string        `yaml:"issuer"`
}

func (a Auth) Enabled() bool { return a.TokenKey != "" }

type RateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type Report struct {
	Locale  string `yaml:"locale"`
	Author  string `yaml:"author"`
	Project string `yaml:"project"`
}

type Config struct {
	Server    Server         `yaml:"server"`
	Auth      Auth           `yaml:"auth"`
	RateLimit RateLimit      `yaml:"rate_limit"`
	Report    Report         `yaml:"report"`
	Logging   logging.Config `yaml:"logging"`
}

func Default() Config {
	return Config{
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxBodyBytes:    4 << 20,
		},
		Auth:      Auth{TokenTTL: 24 * time.Hour, Issuer: "beamcalc"},
		RateLimit: RateLimit{RPS: 1, Burst: 3},
		Report:    Report{Locale: "en"},
		Logging:   logging.DefaultConfig(),
	}
}

// Load starts from Default, applies the YAML file at path when path is not
// empty, then .env and the process environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Config("read config file", err).WithContext("path", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.TypeParsing, "decode config file", err).WithContext("path", path)
		}
	}

	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return cfg, errors.Config("load .env", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvTokenKey); v != "" {
		c.Auth.TokenKey = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		c.Report.Locale = v
	}
	if v := os.Getenv(EnvRPS); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Config(EnvRPS+" is not a number", err)
		}
		c.RateLimit.RPS = rps
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return errors.Config("server.addr must not be empty", nil)
	case (c.Server.TLSCert == "") != (c.Server.TLSKey == ""):
		return errors.Config("server.tls_cert and server.tls_key must be set together", nil)
	case c.Server.MaxBodyBytes <= 0:
		return errors.Config("server.max_body_bytes must be greater than 0", nil)
	case c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0:
		return errors.Config("rate_limit.rps and rate_limit.burst must be greater than 0", nil)
	case c.Auth.Enabled() && c.Auth.TokenTTL <= 0:
		return errors.Config("auth.token_ttl must be greater than 0", nil)
	}
	if _, err := language.Parse(c.Report.Locale); err != nil {
		return errors.Config("report.locale is not a valid language tag", err).WithContext("locale", c.Report.Locale)
	}
	return nil
}
