package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Session SessionConfig
	Toast   ToastConfig
	SLA     SLAConfig
	Seed    SeedConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
	Env   string
}

// SessionConfig defines the operator session parameters. The operator
// profile is fixed per deployment; login attaches the submitted email.
type SessionConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
	OperatorID      string
	OperatorName    string
	OperatorRole    string
	OperatorAvatar  string
}

// ToastConfig controls the notification channel.
type ToastConfig struct {
	TTLMillis int
}

// SLAConfig controls the deadline monitor.
type SLAConfig struct {
	MonitorIntervalSeconds int
}

// SeedConfig controls fixture loading at startup.
type SeedConfig struct {
	LoadFixtures bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "helpdesk"),
			Env:                   env,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Env:   env,
		},
		Session: SessionConfig{
			JWTSecret:       getEnv("SESSION_JWT_SECRET", "dev-secret"),
			TokenTTLMinutes: getEnvAsInt("SESSION_TOKEN_TTL_MINUTES", 480),
			OperatorID:      getEnv("SESSION_OPERATOR_ID", "op-1"),
			OperatorName:    getEnv("SESSION_OPERATOR_NAME", "Alex Operator"),
			OperatorRole:    getEnv("SESSION_OPERATOR_ROLE", "operator"),
			OperatorAvatar:  getEnv("SESSION_OPERATOR_AVATAR", ""),
		},
		Toast: ToastConfig{
			TTLMillis: getEnvAsInt("TOAST_TTL_MILLIS", 3000),
		},
		SLA: SLAConfig{
			MonitorIntervalSeconds: getEnvAsInt("SLA_MONITOR_INTERVAL_SECONDS", 60),
		},
		Seed: SeedConfig{
			LoadFixtures: getEnvAsBool("SEED_FIXTURES", true),
		},
	}

	if cfg.Toast.TTLMillis <= 0 {
		return nil, fmt.Errorf("TOAST_TTL_MILLIS must be positive")
	}
	if cfg.SLA.MonitorIntervalSeconds <= 0 {
		return nil, fmt.Errorf("SLA_MONITOR_INTERVAL_SECONDS must be positive")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TTL returns the toast lifetime as a duration.
func (t ToastConfig) TTL() time.Duration {
	return time.Duration(t.TTLMillis) * time.Millisecond
}

// MonitorInterval returns the SLA recomputation cadence.
func (s SLAConfig) MonitorInterval() time.Duration {
	return time.Duration(s.MonitorIntervalSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
