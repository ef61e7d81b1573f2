package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// SlogLevel maps l onto the matching slog level. Unknown values map to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Config holds application configuration
type Config struct {
	ServerPort      string `yaml:"port"`
	DatabaseType    string `yaml:"database_type"`
	DatabasePath    string `yaml:"database_path"`
	DatabaseURL     string `yaml:"database_url"`
	LibraryPath     string `yaml:"library_path"`
	StaticFilesPath string `yaml:"static_path"`
	TemplatesPath   string `yaml:"templates_path"`
	MigrationsPath  string `yaml:"migrations_path"`
	TTSCachePath    string `yaml:"tts_cache_path"`

	LogLevel  LogLevel `yaml:"log_level"`
	LogFormat string   `yaml:"log_format"`

	LearnerSecret   string        `yaml:"learner_secret"`
	LearnerTokenTTL time.Duration `yaml:"learner_token_ttl"`

	CatalogTTL      time.Duration `yaml:"catalog_ttl"`
	WritingDuration time.Duration `yaml:"writing_duration"`
	UploadMaxSize   int64         `yaml:"upload_max_size"`

	RateLimit  int           `yaml:"rate_limit"`
	RateWindow time.Duration `yaml:"rate_window"`

	AWSRegion     string `yaml:"aws_region"`
	SESFromEmail  string `yaml:"ses_from_email"`
	SESFromName   string `yaml:"ses_from_name"`
	ReviewerEmail string `yaml:"reviewer_email"`

	MetricsEnabled bool `yaml:"metrics_enabled"`
}

// Default returns the built-in configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		ServerPort:      "5000",
		DatabaseType:    "sqlite",
		DatabasePath:    "./lingolab.db",
		LibraryPath:     ".",
		StaticFilesPath: "./static",
		TemplatesPath:   "./internal/templates",
		MigrationsPath:  "./migrations",
		TTSCachePath:    "./static/tts",
		LogLevel:        LogInfo,
		LogFormat:       "text",
		LearnerTokenTTL: 365 * 24 * time.Hour,
		CatalogTTL:      5 * time.Minute,
		WritingDuration: 60 * time.Minute,
		UploadMaxSize:   10 * 1024 * 1024, // 10MB
		RateLimit:       30,
		RateWindow:      time.Minute,
		AWSRegion:       "us-east-1",
		SESFromName:     "Lingolab",
		MetricsEnabled:  true,
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and finally environment variables, then validates it.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open %q: %w", path, err)
		}
		defer f.Close()
		if err := decodeInto(cfg, f); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config over the defaults and validates the
// result. Environment variables are not consulted.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decodeInto(cfg, r); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeInto(cfg *Config, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.ServerPort = getEnv("PORT", cfg.ServerPort)
	cfg.DatabaseType = getEnv("DB_TYPE", cfg.DatabaseType)
	cfg.DatabasePath = getEnv("DB_PATH", cfg.DatabasePath)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.LibraryPath = getEnv("LIBRARY_PATH", cfg.LibraryPath)
	cfg.StaticFilesPath = getEnv("STATIC_PATH", cfg.StaticFilesPath)
	cfg.TemplatesPath = getEnv("TEMPLATES_PATH", cfg.TemplatesPath)
	cfg.MigrationsPath = getEnv("MIGRATIONS_PATH", cfg.MigrationsPath)
	cfg.TTSCachePath = getEnv("TTS_CACHE_PATH", cfg.TTSCachePath)
	cfg.LogLevel = LogLevel(strings.ToLower(getEnv("LOG_LEVEL", string(cfg.LogLevel))))
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.LearnerSecret = getEnv("LEARNER_SECRET", cfg.LearnerSecret)
	cfg.LearnerTokenTTL = getEnvDuration("LEARNER_TTL", cfg.LearnerTokenTTL)
	cfg.CatalogTTL = getEnvDuration("CATALOG_TTL", cfg.CatalogTTL)
	cfg.WritingDuration = getEnvDuration("WRITING_DURATION", cfg.WritingDuration)
	cfg.RateLimit = getEnvInt("RATE_LIMIT", cfg.RateLimit)
	cfg.RateWindow = getEnvDuration("RATE_WINDOW", cfg.RateWindow)
	cfg.AWSRegion = getEnv("AWS_REGION", cfg.AWSRegion)
	cfg.SESFromEmail = getEnv("SES_FROM_EMAIL", cfg.SESFromEmail)
	cfg.SESFromName = getEnv("SES_FROM_NAME", cfg.SESFromName)
	cfg.ReviewerEmail = getEnv("REVIEWER_EMAIL", cfg.ReviewerEmail)
	cfg.MetricsEnabled = getEnvBool("METRICS_ENABLED", cfg.MetricsEnabled)
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.ServerPort == "" {
		errs = append(errs, errors.New("port is required"))
	}

	switch strings.ToLower(cfg.DatabaseType) {
	case "sqlite", "sqlite3", "":
		if cfg.DatabasePath == "" {
			errs = append(errs, errors.New("database_path is required for sqlite"))
		}
	case "postgres", "postgresql", "mysql":
		if cfg.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("database_url is required for %s", cfg.DatabaseType))
		}
	default:
		errs = append(errs, fmt.Errorf("database_type %q is invalid; valid values: sqlite, postgres, mysql", cfg.DatabaseType))
	}

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if cfg.LogFormat != "" && cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format %q is invalid; valid values: text, json", cfg.LogFormat))
	}
	if cfg.WritingDuration < time.Second {
		errs = append(errs, fmt.Errorf("writing_duration %s must be at least 1s", cfg.WritingDuration))
	}
	if cfg.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit must be positive, got %d", cfg.RateLimit))
	}
	if cfg.RateWindow <= 0 {
		errs = append(errs, fmt.Errorf("rate_window must be positive, got %s", cfg.RateWindow))
	}
	if cfg.SESFromEmail != "" && cfg.AWSRegion == "" {
		errs = append(errs, errors.New("aws_region is required when ses_from_email is set"))
	}
	for key, addr := range map[string]string{"ses_from_email": cfg.SESFromEmail, "reviewer_email": cfg.ReviewerEmail} {
		if addr != "" && !emailRegex.MatchString(strings.TrimSpace(addr)) {
			errs = append(errs, fmt.Errorf("%s %q is not a valid email address", key, addr))
		}
	}

	return errors.Join(errs...)
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("ignoring invalid duration", "key", key, "value", value, "err", err)
		return defaultValue
	}
	return d
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("ignoring invalid integer", "key", key, "value", value, "err", err)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("ignoring invalid boolean", "key", key, "value", value, "err", err)
		return defaultValue
	}
	return b
}
