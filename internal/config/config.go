package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Webhook   WebhookConfig
	Sessions  SessionConfig
	Translate TranslateConfig
	TTS       TTSConfig
	Artifacts ArtifactConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int
	MinConns       int
	MigrationsPath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type WebhookConfig struct {
	Token string // shared secret expected in X-Webhook-Token
}

type SessionConfig struct {
	Backend string // "memory" or "redis"
	TTL     time.Duration
}

type TranslateConfig struct {
	Backend      string // "openai" or "anthropic"
	OpenAIKey    string
	AnthropicKey string
	Model        string
}

type TTSConfig struct {
	Backend       string // "polly" or "openai"
	Region        string
	AccessKey     string
	SecretKey     string
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string
}

type ArtifactConfig struct {
	Dir string
	TTL time.Duration
}

func Load() (*Config, error) {
	// Same behavior as the old dotenv bootstrap: a missing .env is fine.
	_ = godotenv.Load()

	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxConns, err := getEnvInt("DB_MAX_CONNS", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	minConns, err := getEnvInt("DB_MIN_CONNS", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	sessionTTL, err := getEnvDuration("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	artifactTTL, err := getEnvDuration("ARTIFACT_TTL", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid ARTIFACT_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MaxConns:       maxConns,
			MinConns:       minConns,
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Webhook: WebhookConfig{
			Token: getEnv("WEBHOOK_TOKEN", ""),
		},
		Sessions: SessionConfig{
			Backend: getEnv("SESSIONS_BACKEND", "memory"),
			TTL:     sessionTTL,
		},
		Translate: TranslateConfig{
			Backend:      getEnv("TRANSLATE_BACKEND", "openai"),
			OpenAIKey:    getEnv("OPENAI_API_KEY", ""),
			AnthropicKey: getEnv("ANTHROPIC_API_KEY", ""),
			Model:        getEnv("TRANSLATE_MODEL", ""),
		},
		TTS: TTSConfig{
			Backend:       getEnv("TTS_BACKEND", "polly"),
			Region:        getEnv("REGION_NAME", "us-east-1"),
			AccessKey:     getEnv("ACCESS_KEY", ""),
			SecretKey:     getEnv("SECRET_ACCESS_KEY", ""),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("TTS_OPENAI_BASE_URL", ""),
			OpenAIModel:   getEnv("TTS_OPENAI_MODEL", ""),
		},
		Artifacts: ArtifactConfig{
			Dir: getEnv("ARTIFACTS_DIR", "audios"),
			TTL: artifactTTL,
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) Validate() error {
	var missing []string
	if c.Database.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.TTS.Backend == "polly" && c.TTS.AccessKey == "" {
		missing = append(missing, "ACCESS_KEY")
	}
	if c.TTS.Backend == "polly" && c.TTS.SecretKey == "" {
		missing = append(missing, "SECRET_ACCESS_KEY")
	}
	if c.Translate.Backend == "openai" && c.Translate.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.Translate.Backend == "anthropic" && c.Translate.AnthropicKey == "" {
		missing = append(missing, "ANTHROPIC_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return time.ParseDuration(v)
}
