package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Провайдеры оперативных сводок
const (
	NarrativeProviderNone    = "none"
	NarrativeProviderChat    = "chat"
	NarrativeProviderBedrock = "bedrock"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Simulator Config
	CameraCount                int     `env:"CAMERA_COUNT" envDefault:"48"`
	CameraRegistryPath         string  `env:"CAMERA_REGISTRY_PATH"`
	SimulatorSeed              uint64  `env:"SIMULATOR_SEED" envDefault:"0"`
	PredictiveChance           float64 `env:"PREDICTIVE_CHANCE" envDefault:"0.12"`
	ForwardConfidenceThreshold float64 `env:"FORWARD_CONFIDENCE_THRESHOLD" envDefault:"0.95"`

	// Narrative Config
	NarrativeProvider string        `env:"NARRATIVE_PROVIDER" envDefault:"none"`
	NarrativeAPIURL   string        `env:"NARRATIVE_API_URL"`
	NarrativeAPIKey   string        `env:"NARRATIVE_API_KEY"`
	NarrativeModel    string        `env:"NARRATIVE_MODEL"`
	NarrativeRetries  int           `env:"NARRATIVE_RETRIES" envDefault:"2"`
	NarrativeBackoff  time.Duration `env:"NARRATIVE_BACKOFF" envDefault:"300ms"`
	NarrativeTimeout  time.Duration `env:"NARRATIVE_TIMEOUT" envDefault:"30s"`

	// AWS Config
	AWSRegion          string `env:"AWS_REGION"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	// Forensic Config
	ForensicCacheTTL time.Duration `env:"FORENSIC_CACHE_TTL" envDefault:"5m"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:                   getEnv("HTTP_PORT", "8080"),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
		LogFormat:                  getEnv("LOG_FORMAT", "json"),
		RedisAddr:                  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                  os.Getenv("REDIS_PASSWORD"),
		RedisDB:                    getEnvAsInt("REDIS_DB", 0),
		WebhookURL:                 os.Getenv("WEBHOOK_URL"),
		WebhookSecret:              os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:             getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:          getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:           getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		CameraCount:                getEnvAsInt("CAMERA_COUNT", 48),
		CameraRegistryPath:         os.Getenv("CAMERA_REGISTRY_PATH"),
		SimulatorSeed:              getEnvAsUint64("SIMULATOR_SEED", 0),
		PredictiveChance:           getEnvAsFloat("PREDICTIVE_CHANCE", 0.12),
		ForwardConfidenceThreshold: getEnvAsFloat("FORWARD_CONFIDENCE_THRESHOLD", 0.95),
		NarrativeProvider:          strings.ToLower(getEnv("NARRATIVE_PROVIDER", NarrativeProviderNone)),
		NarrativeAPIURL:            os.Getenv("NARRATIVE_API_URL"),
		NarrativeAPIKey:            os.Getenv("NARRATIVE_API_KEY"),
		NarrativeModel:             os.Getenv("NARRATIVE_MODEL"),
		NarrativeRetries:           getEnvAsInt("NARRATIVE_RETRIES", 2),
		NarrativeBackoff:           getEnvAsDuration("NARRATIVE_BACKOFF", 300*time.Millisecond),
		NarrativeTimeout:           getEnvAsDuration("NARRATIVE_TIMEOUT", 30*time.Second),
		AWSRegion:                  os.Getenv("AWS_REGION"),
		AWSAccessKeyID:             os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:         os.Getenv("AWS_SECRET_ACCESS_KEY"),
		ForensicCacheTTL:           getEnvAsDuration("FORENSIC_CACHE_TTL", 5*time.Minute),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	if c.CameraCount <= 0 {
		errs = append(errs, fmt.Errorf("CAMERA_COUNT must be positive, got %d", c.CameraCount))
	}
	if c.PredictiveChance < 0 || c.PredictiveChance > 1 {
		errs = append(errs, fmt.Errorf("PREDICTIVE_CHANCE must be in [0,1], got %v", c.PredictiveChance))
	}
	if c.ForwardConfidenceThreshold < 0 || c.ForwardConfidenceThreshold > 1 {
		errs = append(errs, fmt.Errorf("FORWARD_CONFIDENCE_THRESHOLD must be in [0,1], got %v", c.ForwardConfidenceThreshold))
	}
	if c.NarrativeRetries < 0 {
		errs = append(errs, fmt.Errorf("NARRATIVE_RETRIES must not be negative, got %d", c.NarrativeRetries))
	}

	switch c.NarrativeProvider {
	case NarrativeProviderNone:
	case NarrativeProviderChat:
		if c.NarrativeAPIURL == "" {
			errs = append(errs, errors.New("NARRATIVE_API_URL is required for the chat provider"))
		}
	case NarrativeProviderBedrock:
		if c.AWSRegion == "" || c.NarrativeModel == "" {
			errs = append(errs, errors.New("AWS_REGION and NARRATIVE_MODEL are required for the bedrock provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown NARRATIVE_PROVIDER %q", c.NarrativeProvider))
	}

	return errors.Join(errs...)
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
