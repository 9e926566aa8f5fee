package config

import (
	"github.com/caarlos0/env/v10"

	"practice-recommender/internal/domain"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort        string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL     string `env:"DATABASE_URL"`
	CatalogFile     string `env:"CATALOG_FILE"`
	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	HistoryTTLHours int    `env:"HISTORY_TTL_HOURS" envDefault:"720"`
	HistoryLimit    int    `env:"HISTORY_LIMIT" envDefault:"20"`
	JWTSecret       string `env:"JWT_SECRET"`
	LLMAPIKey       string `env:"LLM_API_KEY"`
	LLMBaseURL      string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel        string `env:"LLM_MODEL" envDefault:"gpt-5.1"`

	InsightRateLimit         int `env:"INSIGHT_RATE_LIMIT" envDefault:"5"`
	InsightRateWindowMinutes int `env:"INSIGHT_RATE_WINDOW_MINUTES" envDefault:"60"`

	Scoring domain.ScoringPolicy `envPrefix:"SCORING_"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Scoring.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
