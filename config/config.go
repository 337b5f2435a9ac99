package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	ForecastAPIBaseURL   string
	ForecastAPITimeout   time.Duration
	ForecastAPIRateLimit float64
	ForecastAPIRateBurst int

	MaxQueueSize int
	MaxWaitTime  time.Duration

	CORSAllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	return loadConfig(".")
}

func loadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "cloudcast-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("FORECAST_API_BASE_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("FORECAST_API_TIMEOUT", 10*time.Second)
	v.SetDefault("FORECAST_API_RATE_LIMIT", 10.0)
	v.SetDefault("FORECAST_API_RATE_BURST", 5)
	v.SetDefault("MAX_QUEUE_SIZE", 10)
	v.SetDefault("MAX_WAIT_TIME", 100*time.Millisecond)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:          v.GetString("SERVICE_NAME"),
		ServerAddress:        v.GetString("SERVER_ADDRESS"),
		DBName:               v.GetString("DATABASE_NAME"),
		DBPassword:           v.GetString("DATABASE_PASSWORD"),
		DBUser:               v.GetString("DATABASE_USER"),
		DBPort:               v.GetString("DATABASE_PORT"),
		DBHost:               v.GetString("DATABASE_HOST"),
		Env:                  v.GetString("ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		HTTPTimeout:          v.GetInt32("HTTP_TIMEOUT"),
		ForecastAPIBaseURL:   v.GetString("FORECAST_API_BASE_URL"),
		ForecastAPITimeout:   v.GetDuration("FORECAST_API_TIMEOUT"),
		ForecastAPIRateLimit: v.GetFloat64("FORECAST_API_RATE_LIMIT"),
		ForecastAPIRateBurst: v.GetInt("FORECAST_API_RATE_BURST"),
		MaxQueueSize:         v.GetInt("MAX_QUEUE_SIZE"),
		MaxWaitTime:          v.GetDuration("MAX_WAIT_TIME"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DatabaseEnabled reports whether the forecast query log should be connected.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

func splitList(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
