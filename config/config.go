package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration. An empty REDIS_ADDR selects the in-memory
	// cache and session store instead.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Mongo URL for the optional conversation archive; empty disables it.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Intent model artifact and labeled corpus paths.
	ModelPath        string `mapstructure:"MODEL_PATH"`
	TrainingDataPath string `mapstructure:"TRAINING_DATA_PATH"`

	// Open-Meteo endpoints, overridable for tests.
	GeocodeURL  string `mapstructure:"GEOCODE_URL"`
	ForecastURL string `mapstructure:"FORECAST_URL"`

	CacheTTLSeconds   int  `mapstructure:"CACHE_TTL_SECONDS"`
	SessionTTLMinutes int  `mapstructure:"SESSION_TTL_MINUTES"`
	SentimentEnabled  bool `mapstructure:"SENTIMENT_ENABLED"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("MODEL_PATH", "models/intent_model.gob")
	viper.SetDefault("TRAINING_DATA_PATH", "data/training_intents.json")
	viper.SetDefault("GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1/search")
	viper.SetDefault("FORECAST_URL", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("SENTIMENT_ENABLED", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// GetEnv returns the application environment.
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}
