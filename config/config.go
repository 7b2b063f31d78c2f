package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisWorkerDB  int    `mapstructure:"REDIS_WORKER_DB"`

	// Booking engine knobs.
	SessionTTLMinutes      int    `mapstructure:"SESSION_TTL_MINUTES"`
	ConfirmCooldownSeconds int    `mapstructure:"CONFIRM_COOLDOWN_SECONDS"`
	DefaultDurationMinutes int    `mapstructure:"DEFAULT_DURATION_MINUTES"`
	ScheduleFiltering      bool   `mapstructure:"SCHEDULE_FILTERING"`
	ShiftFiltering         bool   `mapstructure:"SHIFT_FILTERING"`
	StrictSkillFiltering   bool   `mapstructure:"STRICT_SKILL_FILTERING"`
	PresentationOrder      string `mapstructure:"PRESENTATION_ORDER"`
}

var AppConfig Config

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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_WORKER_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("CONFIRM_COOLDOWN_SECONDS", 3)
	// The conflict check runs against a fixed one-hour window regardless of the
	// selected service's own duration. Kept configurable rather than derived.
	viper.SetDefault("DEFAULT_DURATION_MINUTES", 60)
	viper.SetDefault("SCHEDULE_FILTERING", true)
	viper.SetDefault("SHIFT_FILTERING", true)
	viper.SetDefault("STRICT_SKILL_FILTERING", true)
	viper.SetDefault("PRESENTATION_ORDER", "random")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
