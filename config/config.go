package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAIContextDB     int    `mapstructure:"REDIS_AI_CONTEXT_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Google integrations (Gemini, Calendar, FCM).
	GeminiAPIKey          string `mapstructure:"GEMINI_API_KEY"`
	ServiceAccountKeyPath string `mapstructure:"SERVICE_ACCOUNT_KEY_PATH"`
	CalendarID            string `mapstructure:"CALENDAR_ID"`

	// Clinic scheduling window.
	ClinicOpenHour      int `mapstructure:"CLINIC_OPEN_HOUR"`
	ClinicCloseHour     int `mapstructure:"CLINIC_CLOSE_HOUR"`
	SlotIntervalMinutes int `mapstructure:"SLOT_INTERVAL_MINUTES"`

	// Appointment reminders.
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "clinicore")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AI_CONTEXT_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("SERVICE_ACCOUNT_KEY_PATH", "service-account.json")
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("CLINIC_OPEN_HOUR", 9)
	viper.SetDefault("CLINIC_CLOSE_HOUR", 17)
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)

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
