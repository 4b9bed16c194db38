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

	// Redis configuration (reminder queue only; the ledger is in-process).
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Catalog file with services and staff; empty means built-in defaults.
	CatalogPath string `mapstructure:"CATALOG_PATH"`

	// Scheduling knobs.
	SlotStrideMinutes        int `mapstructure:"SLOT_STRIDE_MINUTES"`
	MinNoticeMinutes         int `mapstructure:"MIN_NOTICE_MINUTES"`
	EmergencyReservedPerDay  int `mapstructure:"EMERGENCY_RESERVED_SLOTS_PER_DAY"`
	PaymentGraceMinutes      int `mapstructure:"PAYMENT_GRACE_MINUTES"`
	NextAvailableHorizonDays int `mapstructure:"NEXT_AVAILABLE_HORIZON_DAYS"`

	// Surfaced on emergency-path failures so callers in crisis always get a
	// direct line, never a bare error.
	EmergencyContactPhone string `mapstructure:"EMERGENCY_CONTACT_PHONE"`
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
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("SLOT_STRIDE_MINUTES", 30)
	viper.SetDefault("MIN_NOTICE_MINUTES", 1440)
	viper.SetDefault("EMERGENCY_RESERVED_SLOTS_PER_DAY", 0)
	viper.SetDefault("PAYMENT_GRACE_MINUTES", 60)
	viper.SetDefault("NEXT_AVAILABLE_HORIZON_DAYS", 14)
	viper.SetDefault("EMERGENCY_CONTACT_PHONE", "+44 20 7946 0999")

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
