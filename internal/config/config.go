package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Upstream booking backend. All relative asset paths resolve against it.
	UpstreamBaseURL string `mapstructure:"UPSTREAM_BASE_URL"`

	// Image fan-out limit for the bounded fetcher.
	FetchConcurrency int `mapstructure:"FETCH_CONCURRENCY"`

	// Wizard session store. Redis is used when REDIS_ADDR is set, otherwise
	// sessions live in memory.
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int    `mapstructure:"REDIS_DB"`

	// Admin surface.
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminEmail        string `mapstructure:"ADMIN_EMAIL"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// Confirmation notifications.
	SendgridAPIKey    string `mapstructure:"SENDGRID_API_KEY"`
	SendgridFromEmail string `mapstructure:"SENDGRID_FROM_EMAIL"`
	SendgridFromName  string `mapstructure:"SENDGRID_FROM_NAME"`
	TwilioAccountSID  string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber  string `mapstructure:"TWILIO_FROM_NUMBER"`
}

var AppConfig Config

// LoadConfig reads .env, then config.yaml if present, then the environment.
func LoadConfig() {
	godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("UPSTREAM_BASE_URL", "https://api.newyorklimoz.net")
	viper.SetDefault("FETCH_CONCURRENCY", 4)
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SENDGRID_FROM_NAME", "New York Limoz")

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
