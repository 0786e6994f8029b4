package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"prom_map/internal/logger"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Log      logger.Options
	Clients  ClientsConfig
	Redis    RedisConfig
}

type HTTPConfig struct {
	Addr        string
	BasePath    string
	GinMode     string
	CORSOrigins []string
	AdminSecret string
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	TimeZone     string
	MaxOpenConns int
	MaxIdleConns int
}

// ClientsConfig points the client facades at their services.
type ClientsConfig struct {
	CatalogURL       string
	BookingURL       string
	SMSURL           string
	BookingTokenFile string
}

// RedisConfig is optional; an empty Addr keeps the booking token on disk.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

var defaults = map[string]any{
	"HTTP_ADDR":          "0.0.0.0:8080",
	"HTTP_BASE_PATH":     "",
	"GIN_MODE":           "release",
	"DB_HOST":            "localhost",
	"DB_PORT":            "5432",
	"DB_USER":            "postgres",
	"DB_PASSWORD":        "password",
	"DB_NAME":            "prom_map",
	"DB_SSLMODE":         "disable",
	"DB_TIMEZONE":        "UTC",
	"DB_MAX_OPEN_CONNS":  20,
	"DB_MAX_IDLE_CONNS":  5,
	"LOG_FILE":           "./logs/app.log",
	"LOG_LEVEL":          "info",
	"LOG_MAX_SIZE_MB":    10,
	"LOG_MAX_BACKUPS":    7,
	"LOG_MAX_AGE_DAYS":   7,
	"CATALOG_API_URL":    "https://api.prom-map.ru/api",
	"BOOKING_API_URL":    "https://pccwlck.urbanpass.world/api/booking",
	"SMS_API_URL":        "https://pccwlck.urbanpass.world/api/sms",
	"BOOKING_TOKEN_FILE": "./.booking-auth-token",
	"REDIS_DB":           0,
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:        v.GetString("HTTP_ADDR"),
			BasePath:    strings.TrimRight(v.GetString("HTTP_BASE_PATH"), "/"),
			GinMode:     v.GetString("GIN_MODE"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
			AdminSecret: v.GetString("ADMIN_JWT_SECRET"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			TimeZone:     v.GetString("DB_TIMEZONE"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Log: logger.Options{
			File:       v.GetString("LOG_FILE"),
			Level:      v.GetString("LOG_LEVEL"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Clients: ClientsConfig{
			CatalogURL:       v.GetString("CATALOG_API_URL"),
			BookingURL:       v.GetString("BOOKING_API_URL"),
			SMSURL:           v.GetString("SMS_API_URL"),
			BookingTokenFile: v.GetString("BOOKING_TOKEN_FILE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
