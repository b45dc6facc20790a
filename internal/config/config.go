package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment    string
	HTTPPort       string
	DBDSN          string
	JWTSecret      string
	TokenTTL       time.Duration
	TelegramToken  string // Пустое значение выключает уведомления
	BaseURL        string // Основа для ссылок в уведомлениях
	MigrationsPath string
	NotifyTimeout  time.Duration
	// ReopenRejected разрешает менять отклонённые записи.
	// Поведение исходной системы: разрешено.
	ReopenRejected bool
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Environment:    getEnv("ENV", "development"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DBDSN:          os.Getenv("DB_DSN"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       getDurationEnv("TOKEN_TTL", 24*time.Hour),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		BaseURL:        os.Getenv("BASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		NotifyTimeout:  getDurationEnv("NOTIFY_TIMEOUT", 5*time.Second),
		ReopenRejected: getBoolEnv("APPOINTMENT_REOPEN_REJECTED", true),
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration in %s, using default %s", key, fallback)
		return fallback
	}
	return d
}

func getBoolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid bool in %s, using default %t", key, fallback)
		return fallback
	}
	return b
}
