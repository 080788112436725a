package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	SMTP     SMTPConfig
	Reminder ReminderConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Addr string
}

// SMTPConfig - настройки отправки писем-напоминаний.
// Пустой Host переключает отправку в лог (без SMTP).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type ReminderConfig struct {
	Interval   time.Duration
	Window     time.Duration
	RunTimeout time.Duration
	Workers    int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "taskhub"),
			Password: getEnv("DB_PASSWORD", "taskhub"),
			DBName:   getEnv("DB_NAME", "taskhub"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@taskhub.local"),
		},
		Reminder: ReminderConfig{
			Interval:   getEnvDuration("REMINDER_INTERVAL", time.Hour),
			Window:     getEnvDuration("REMINDER_WINDOW", 24*time.Hour),
			RunTimeout: getEnvDuration("REMINDER_RUN_TIMEOUT", 5*time.Minute),
			Workers:    getEnvInt("REMINDER_WORKERS", 4),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
