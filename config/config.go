package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// Public base URLs embedded in confirmation links
	AppURL string
	APIURL string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	ratePerMinute, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120"))
	rateBurst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "30"))

	return &Config{
		Port:        getEnv("PORT", "3333"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/planner?charset=utf8mb4&parseTime=True&loc=Local"),

		AppURL: getEnv("APP_URL", "http://localhost:3000"),
		APIURL: getEnv("API_URL", "http://localhost:3333"),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "oi@planner.com.br"),
		FromName:     getEnv("FROM_NAME", "Equipe planner"),

		RateLimitPerMinute: ratePerMinute,
		RateLimitBurst:     rateBurst,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
