// Package config loads service configuration from environment variables.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the backend.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string

	JWTSecret string
	JWTExpiry time.Duration
	OTPExpiry time.Duration

	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string

	Environment string
}

// Load reads configuration from the environment. A .env file is applied
// first when present so local development matches deployed behaviour.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),

		JWTSecret: getEnv("JWT_SECRET", "solid_secret_key"),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRES_IN", "24h"), 24*time.Hour),
		OTPExpiry: parseDuration(getEnv("OTP_EXPIRES_IN", "10m"), 10*time.Minute),

		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  getEnv("SMTP_PORT", "587"),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),

		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
