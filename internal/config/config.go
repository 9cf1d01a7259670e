package config

import (
	"os"
)

type Config struct {
	Port         string
	DatabaseURL  string
	FrontendURL  string
	AllowOrigins string

	JWT struct {
		Secret string
		Issuer string
	}

	Stripe struct {
		SecretKey     string
		WebhookSecret string
	}

	Email struct {
		APIKey        string
		FromAddress   string
		FromName      string
		InquiryNotify string
	}

	Turnstile struct {
		SecretKey string
	}
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")
	cfg.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "coworkly")

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")
	cfg.Email.InquiryNotify = os.Getenv("INQUIRY_NOTIFY_ADDRESS")

	cfg.Turnstile.SecretKey = os.Getenv("CF_TURNSTILE_SECRET_KEY")

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
