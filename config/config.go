package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Email delivery configuration
	EmailProvider  string // "resend" (default) or "smtp"
	ResendAPIKey   string
	FromAddress    string
	ContactEmailTo string
	// SMTP fallback (only read when EmailProvider == "smtp")
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
}

func LoadConfig() (*Config, error) {
	// Load .env file (local development only, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		EmailProvider:  strings.ToLower(getEnv("EMAIL_PROVIDER", "resend")),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		FromAddress:    getEnv("RESEND_FROM", "La Belle Détente <contact@labelledetente.fr>"),
		ContactEmailTo: getEnv("CONTACT_EMAIL", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
	}

	// CONTACT_EMAIL has no default on purpose: notifications must never land
	// in a guessed inbox.
	if cfg.ContactEmailTo == "" {
		log.Println("WARNING: CONTACT_EMAIL is missing. Contact form dispatch will fail.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
