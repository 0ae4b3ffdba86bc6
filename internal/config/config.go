// Package config loads process configuration from the environment once
// at startup. Components receive the resulting struct explicitly; no
// code reads the environment after Load returns.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds everything the contact backend needs at runtime.
type Config struct {
	// SMTP relay.
	SMTPHost   string
	SMTPPort   int
	SMTPSecure bool
	SMTPUser   string
	SMTPPass   string
	// MailTo is the inquiry recipient. Falls back to SMTPUser when unset.
	MailTo string

	// Google Sheets ledger. If any of the three is empty the ledger
	// writer degrades to a no-op.
	SheetID           string
	GoogleClientEmail string
	GooglePrivateKey  string

	ClientOrigin       string
	Production         bool
	Port               int
	RateLimitPerMinute int
}

// Load reads the environment and applies defaults.
func Load() Config {
	cfg := Config{
		SMTPHost:           getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getenvInt("SMTP_PORT", 465),
		SMTPSecure:         getenvBool("SMTP_SECURE", true),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPass:           os.Getenv("SMTP_PASS"),
		MailTo:             os.Getenv("MAIL_TO"),
		SheetID:            os.Getenv("GOOGLE_SHEET_ID"),
		GoogleClientEmail:  os.Getenv("GOOGLE_CLIENT_EMAIL"),
		ClientOrigin:       getenv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:         os.Getenv("APP_ENV") == "production",
		Port:               getenvInt("PORT", 3001),
		RateLimitPerMinute: getenvInt("RATE_LIMIT_PER_MINUTE", 10),
	}

	// Deployment environments store the PEM key with escaped newlines.
	cfg.GooglePrivateKey = strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n")

	if cfg.MailTo == "" {
		cfg.MailTo = cfg.SMTPUser
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "true"
}
