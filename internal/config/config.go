package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned by Load when JWT_SECRET is not set.
// The process must not start without a signing secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is required")

// Config holds all environment-driven settings.
type Config struct {
	// Server
	Port     string
	LogLevel string

	// Auth
	JWTSecret string
	JWTExp    time.Duration

	// PostgreSQL: DatabaseURL wins when set, otherwise the discrete
	// parameters are used to assemble a DSN.
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBName       string
	DBUser       string
	DBPassword   string
	MaxOpenConns int
	MaxIdleConns int

	// Email transport selector: "api", "smtp_brevo" or "smtp_gmail".
	EmailMethod string

	// Brevo REST API
	BrevoAPIKey      string
	BrevoAPIURL      string
	BrevoSenderEmail string
	BrevoSenderName  string

	// Brevo SMTP relay
	BrevoSMTPServer   string
	BrevoSMTPPort     int
	BrevoSMTPLogin    string
	BrevoSMTPPassword string

	// Gmail SMTP relay
	GmailSMTPServer   string
	GmailSMTPPort     int
	GmailSMTPUsername string
	GmailSMTPPassword string
	GmailSenderEmail  string
	GmailSenderName   string

	// Directory the front-end pages are served from.
	StaticDir string
}

// Load reads the env file at path (missing files are ignored) and then the
// process environment. It fails only on a missing JWT secret or an
// unparseable numeric value.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		Port:     getEnv("PORT", "3001"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "postgres"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),

		EmailMethod: getEnv("EMAIL_METHOD", "api"),

		BrevoAPIKey:      getEnv("BREVO_API_KEY", ""),
		BrevoAPIURL:      getEnv("BREVO_API_URL", "https://api.brevo.com/v3/smtp/email"),
		BrevoSenderEmail: getEnv("BREVO_SENDER_EMAIL", "noreply@autoops.com"),
		BrevoSenderName:  getEnv("BREVO_SENDER_NAME", "AutoOps Team"),

		BrevoSMTPServer:   getEnv("BREVO_SMTP_SERVER", "smtp-relay.brevo.com"),
		BrevoSMTPLogin:    getEnv("BREVO_SMTP_LOGIN", ""),
		BrevoSMTPPassword: getEnv("BREVO_SMTP_PASSWORD", ""),

		GmailSMTPServer:   getEnv("GMAIL_SMTP_SERVER", "smtp.gmail.com"),
		GmailSMTPUsername: getEnv("GMAIL_SMTP_USERNAME", ""),
		GmailSMTPPassword: getEnv("GMAIL_SMTP_PASSWORD", ""),
		GmailSenderEmail:  getEnv("GMAIL_SENDER_EMAIL", ""),
		GmailSenderName:   getEnv("GMAIL_SENDER_NAME", "AutoOps Team"),

		StaticDir: getEnv("STATIC_DIR", "web"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	var err error
	if cfg.JWTExp, err = time.ParseDuration(getEnv("JWT_EXP", "168h")); err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "20")); err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}
	if cfg.BrevoSMTPPort, err = strconv.Atoi(getEnv("BREVO_SMTP_PORT", "587")); err != nil {
		return nil, err
	}
	if cfg.GmailSMTPPort, err = strconv.Atoi(getEnv("GMAIL_SMTP_PORT", "587")); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}
