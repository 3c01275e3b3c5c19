package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"saaarchi/models"
)

const (
	defaultContactTo   = "contact@saa-archi.com.tn"
	defaultContactFrom = "onboarding@resend.dev"
	defaultMongoDB     = "saa_archi"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Mail     MailConfig
	Cache    CacheConfig
	App      AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type DatabaseConfig struct {
	URL           string
	MongoDatabase string
}

type SessionConfig struct {
	Secret  string
	BaseURL string
}

type MailConfig struct {
	ResendAPIKey string
	ContactTo    string
	ContactFrom  string
}

type CacheConfig struct {
	RedisURL string
}

type AppConfig struct {
	Environment string
}

// Load reads configuration from the environment, loading .env first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),
		},
		Database: DatabaseConfig{
			URL:           getEnv("DATABASE_URL", getEnv("MONGODB_URI", "")),
			MongoDatabase: getEnv("MONGODB_DATABASE", defaultMongoDB),
		},
		Session: SessionConfig{
			Secret:  getEnv("SESSION_SECRET", getEnv("NEXTAUTH_SECRET", "")),
			BaseURL: getEnv("SESSION_URL", getEnv("NEXTAUTH_URL", "")),
		},
		Mail: MailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			ContactTo:    getEnv("CONTACT_TO", defaultContactTo),
			ContactFrom:  getEnv("CONTACT_FROM", defaultContactFrom),
		},
		Cache: CacheConfig{
			RedisURL: getEnv("REDIS_URL", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings needed at startup. Admin credentials and the
// Resend key are checked where they are used.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("config: %w", models.MissingConfig("DATABASE_URL"))
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("config: %w", models.MissingConfig("SESSION_SECRET"))
	}
	if c.Session.BaseURL == "" {
		return fmt.Errorf("config: %w", models.MissingConfig("SESSION_URL"))
	}
	return nil
}

// SecureCookies reports whether the public base URL is served over https.
func (c *Config) SecureCookies() bool {
	return strings.HasPrefix(strings.ToLower(c.Session.BaseURL), "https://")
}

// AdminCredentials reads the admin email and password. It is called on every
// login attempt so credentials can rotate without a restart.
func AdminCredentials() (email, password string, err error) {
	email = os.Getenv("ADMIN_EMAIL")
	password = os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return "", "", models.MissingConfig("ADMIN_EMAIL", "ADMIN_PASSWORD")
	}
	return email, password, nil
}

// RequiredKeys lists the variables a deployment must define, each with the
// alternative names accepted for it.
func RequiredKeys() [][]string {
	return [][]string{
		{"DATABASE_URL", "MONGODB_URI"},
		{"ADMIN_EMAIL"},
		{"ADMIN_PASSWORD"},
		{"SESSION_SECRET", "NEXTAUTH_SECRET"},
		{"SESSION_URL", "NEXTAUTH_URL"},
		{"RESEND_API_KEY"},
	}
}

// MissingKeys returns the required variables lookup reports as empty, each
// named with its accepted aliases.
func MissingKeys(lookup func(string) string) []string {
	var missing []string
	for _, names := range RequiredKeys() {
		found := false
		for _, name := range names {
			if lookup(name) != "" {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, strings.Join(names, " or "))
		}
	}
	return missing
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
