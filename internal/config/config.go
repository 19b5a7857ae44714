// Package config provides configuration management for the notebook relay service.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"notebook-relay/internal/models"
	"notebook-relay/internal/utils"
)

// Config holds all configuration values for the service. It is loaded once
// at process start and injected into each handler; values are never read
// from the environment at request time.
type Config struct {
	// Platform
	SupabaseURL    string
	ServiceRoleKey string

	// Status store (direct connection, preferred over the REST fallback)
	DatabaseURL string

	// Webhooks
	DocumentWebhookURL  string
	ChatWebhookURL      string
	GenerationAuthToken string

	// Storage (optional S3-backed file URL resolution)
	S3Bucket  string
	AWSRegion string

	// Application
	Port     string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:    getEnv("SUPABASE_URL", ""),
		ServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		DocumentWebhookURL:  getEnv("DOCUMENT_PROCESSING_WEBHOOK_URL", ""),
		ChatWebhookURL:      getEnv("NOTEBOOK_CHAT_URL", ""),
		GenerationAuthToken: getEnv("NOTEBOOK_GENERATION_AUTH", ""),

		S3Bucket:  getEnv("S3_BUCKET", ""),
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),

		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// RequireDocumentWebhook returns the document processing webhook URL or a
// configuration error naming the missing or malformed variable.
func (c *Config) RequireDocumentWebhook() (string, error) {
	return requireWebhookURL(c.DocumentWebhookURL, "DOCUMENT_PROCESSING_WEBHOOK_URL")
}

// RequireChatWebhook returns the chat webhook URL or a configuration error
// naming the missing or malformed variable.
func (c *Config) RequireChatWebhook() (string, error) {
	return requireWebhookURL(c.ChatWebhookURL, "NOTEBOOK_CHAT_URL")
}

// RequireChatAuth returns the chat authorization token, which is mandatory
// for the chat relay.
func (c *Config) RequireChatAuth() (string, error) {
	if c.GenerationAuthToken == "" {
		return "", models.NewRelayError(models.ErrorKindConfig,
			"NOTEBOOK_GENERATION_AUTH environment variable is not set")
	}
	return c.GenerationAuthToken, nil
}

// CallbackURL builds the URL the automation workflow reports back to after
// processing a document.
func (c *Config) CallbackURL() string {
	if c.SupabaseURL == "" {
		return ""
	}
	return strings.TrimRight(c.SupabaseURL, "/") + "/functions/v1/process-document-callback"
}

func requireWebhookURL(value, name string) (string, error) {
	if value == "" {
		return "", models.NewRelayError(models.ErrorKindConfig,
			"%s environment variable is not set", name)
	}
	if !utils.IsValidURL(value) {
		return "", models.NewRelayError(models.ErrorKindConfig,
			"%s is not a valid URL: %q", name, value)
	}
	return value, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
