package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notebook-relay/internal/config"
	"notebook-relay/internal/models"
)

func loadWith(t *testing.T, env map[string]string) *config.Config {
	t.Helper()

	// Clear the recognized keys so ambient environment doesn't leak in.
	for _, key := range []string{
		"SUPABASE_URL", "SUPABASE_SERVICE_ROLE_KEY", "DATABASE_URL",
		"DOCUMENT_PROCESSING_WEBHOOK_URL", "NOTEBOOK_CHAT_URL",
		"NOTEBOOK_GENERATION_AUTH", "S3_BUCKET", "PORT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestLoad_ReadsRecognizedKeys(t *testing.T) {
	cfg := loadWith(t, map[string]string{
		"SUPABASE_URL":                    "https://platform.example.com",
		"SUPABASE_SERVICE_ROLE_KEY":       "service-key",
		"DOCUMENT_PROCESSING_WEBHOOK_URL": "https://n8n.example.com/webhook/process",
		"NOTEBOOK_CHAT_URL":               "https://n8n.example.com/webhook/chat",
		"NOTEBOOK_GENERATION_AUTH":        "Bearer tok",
	})

	assert.Equal(t, "https://platform.example.com", cfg.SupabaseURL)
	assert.Equal(t, "service-key", cfg.ServiceRoleKey)
	assert.Equal(t, "https://n8n.example.com/webhook/process", cfg.DocumentWebhookURL)
	assert.Equal(t, "https://n8n.example.com/webhook/chat", cfg.ChatWebhookURL)
	assert.Equal(t, "Bearer tok", cfg.GenerationAuthToken)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestRequireDocumentWebhook_Missing(t *testing.T) {
	cfg := loadWith(t, nil)

	_, err := cfg.RequireDocumentWebhook()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCUMENT_PROCESSING_WEBHOOK_URL")
	assert.Equal(t, models.ErrorKindConfig, models.KindOf(err))
}

func TestRequireDocumentWebhook_Malformed(t *testing.T) {
	cfg := loadWith(t, map[string]string{
		"DOCUMENT_PROCESSING_WEBHOOK_URL": "not a url",
	})

	_, err := cfg.RequireDocumentWebhook()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCUMENT_PROCESSING_WEBHOOK_URL")
	assert.Contains(t, err.Error(), "not a valid URL")
}

func TestRequireChatWebhook_Missing(t *testing.T) {
	cfg := loadWith(t, nil)

	_, err := cfg.RequireChatWebhook()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTEBOOK_CHAT_URL")
}

func TestRequireChatAuth_Missing(t *testing.T) {
	cfg := loadWith(t, nil)

	_, err := cfg.RequireChatAuth()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTEBOOK_GENERATION_AUTH")
	assert.Equal(t, models.ErrorKindConfig, models.KindOf(err))
}

func TestCallbackURL(t *testing.T) {
	cfg := loadWith(t, map[string]string{
		"SUPABASE_URL": "https://platform.example.com/",
	})
	assert.Equal(t, "https://platform.example.com/functions/v1/process-document-callback", cfg.CallbackURL())

	empty := loadWith(t, nil)
	assert.Equal(t, "", empty.CallbackURL())
}
