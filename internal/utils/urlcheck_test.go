package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notebook-relay/internal/utils"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"https with path", "https://example.com/path", true},
		{"http with port", "http://localhost:5678", true},
		{"webhook with query", "https://n8n.example.com/webhook/abc?token=x", true},
		{"plain words", "not a url", false},
		{"missing colon", "http//missing-colon", false},
		{"empty string", "", false},
		{"scheme only", "https://", false},
		{"relative path", "/webhook/abc", false},
		{"no scheme", "example.com/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.IsValidURL(tt.input))
		})
	}
}
