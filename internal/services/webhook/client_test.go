package webhook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notebook-relay/internal/models"
	"notebook-relay/internal/services/webhook"
)

func TestPostJSON_Success(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := webhook.NewClient()
	resp, err := client.PostJSON(context.Background(), server.URL, map[string]string{"source_id": "src-1"}, "secret-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.JSON))
	assert.Equal(t, "secret-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "src-1", gotBody["source_id"])
}

func TestPostJSON_NoAuthHeaderWhenEmpty(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := webhook.NewClient()
	_, err := client.PostJSON(context.Background(), server.URL, map[string]string{}, "")

	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestPostJSON_NonJSONBodyFallsBackToRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("done"))
	}))
	defer server.Close()

	client := webhook.NewClient()
	resp, err := client.PostJSON(context.Background(), server.URL, map[string]string{}, "")

	require.NoError(t, err)
	assert.Nil(t, resp.JSON)
	assert.Equal(t, "done", resp.RawBody)
}

func TestPostJSON_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("unavailable"))
	}))
	defer server.Close()

	client := webhook.NewClient()
	_, err := client.PostJSON(context.Background(), server.URL, map[string]string{}, "")

	require.Error(t, err)
	assert.Equal(t, models.ErrorKindUpstream, models.KindOf(err))
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "unavailable")
}

func TestPostJSON_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close()

	client := webhook.NewClient()
	_, err := client.PostJSON(context.Background(), target, map[string]string{}, "")

	require.Error(t, err)
	assert.Equal(t, models.ErrorKindTransport, models.KindOf(err))
	assert.Contains(t, err.Error(), target)
}
