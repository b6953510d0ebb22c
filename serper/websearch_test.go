package serper_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkarolik/aivis/serper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSearch_Invoke(t *testing.T) {
	t.Parallel()

	t.Run("returns ranked organic results", func(t *testing.T) {
		t.Parallel()

		var gotKey string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-API-KEY")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{
				"organic": [
					{"title": "Acme Reviews", "link": "https://example.com/1", "snippet": "Great tool"},
					{"title": "Acme vs Globex", "link": "https://example.com/2", "snippet": "Comparison"},
					{"title": "Noise", "link": "https://example.com/3", "snippet": "Extra"}
				]
			}`))
		}))
		defer server.Close()

		tool := serper.NewWebSearch("secret", serper.WithBaseURL(server.URL))

		result := tool.Invoke(context.Background(), map[string]any{
			"query":       "Acme reviews",
			"num_results": float64(2),
		})

		assert.Equal(t, "secret", gotKey)
		assert.Equal(t, "Acme reviews", gotBody["q"])
		assert.Equal(t, true, result["success"])
		results, ok := result["results"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, results, 2)
		assert.Equal(t, "Acme Reviews", results[0]["title"])
	})

	t.Run("missing credential fails soft", func(t *testing.T) {
		t.Parallel()

		tool := serper.NewWebSearch("")

		result := tool.Invoke(context.Background(), map[string]any{"query": "anything"})

		assert.Contains(t, result["error"], "not configured")
	})

	t.Run("transport error fails soft", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		tool := serper.NewWebSearch("secret", serper.WithBaseURL(server.URL))

		result := tool.Invoke(context.Background(), map[string]any{"query": "anything"})

		assert.Contains(t, result["error"], "HTTP 403")
	})
}

func TestWebSearch_Definition(t *testing.T) {
	t.Parallel()

	def := serper.NewWebSearch("k").Definition()

	assert.Equal(t, "web_search", def.Name)
	assert.NotEmpty(t, def.Description)
	assert.Equal(t, "object", def.Parameters["type"])
}
