package tavily_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkarolik/aivis/tavily"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedSearch_Invoke(t *testing.T) {
	t.Parallel()

	t.Run("returns results plus synthesized answer", func(t *testing.T) {
		t.Parallel()

		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{
				"answer": "Acme is an invoicing automation startup.",
				"results": [
					{"title": "Acme homepage", "url": "https://acme.com", "content": "Invoicing", "score": 0.97},
					{"title": "Acme review", "url": "https://example.com", "content": "Solid", "score": 0.88}
				]
			}`))
		}))
		defer server.Close()

		tool := tavily.NewUnifiedSearch("secret", tavily.WithBaseURL(server.URL))

		result := tool.Invoke(context.Background(), map[string]any{
			"query":               "What is Acme?",
			"search_depth":        "advanced",
			"max_results":         float64(5),
			"include_answer":      true,
			"include_images":      false,
			"include_raw_content": false,
		})

		assert.Equal(t, "secret", gotBody["api_key"])
		assert.Equal(t, "advanced", gotBody["search_depth"])
		assert.Equal(t, true, result["success"])
		assert.Equal(t, "Acme is an invoicing automation startup.", result["answer"])
		results, ok := result["results"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, results, 2)
		assert.Equal(t, "Acme homepage", results[0]["title"])
	})

	t.Run("defaults optional arguments", func(t *testing.T) {
		t.Parallel()

		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"results": []}`))
		}))
		defer server.Close()

		tool := tavily.NewUnifiedSearch("secret", tavily.WithBaseURL(server.URL))

		result := tool.Invoke(context.Background(), map[string]any{"query": "Acme"})

		assert.Equal(t, "basic", gotBody["search_depth"])
		assert.Equal(t, float64(5), gotBody["max_results"])
		assert.Equal(t, true, gotBody["include_answer"])
		assert.Equal(t, true, result["success"])
	})

	t.Run("missing credential fails soft", func(t *testing.T) {
		t.Parallel()

		tool := tavily.NewUnifiedSearch("")

		result := tool.Invoke(context.Background(), map[string]any{"query": "Acme"})

		assert.Contains(t, result["error"], "not configured")
	})

	t.Run("transport error fails soft", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		tool := tavily.NewUnifiedSearch("secret", tavily.WithBaseURL(server.URL))

		result := tool.Invoke(context.Background(), map[string]any{"query": "Acme"})

		assert.Contains(t, result["error"], "HTTP 502")
	})
}

func TestUnifiedSearch_Definition(t *testing.T) {
	t.Parallel()

	def := tavily.NewUnifiedSearch("k").Definition()

	assert.Equal(t, "tavily_search", def.Name)
	params, ok := def.Parameters["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, params, "search_depth")
}
