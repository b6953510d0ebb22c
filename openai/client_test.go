package openai_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkarolik/aivis/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RateLimit(t *testing.T) {
	t.Parallel()

	t.Run("paces consecutive calls", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(chatHandler(t, `{"name": "Acme"}`, nil))
		defer server.Close()

		// 20 rps with burst 1: the first call spends the only token, the
		// second must wait 50ms for a refill.
		client := openai.NewClient("test-key",
			openai.WithBaseURL(server.URL),
			openai.WithRateLimit(20, 1),
		)
		extractor := openai.NewExtractor(client)

		start := time.Now()
		_, err := extractor.Extract(context.Background(), "first")
		require.NoError(t, err)
		_, err = extractor.Extract(context.Background(), "second")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("cancellation interrupts the wait", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(chatHandler(t, `{"name": "Acme"}`, nil))
		defer server.Close()

		client := openai.NewClient("test-key",
			openai.WithBaseURL(server.URL),
			openai.WithRateLimit(0.01, 1),
		)
		extractor := openai.NewExtractor(client)

		_, err := extractor.Extract(context.Background(), "first")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = extractor.Extract(ctx, "second")
		require.Error(t, err)
	})
}
