package openai_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/mkarolik/aivis"
	"github.com/mkarolik/aivis/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *aivis.Profile {
	industry := "Fintech"
	return &aivis.Profile{
		Name:                 "Acme",
		Description:          "Acme automates invoicing.",
		IdealCustomerProfile: "Small accounting teams",
		KeyFeatures:          []string{"automation"},
		Industry:             &industry,
	}
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("parses both question categories", func(t *testing.T) {
		t.Parallel()

		content := `{
			"company_specific": [
				{"question": "Are there reviews of Acme?", "intent": "Find social proof"},
				{"question": "What does Acme cost?", "intent": "Evaluate pricing"}
			],
			"problem_based": [
				{"question": "How do I automate invoicing?", "intent": "Solve a pain point"}
			]
		}`
		server := httptest.NewServer(chatHandler(t, content, nil))
		defer server.Close()

		client := openai.NewClient("test-key", openai.WithBaseURL(server.URL))
		generator := openai.NewGenerator(client)

		set, err := generator.Generate(context.Background(), testProfile())

		require.NoError(t, err)
		require.Len(t, set.CompanySpecific, 2)
		require.Len(t, set.ProblemBased, 1)
		assert.Equal(t, aivis.CompanySpecific, set.CompanySpecific[0].Category)
		assert.Equal(t, "Find social proof", set.CompanySpecific[0].Intent)
		assert.Equal(t, aivis.ProblemBased, set.ProblemBased[0].Category)
	})

	t.Run("defaults a missing intent", func(t *testing.T) {
		t.Parallel()

		content := `{"company_specific": [{"question": "What is Acme?"}], "problem_based": []}`
		server := httptest.NewServer(chatHandler(t, content, nil))
		defer server.Close()

		client := openai.NewClient("test-key", openai.WithBaseURL(server.URL))
		generator := openai.NewGenerator(client)

		set, err := generator.Generate(context.Background(), testProfile())

		require.NoError(t, err)
		require.Len(t, set.CompanySpecific, 1)
		assert.Equal(t, "Unknown intent", set.CompanySpecific[0].Intent)
	})

	t.Run("rejects whitespace-only questions", func(t *testing.T) {
		t.Parallel()

		content := `{"company_specific": [{"question": "  ", "intent": "x"}], "problem_based": []}`
		server := httptest.NewServer(chatHandler(t, content, nil))
		defer server.Close()

		client := openai.NewClient("test-key", openai.WithBaseURL(server.URL))
		generator := openai.NewGenerator(client)

		_, err := generator.Generate(context.Background(), testProfile())

		require.Error(t, err)
		assert.Equal(t, aivis.EGENERATE, aivis.ErrorCode(err))
	})

	t.Run("non-JSON output raises EGENERATE", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(chatHandler(t, "here are some questions: ...", nil))
		defer server.Close()

		client := openai.NewClient("test-key", openai.WithBaseURL(server.URL))
		generator := openai.NewGenerator(client)

		_, err := generator.Generate(context.Background(), testProfile())

		require.Error(t, err)
		assert.Equal(t, aivis.EGENERATE, aivis.ErrorCode(err))
	})
}
