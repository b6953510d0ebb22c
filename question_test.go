package aivis_test

import (
	"testing"

	"github.com/mkarolik/aivis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid question", func(t *testing.T) {
		t.Parallel()

		q := aivis.Question{Text: "Are there reviews of Acme?", Category: aivis.CompanySpecific}

		assert.NoError(t, q.Validate())
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		q := aivis.Question{Text: "", Category: aivis.ProblemBased}

		err := q.Validate()
		require.Error(t, err)
		assert.Equal(t, aivis.EINVALID, aivis.ErrorCode(err))
	})

	t.Run("rejects whitespace-only text", func(t *testing.T) {
		t.Parallel()

		q := aivis.Question{Text: "   \t ", Category: aivis.ProblemBased}

		assert.Error(t, q.Validate())
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		q := aivis.Question{Text: "What now?", Category: "speculative"}

		assert.Error(t, q.Validate())
	})
}

func TestQuestionSet_All(t *testing.T) {
	t.Parallel()

	set := &aivis.QuestionSet{
		CompanySpecific: []aivis.Question{
			{Text: "a", Category: aivis.CompanySpecific},
		},
		ProblemBased: []aivis.Question{
			{Text: "b", Category: aivis.ProblemBased},
			{Text: "c", Category: aivis.ProblemBased},
		},
	}

	all := set.All()

	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Text)
	assert.Equal(t, "b", all[1].Text)
	assert.Equal(t, "c", all[2].Text)
}

func TestCanonicalQuestions(t *testing.T) {
	t.Parallel()

	questions := aivis.CanonicalQuestions("Acme")

	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.NoError(t, q.Validate())
		assert.Equal(t, aivis.CompanySpecific, q.Category)
		assert.Contains(t, q.Text, "Acme")
	}
}

func TestCompanyNameFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.acme.com", "Acme"},
		{"https://acme.io/pricing", "Acme"},
		{"http://sub.acme.co.uk", "Sub"},
		{"not a url at all", "Company"},
		{"https://", "Company"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, aivis.CompanyNameFromURL(tt.url))
		})
	}
}
