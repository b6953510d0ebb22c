package aivis_test

import (
	"testing"

	"github.com/mkarolik/aivis"
	"github.com/stretchr/testify/assert"
)

func TestScoreProblem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		answer  string
		company string
		want    int
	}{
		{
			name:    "company mentioned first",
			answer:  "Acme is the best tool",
			company: "Acme",
			want:    2,
		},
		{
			name:    "company first after stop word",
			answer:  "The Acme platform handles this well.",
			company: "Acme",
			want:    2,
		},
		{
			name:    "candidate without suffix precedes company",
			answer:  "Consider Acme for this problem.",
			company: "Acme",
			want:    2,
		},
		{
			name:    "other company with corporate suffix first",
			answer:  "TechCorp Inc and Acme both solve this.",
			company: "Acme",
			want:    1,
		},
		{
			name:    "every listed stop word skipped",
			answer:  "The This That And But For Yet Acme wins here.",
			company: "Acme",
			want:    2,
		},
		{
			name:    "unlisted capitalized word is a regular candidate",
			answer:  "These tools include Acme today.",
			company: "Acme",
			want:    2,
		},
		{
			name:    "company not mentioned",
			answer:  "No good options exist here.",
			company: "Acme",
			want:    0,
		},
		{
			name:    "mentioned only in lowercase running text",
			answer:  "some people use acme tooling for this",
			company: "Acme",
			want:    1,
		},
		{
			name:    "case insensitive match",
			answer:  "ACME leads this space.",
			company: "acme",
			want:    2,
		},
		{
			name:    "trailing punctuation on mention",
			answer:  "Honestly, Acme. Nothing else comes close.",
			company: "Acme",
			want:    2,
		},
		{
			name:    "empty answer",
			answer:  "",
			company: "Acme",
			want:    0,
		},
		{
			name:    "error flagged answer",
			answer:  "Error querying backend: timeout",
			company: "Acme",
			want:    0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := aivis.ScoreProblem(tt.answer, tt.company)

			assert.Equal(t, tt.want, got)
			assert.Contains(t, []int{0, 1, 2}, got)
		})
	}
}

func TestScoreProblem_Idempotent(t *testing.T) {
	t.Parallel()

	answer := "TechCorp Inc and Acme both solve this."

	first := aivis.ScoreProblem(answer, "Acme")
	second := aivis.ScoreProblem(answer, "Acme")

	assert.Equal(t, first, second)
}
