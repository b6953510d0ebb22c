package aivis

import (
	"context"
	"fmt"
	"strings"
)

// Category classifies a generated search question.
type Category string

// Question categories. CompanySpecific questions name the analyzed business;
// ProblemBased questions describe the pain point without naming it.
const (
	CompanySpecific Category = "company_specific"
	ProblemBased    Category = "problem_based"
)

// Question is a single search question a prospective customer might ask.
// Questions are created by a Generator (or supplied directly by a caller)
// and never mutated.
type Question struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Intent   string   `json:"intent"`
}

// Validate returns an error if the question contains invalid fields.
// Empty and whitespace-only question text is rejected here rather than
// filtered silently.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return Errorf(EINVALID, "question text required")
	}
	switch q.Category {
	case CompanySpecific, ProblemBased:
	default:
		return Errorf(EINVALID, "unknown question category %q", q.Category)
	}
	return nil
}

// QuestionSet holds generated questions grouped by category.
type QuestionSet struct {
	CompanySpecific []Question
	ProblemBased    []Question
}

// All returns the full question list, company-specific first. The returned
// ordering is the ordering probe results are reported in.
func (s *QuestionSet) All() []Question {
	all := make([]Question, 0, len(s.CompanySpecific)+len(s.ProblemBased))
	all = append(all, s.CompanySpecific...)
	all = append(all, s.ProblemBased...)
	return all
}

// Generator produces candidate search questions from a business profile.
type Generator interface {
	// Generate issues a single LLM call and returns both question
	// categories. Malformed output returns an EGENERATE error.
	Generate(ctx context.Context, profile *Profile) (*QuestionSet, error)
}

// CanonicalQuestions returns the fixed company-specific questions appended
// to every run to guarantee minimum coverage regardless of what the
// generator proposes.
func CanonicalQuestions(companyName string) []Question {
	return []Question{
		{
			Text:     fmt.Sprintf("What is %s's feature set and what problems does it solve?", companyName),
			Category: CompanySpecific,
			Intent:   "Evaluate product capabilities",
		},
		{
			Text:     fmt.Sprintf("Are there any reviews or case studies for %s? If so, how did %s help the customer and provide links to that content.", companyName, companyName),
			Category: CompanySpecific,
			Intent:   "Find social proof",
		},
		{
			Text:     fmt.Sprintf("Has %s or %s's founder been written about in any articles or blogs? If so, which ones and what do they say?", companyName, companyName),
			Category: CompanySpecific,
			Intent:   "Find press coverage",
		},
	}
}
