package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mkarolik/aivis"
)

// generateTemperature favors question variety over determinism.
const generateTemperature = 0.3

const generateSystemPrompt = "You are a marketing expert who understands customer search behavior and intent. Generate realistic search queries that potential customers would actually type."

// Ensure Generator implements aivis.Generator at compile time.
var _ aivis.Generator = (*Generator)(nil)

// Generator produces candidate search questions from a profile with a
// single chat completion.
type Generator struct {
	client *Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

type questionPayload struct {
	Question string `json:"question"`
	Intent   string `json:"intent"`
}

type questionSetPayload struct {
	CompanySpecific []questionPayload `json:"company_specific"`
	ProblemBased    []questionPayload `json:"problem_based"`
}

// Generate issues exactly one LLM call and returns both question
// categories. Malformed JSON and empty question texts return an EGENERATE
// error; nothing is filtered silently.
func (g *Generator) Generate(ctx context.Context, profile *aivis.Profile) (*aivis.QuestionSet, error) {
	maxTokens := 5000
	temp := generateTemperature

	msg, err := g.client.createChatCompletion(ctx, chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: generateSystemPrompt},
			{Role: "user", Content: buildGeneratePrompt(profile)},
		},
		Temperature:         &temp,
		MaxCompletionTokens: &maxTokens,
		ResponseFormat:      &chatResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, aivis.Errorf(aivis.EGENERATE, "question generation failed: %v", aivis.ErrorMessage(err))
	}

	var payload questionSetPayload
	if err := json.Unmarshal([]byte(msg.Content), &payload); err != nil {
		return nil, aivis.Errorf(aivis.EGENERATE, "model returned non-JSON questions: %v", err)
	}

	set := &aivis.QuestionSet{}
	for _, q := range payload.CompanySpecific {
		question, err := toQuestion(q, aivis.CompanySpecific)
		if err != nil {
			return nil, err
		}
		set.CompanySpecific = append(set.CompanySpecific, question)
	}
	for _, q := range payload.ProblemBased {
		question, err := toQuestion(q, aivis.ProblemBased)
		if err != nil {
			return nil, err
		}
		set.ProblemBased = append(set.ProblemBased, question)
	}

	return set, nil
}

func toQuestion(p questionPayload, category aivis.Category) (aivis.Question, error) {
	q := aivis.Question{
		Text:     p.Question,
		Category: category,
		Intent:   p.Intent,
	}
	if q.Intent == "" {
		q.Intent = "Unknown intent"
	}
	if err := q.Validate(); err != nil {
		return aivis.Question{}, aivis.Errorf(aivis.EGENERATE, "model produced an invalid question: %v", aivis.ErrorMessage(err))
	}
	return q, nil
}

func buildGeneratePrompt(profile *aivis.Profile) string {
	industry := "Not specified"
	if profile.Industry != nil {
		industry = *profile.Industry
	}

	return fmt.Sprintf(`Based on the following company information, generate search questions that prospective customers might ask:

Company: %s
Description: %s
Target Customers: %s
Key Features: %s
Industry: %s

Generate two types of questions:

1. COMPANY-SPECIFIC QUESTIONS (4-5 questions that mention "%s"):
   - Reviews and comparisons
   - Features and capabilities
   - Pricing and plans
   - Security and reliability

2. PROBLEM-BASED QUESTIONS (5 questions that don't mention the company):
   - Focus on problems the company solves
   - Use keywords customers would search for
   - Consider the customer's pain points

Respond with a JSON object:
{
    "company_specific": [
        {"question": "...", "intent": "..."}
    ],
    "problem_based": [
        {"question": "...", "intent": "..."}
    ]
}`,
		profile.Name,
		profile.Description,
		profile.IdealCustomerProfile,
		strings.Join(profile.KeyFeatures, ", "),
		industry,
		profile.Name,
	)
}
