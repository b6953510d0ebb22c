package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkarolik/aivis"
)

// extractTemperature keeps profile extraction near-deterministic.
const extractTemperature = 0.1

const extractSystemPrompt = "You are a business analyst expert at analyzing companies and their offerings. Provide structured JSON responses."

// Ensure Extractor implements aivis.Extractor at compile time.
var _ aivis.Extractor = (*Extractor)(nil)

// Extractor derives a business profile from website text with a single
// chat completion.
type Extractor struct {
	client *Client
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *Client) *Extractor {
	return &Extractor{client: client}
}

// profilePayload is the wire shape the model is asked to produce.
type profilePayload struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	IdealCustomerProfile string   `json:"ideal_customer_profile"`
	KeyFeatures          []string `json:"key_features"`
	PricingInfo          *string  `json:"pricing_info"`
	Industry             *string  `json:"industry"`
}

// Extract issues exactly one LLM call constrained to JSON output and parses
// the result. Missing fields are defaulted; a non-JSON response returns an
// EEXTRACT error and is not retried here.
func (e *Extractor) Extract(ctx context.Context, text string) (*aivis.Profile, error) {
	maxTokens := 2000
	temp := extractTemperature

	msg, err := e.client.createChatCompletion(ctx, chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: extractSystemPrompt},
			{Role: "user", Content: buildExtractPrompt(text)},
		},
		Temperature:         &temp,
		MaxCompletionTokens: &maxTokens,
		ResponseFormat:      &chatResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, aivis.Errorf(aivis.EEXTRACT, "analyzing content failed: %v", aivis.ErrorMessage(err))
	}

	var payload profilePayload
	if err := json.Unmarshal([]byte(msg.Content), &payload); err != nil {
		return nil, aivis.Errorf(aivis.EEXTRACT, "model returned non-JSON analysis: %v", err)
	}

	profile := &aivis.Profile{
		Name:                 payload.Name,
		Description:          payload.Description,
		IdealCustomerProfile: payload.IdealCustomerProfile,
		KeyFeatures:          payload.KeyFeatures,
		PricingInfo:          payload.PricingInfo,
		Industry:             payload.Industry,
	}
	if profile.Name == "" {
		profile.Name = "Unknown Company"
	}
	if profile.Description == "" {
		profile.Description = "No description available"
	}
	if profile.IdealCustomerProfile == "" {
		profile.IdealCustomerProfile = "Not specified"
	}
	if profile.KeyFeatures == nil {
		profile.KeyFeatures = []string{}
	}

	return profile, nil
}

func buildExtractPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following website content and provide a structured analysis:

Website Content:
%s

Please provide the following information:

1. Company Name: What is the company name?
2. Company Description: In 3-4 sentences, what does the company do?
3. Ideal Customer Profile (ICP): Who is the target customer?
4. Key Features: What are the main features or services offered?
5. Pricing: What is the pricing information, if available?
6. Industry: What industry or sector does the company operate in?

Respond with a JSON object with the following structure:
{
    "name": "Company Name",
    "description": "Company description",
    "ideal_customer_profile": "Target customer description",
    "key_features": ["feature1", "feature2"],
    "pricing_info": "Pricing details or null if not available",
    "industry": "Industry/sector"
}`, text)
}
