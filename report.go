package aivis

// MaxSuggestions caps the improvement suggestions carried on a report.
const MaxSuggestions = 5

// ManifestSuggestion is the synthetic suggestion added when the analyzed
// site has no llms.txt manifest.
const ManifestSuggestion = "Add an llms.txt file for LLM discovery"

// Report is the terminal artifact of an analysis run. It is owned by the
// caller once returned; the pipeline holds no reference to it afterward.
type Report struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	CompanyName string        `json:"companyName"`
	Profile     *Profile      `json:"profile"`
	Questions   []Question    `json:"questions"`
	Results     []ProbeResult `json:"results"`
	SuccessRate float64       `json:"successRate"`
	Suggestions []string      `json:"suggestions"`
	HasManifest bool          `json:"hasManifest"`
}

// SuccessRate computes the aggregate fraction of the maximum possible score
// across all probed questions: sum(scores) / (2 * len(results)). It is 0
// when there are no results.
func SuccessRate(results []ProbeResult) float64 {
	if len(results) == 0 {
		return 0
	}
	total := 0
	for _, r := range results {
		total += r.Score
	}
	return float64(total) / float64(2*len(results))
}

// Suggestions collects up to MaxSuggestions improvement suggestions: one
// synthetic manifest suggestion when the llms.txt check found nothing, then
// any non-empty suggestion from zero-scored results in encounter order.
func Suggestions(results []ProbeResult, hasManifest bool) []string {
	suggestions := make([]string, 0, MaxSuggestions)
	if !hasManifest {
		suggestions = append(suggestions, ManifestSuggestion)
	}
	for _, r := range results {
		if len(suggestions) >= MaxSuggestions {
			break
		}
		if r.Score == 0 && r.Suggestion != "" {
			suggestions = append(suggestions, r.Suggestion)
		}
	}
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}
