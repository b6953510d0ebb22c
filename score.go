package aivis

import (
	"strings"
	"unicode"
)

// capitalizedStopWords are common sentence-leading words that look like
// company-name candidates but never are.
var capitalizedStopWords = map[string]struct{}{
	"The": {}, "This": {}, "That": {},
	"A": {}, "An": {}, "And": {}, "But": {}, "Or": {}, "For": {},
	"So": {}, "Yet": {},
}

// corporateSuffixes mark a capitalized token as naming some other company
// (e.g. "TechCorp", "Inc.").
var corporateSuffixes = []string{"inc", "corp", "ltd", "llc", "co"}

// ScoreProblem scores the answer to a problem-based question:
//
//	0 - company not mentioned at all (or empty/error-flagged answer)
//	1 - company mentioned, but another company appears first
//	2 - company is the first company mentioned
//
// The ordering heuristic scans whitespace tokens for "company mention
// candidates": capitalized words longer than two characters that are not
// common capitalized stop-words. The first candidate equal to companyName
// wins a 2; a candidate carrying a corporate suffix before that downgrades
// to 1. It is a deliberately simple approximation, not entity recognition.
func ScoreProblem(answer, companyName string) int {
	if answer == "" || companyName == "" || strings.Contains(answer, "Error") {
		return 0
	}

	companyLower := strings.ToLower(companyName)
	if !strings.Contains(strings.ToLower(answer), companyLower) {
		return 0
	}

	for _, word := range strings.Fields(answer) {
		if !isMentionCandidate(word) {
			continue
		}
		trimmed := strings.ToLower(strings.TrimRight(word, ".,;:!?)\"'"))
		if trimmed == companyLower {
			return 2 // first company mentioned
		}
		for _, suffix := range corporateSuffixes {
			if strings.HasSuffix(trimmed, suffix) {
				return 1 // another company mentioned first
			}
		}
	}

	return 1 // mentioned but not first
}

// isMentionCandidate reports whether a token could plausibly be a company
// name: capitalized, longer than 2 characters, and not a stop-word.
func isMentionCandidate(word string) bool {
	runes := []rune(word)
	if len(runes) <= 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	_, stop := capitalizedStopWords[word]
	return !stop
}
