// Package analyze orchestrates the full analysis pipeline: fetch, extract,
// generate, concurrently probe, score and aggregate.
package analyze

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mkarolik/aivis"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the probe worker pool. Probing is the only
// parallel stage; fetch, extract and generate each depend on the previous
// stage's output and run sequentially.
const DefaultConcurrency = 10

// Analyzer runs analysis pipelines. All dependencies are injected; the
// Analyzer itself holds no hidden lifecycle state and is safe to reuse
// across runs.
type Analyzer struct {
	Fetcher   aivis.Fetcher
	Extractor aivis.Extractor
	Generator aivis.Generator
	Prober    aivis.Prober

	// Concurrency is the probe worker pool size. Defaults to
	// DefaultConcurrency when zero.
	Concurrency int

	// Logger receives pipeline progress events. May be nil.
	Logger *slog.Logger
}

// Run executes a complete analysis of the website at url. companyName may
// be empty, in which case it is derived from the URL's domain. Fetch,
// extraction and generation failures are fatal and propagate; individual
// probe failures only lower the success rate.
func (a *Analyzer) Run(ctx context.Context, url, companyName string) (*aivis.Report, error) {
	if companyName == "" {
		companyName = aivis.CompanyNameFromURL(url)
	}

	content, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	// A machine-readable manifest overrides the page text entirely.
	manifest, hasManifest := a.Fetcher.FetchManifest(ctx, url)
	if hasManifest {
		content = manifest
	}

	profile, err := a.Extractor.Extract(ctx, content)
	if err != nil {
		return nil, err
	}
	a.log("profile extracted", "company", profile.Name)

	set, err := a.Generator.Generate(ctx, profile)
	if err != nil {
		return nil, err
	}

	// Canonical questions supplement the generated set so minimum coverage
	// holds no matter what the model proposed.
	set.CompanySpecific = append(set.CompanySpecific, aivis.CanonicalQuestions(companyName)...)
	questions := set.All()
	a.log("questions ready",
		"company_specific", len(set.CompanySpecific),
		"problem_based", len(set.ProblemBased),
	)

	results := a.probeAll(ctx, questions, companyName)

	for i := range results {
		if results[i].Question.Category == aivis.ProblemBased {
			// Mention order is objectively checkable; the model's
			// self-report is not trusted for it.
			results[i].Score = aivis.ScoreProblem(results[i].Answer, companyName)
		}
	}

	report := &aivis.Report{
		ID:          uuid.New().String(),
		URL:         url,
		CompanyName: companyName,
		Profile:     profile,
		Questions:   questions,
		Results:     results,
		SuccessRate: aivis.SuccessRate(results),
		Suggestions: aivis.Suggestions(results, hasManifest),
		HasManifest: hasManifest,
	}
	a.log("analysis complete",
		"questions", len(questions),
		"success_rate", report.SuccessRate,
	)

	return report, nil
}

// probeAll probes every question through a bounded worker pool. Results
// land at their question's index, so concurrent completion order never
// affects report ordering. A panicking worker is converted into a failed
// result at the worker boundary and does not cancel its siblings.
func (a *Analyzer) probeAll(ctx context.Context, questions []aivis.Question, companyName string) []aivis.ProbeResult {
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]aivis.ProbeResult, len(questions))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, question := range questions {
		i, question := i, question
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					results[i] = aivis.ProbeResult{
						Question: question,
						Answer:   fmt.Sprintf("Error probing question: %v", r),
						Score:    0,
						Failed:   true,
					}
				}
			}()
			results[i] = a.Prober.Probe(ctx, question, companyName)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (a *Analyzer) log(msg string, args ...any) {
	if a.Logger != nil {
		a.Logger.Info(msg, args...)
	}
}
