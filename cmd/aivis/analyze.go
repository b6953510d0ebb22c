package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mkarolik/aivis"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	report, err := deps.Analyzer.Run(deps.Ctx, c.URL, c.Company)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aivis.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(deps.Stdout, report)
	return nil
}

func printReport(w io.Writer, report *aivis.Report) {
	fmt.Fprintf(w, "LLM visibility report for %s (%s)\n", report.CompanyName, report.URL)
	fmt.Fprintf(w, "Success rate: %.0f%%\n", report.SuccessRate*100)
	if report.HasManifest {
		fmt.Fprintln(w, "llms.txt manifest: found")
	} else {
		fmt.Fprintln(w, "llms.txt manifest: not found")
	}
	fmt.Fprintln(w)

	for _, r := range report.Results {
		fmt.Fprintf(w, "[%d/2] %s\n", r.Score, r.Question.Text)
		if r.Failed {
			fmt.Fprintf(w, "      probe failed: %s\n", firstLine(r.Answer))
		}
	}

	if len(report.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range report.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
