// Package render produces text, Markdown, JSON, and YAML output from a report.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/aoc/internal/report"
	"gopkg.in/yaml.v3"
)

// Render formats a report in the requested format.
func Render(r *report.Report, format report.Format) (string, error) {
	switch format {
	case report.FormatText:
		return Text(r), nil
	case report.FormatMarkdown:
		return Markdown(r), nil
	case report.FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("render.Render: %w", err)
		}
		return string(data) + "\n", nil
	case report.FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("render.Render: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("render.Render: unknown format %q", format)
}

// Text renders one line per part, the way a terminal run reads.
func Text(r *report.Report) string {
	var b strings.Builder
	for _, res := range r.Results {
		fmt.Fprintf(&b, "Day %02d: %s\n", res.Day, res.Title)
		for _, p := range res.Parts {
			fmt.Fprintf(&b, "  Part %d: %s", p.Part, answerText(p))
			if p.Status() == report.StatusSolved {
				fmt.Fprintf(&b, " (elapsed: %s)", formatElapsed(p.Elapsed))
			}
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "%s: %d solved, %d unsolved, %d failed\n",
		r.Summary.Verdict, r.Summary.SolvedCount, r.Summary.UnsolvedCount, r.Summary.FailedCount)
	return b.String()
}

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder

	b.WriteString("# Puzzle Answers\n\n")
	fmt.Fprintf(&b, "**Verdict:** %s\n", r.Summary.Verdict)
	fmt.Fprintf(&b, "**Parts:** %d solved, %d unsolved, %d failed\n",
		r.Summary.SolvedCount, r.Summary.UnsolvedCount, r.Summary.FailedCount)
	fmt.Fprintf(&b, "**Elapsed:** %s\n\n", formatElapsed(r.Summary.Elapsed))

	if len(r.Results) == 0 {
		b.WriteString("No puzzles run.\n")
		return b.String()
	}

	b.WriteString("| Day | Title | Part | Answer | Elapsed |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, res := range r.Results {
		for _, p := range res.Parts {
			fmt.Fprintf(&b, "| %d | %s | %d | %s | %s |\n",
				res.Day, res.Title, p.Part, answerText(p), formatElapsed(p.Elapsed))
		}
	}
	b.WriteString("\n")

	failed := failedParts(r.Results)
	if len(failed) > 0 {
		b.WriteString("## Failures\n\n")
		for _, f := range failed {
			b.WriteString("- " + f + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Inputs\n\n")
	for _, res := range r.Results {
		fmt.Fprintf(&b, "- Day %d (%s): %s `%s`\n", res.Day, res.Role, res.InputFile, res.InputHash)
	}
	b.WriteString("\n")

	return b.String()
}

func answerText(p report.PartResult) string {
	switch p.Status() {
	case report.StatusSolved:
		return fmt.Sprintf("%d", *p.Answer)
	case report.StatusFailed:
		return "error: " + p.Error
	default:
		return "not solved"
	}
}

func failedParts(results []report.Result) []string {
	var out []string
	for _, res := range results {
		for _, p := range res.Parts {
			if p.Status() == report.StatusFailed {
				out = append(out, fmt.Sprintf("Day %d part %d: %s", res.Day, p.Part, p.Error))
			}
		}
	}
	return out
}

func formatElapsed(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}
