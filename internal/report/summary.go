package report

import "time"

// ComputeSummary derives the verdict, counts, and total elapsed time from results.
func ComputeSummary(results []Result) Summary {
	var solved, unsolved, failed int
	var elapsed time.Duration

	for _, r := range results {
		for _, p := range r.Parts {
			elapsed += p.Elapsed
			switch p.Status() {
			case StatusSolved:
				solved++
			case StatusUnsolved:
				unsolved++
			case StatusFailed:
				failed++
			}
		}
	}

	var verdict Verdict
	switch {
	case failed > 0:
		verdict = VerdictFailed
	case unsolved > 0:
		verdict = VerdictPartial
	default:
		verdict = VerdictComplete
	}

	return Summary{
		Verdict:       verdict,
		SolvedCount:   solved,
		UnsolvedCount: unsolved,
		FailedCount:   failed,
		Elapsed:       elapsed,
	}
}

// ToolName identifies the producer in every report.
const ToolName = "aoc"

// New sorts results and attaches a freshly computed summary.
func New(version string, results []Result, meta Meta) *Report {
	SortResults(results)
	return &Report{
		Tool:    ToolName,
		Version: version,
		Results: results,
		Summary: ComputeSummary(results),
		Meta:    meta,
	}
}
