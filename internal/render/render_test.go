package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dshills/aoc/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func answer(v uint64) *uint64 { return &v }

func sampleReport() *report.Report {
	results := []report.Result{
		{
			Day: 1, Title: "Calorie Counting", Role: "examples",
			InputFile: "data/examples/01.txt", InputHash: "sha256:aaa",
			Parts: []report.PartResult{
				{Part: 1, Answer: answer(24000), Elapsed: 15 * time.Microsecond},
				{Part: 2, Answer: answer(45000), Elapsed: 1500 * time.Microsecond},
			},
		},
		{
			Day: 2, Title: "Rock Paper Scissors", Role: "examples",
			InputFile: "data/examples/02.txt", InputHash: "sha256:bbb",
			Parts: []report.PartResult{
				{Part: 1, Answer: answer(15)},
				{Part: 2, Error: "unknown outcome code \"Q\""},
			},
		},
	}
	return report.New("test", results, report.Meta{DataDir: "data", Workers: 1})
}

// --- Text tests ---

func TestText(t *testing.T) {
	got := Text(sampleReport())

	for _, want := range []string{
		"Day 01: Calorie Counting",
		"  Part 1: 24000 (elapsed: 15µs)",
		"  Part 2: 45000 (elapsed: 1.5ms)",
		"Day 02: Rock Paper Scissors",
		"  Part 2: error: unknown outcome code",
		"FAILED: 3 solved, 0 unsolved, 1 failed",
	} {
		assert.Contains(t, got, want)
	}
}

func TestTextUnsolved(t *testing.T) {
	r := report.New("test", []report.Result{
		{Day: 3, Title: "Later", Parts: []report.PartResult{{Part: 1}}},
	}, report.Meta{})

	got := Text(r)
	assert.Contains(t, got, "Part 1: not solved\n")
	assert.Contains(t, got, "PARTIAL")
}

// --- Markdown tests ---

func TestMarkdown(t *testing.T) {
	got := Markdown(sampleReport())

	for _, want := range []string{
		"# Puzzle Answers",
		"**Verdict:** FAILED",
		"| 1 | Calorie Counting | 1 | 24000 |",
		"| 2 | Rock Paper Scissors | 2 | error: ",
		"## Failures",
		"- Day 2 part 2: unknown outcome code",
		"## Inputs",
		"`sha256:aaa`",
	} {
		assert.Contains(t, got, want)
	}
}

func TestMarkdownEmpty(t *testing.T) {
	got := Markdown(report.New("test", nil, report.Meta{}))
	assert.Contains(t, got, "No puzzles run.")
	assert.NotContains(t, got, "## Failures")
}

// --- Render tests ---

func TestRenderJSON(t *testing.T) {
	out, err := Render(sampleReport(), report.FormatJSON)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "\n"))

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, report.ToolName, r.Tool)
	require.Len(t, r.Results, 2)
	require.NotNil(t, r.Results[0].Parts[0].Answer)
	assert.Equal(t, uint64(24000), *r.Results[0].Parts[0].Answer)
	assert.Nil(t, r.Results[1].Parts[1].Answer)
}

func TestRenderYAML(t *testing.T) {
	out, err := Render(sampleReport(), report.FormatYAML)
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, report.VerdictFailed, r.Summary.Verdict)
	assert.Equal(t, "sha256:bbb", r.Results[1].InputHash)
}

func TestRenderElapsedEncoding(t *testing.T) {
	yamlOut, err := Render(sampleReport(), report.FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, yamlOut, "elapsed: 1.5ms\n")
	assert.NotContains(t, yamlOut, "elapsed_ns")

	var fromYAML report.Report
	require.NoError(t, yaml.Unmarshal([]byte(yamlOut), &fromYAML))
	assert.Equal(t, 1500*time.Microsecond, fromYAML.Results[0].Parts[1].Elapsed)

	jsonOut, err := Render(sampleReport(), report.FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, jsonOut, `"elapsed_ns": 1500000`)

	var fromJSON report.Report
	require.NoError(t, json.Unmarshal([]byte(jsonOut), &fromJSON))
	assert.Equal(t, fromYAML.Results[0].Parts[1].Elapsed, fromJSON.Results[0].Parts[1].Elapsed)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(sampleReport(), report.Format("xml"))
	assert.Error(t, err)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "250ns", formatElapsed(250*time.Nanosecond))
	assert.Equal(t, "2.346ms", formatElapsed(2345678*time.Nanosecond))
	assert.Equal(t, "1.5s", formatElapsed(1500*time.Millisecond))
}
