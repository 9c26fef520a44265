package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dshills/aoc/internal/input"
	"github.com/dshills/aoc/internal/report"
	"github.com/dshills/aoc/internal/solver"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filename))
}

type goldenAnswer struct {
	Day     int    `yaml:"day"`
	PartOne uint64 `yaml:"part_one"`
	PartTwo uint64 `yaml:"part_two"`
}

func loadGolden(t *testing.T) []goldenAnswer {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(projectRoot(), "testdata", "golden", "answers.yaml"))
	if err != nil {
		t.Fatalf("failed to read golden answers: %v", err)
	}
	var answers []goldenAnswer
	if err := yaml.Unmarshal(data, &answers); err != nil {
		t.Fatalf("failed to parse golden answers: %v", err)
	}
	return answers
}

func TestGoldenExamples(t *testing.T) {
	dataDir := filepath.Join(projectRoot(), "testdata")
	answers := loadGolden(t)
	if len(answers) != len(solver.Days()) {
		t.Fatalf("golden file covers %d days, %d registered", len(answers), len(solver.Days()))
	}

	for _, want := range answers {
		t.Run(fmt.Sprintf("day%02d", want.Day), func(t *testing.T) {
			s, err := solver.Lookup(want.Day)
			if err != nil {
				t.Fatal(err)
			}
			f, err := input.LoadDay(dataDir, input.RoleExamples, want.Day)
			if err != nil {
				t.Fatal(err)
			}

			res, err := solver.Run(context.Background(), zap.NewNop(), solver.Job{
				Solver: s, Role: input.RoleExamples, File: f,
			}, []int{1, 2})
			if err != nil {
				t.Fatal(err)
			}

			expected := []uint64{want.PartOne, want.PartTwo}
			for i, p := range res.Parts {
				if p.Status() != report.StatusSolved {
					t.Fatalf("part %d status %s (%s)", p.Part, p.Status(), p.Error)
				}
				if *p.Answer != expected[i] {
					t.Errorf("part %d = %d, want %d", p.Part, *p.Answer, expected[i])
				}
			}
		})
	}
}

func TestGoldenReportRoundTrip(t *testing.T) {
	dataDir := filepath.Join(projectRoot(), "testdata")

	var jobs []solver.Job
	for _, day := range solver.Days() {
		s, _ := solver.Lookup(day)
		f, err := input.LoadDay(dataDir, input.RoleExamples, day)
		if err != nil {
			t.Fatal(err)
		}
		jobs = append(jobs, solver.Job{Solver: s, Role: input.RoleExamples, File: f})
	}

	results, err := solver.RunAll(context.Background(), zap.NewNop(), jobs, []int{1, 2}, 2)
	if err != nil {
		t.Fatal(err)
	}
	rep := report.New("golden", results, report.Meta{DataDir: dataDir, Workers: 2})
	if rep.Summary.Verdict != report.VerdictComplete {
		t.Errorf("expected COMPLETE verdict, got %s", rep.Summary.Verdict)
	}

	data1, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		t.Fatalf("first marshal failed: %v", err)
	}
	var rep2 report.Report
	if err := json.Unmarshal(data1, &rep2); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	data2, err := json.MarshalIndent(rep2, "", "  ")
	if err != nil {
		t.Fatalf("second marshal failed: %v", err)
	}
	if string(data1) != string(data2) {
		t.Error("JSON round-trip produced different output")
	}
}
