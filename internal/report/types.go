// Package report defines the output of a solve run.
package report

import "time"

// Report is the top-level output object.
type Report struct {
	Tool    string   `json:"tool" yaml:"tool"`
	Version string   `json:"version" yaml:"version"`
	Results []Result `json:"results" yaml:"results"`
	Summary Summary  `json:"summary" yaml:"summary"`
	Meta    Meta     `json:"meta" yaml:"meta"`
}

// Result holds every part solved for one day.
type Result struct {
	Day       int          `json:"day" yaml:"day"`
	Title     string       `json:"title" yaml:"title"`
	Role      string       `json:"role" yaml:"role"`
	InputFile string       `json:"input_file" yaml:"input_file"`
	InputHash string       `json:"input_hash" yaml:"input_hash"`
	Parts     []PartResult `json:"parts" yaml:"parts"`
}

// PartResult is the answer to one part of a day.
// Answer is nil when the part has no solution. Elapsed is written as
// nanoseconds in JSON and as a duration string in YAML.
type PartResult struct {
	Part    int           `json:"part" yaml:"part"`
	Answer  *uint64       `json:"answer,omitempty" yaml:"answer,omitempty"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

// Status classifies a single part.
func (p PartResult) Status() Status {
	switch {
	case p.Error != "":
		return StatusFailed
	case p.Answer == nil:
		return StatusUnsolved
	default:
		return StatusSolved
	}
}

// Summary holds the run verdict and per-status counts.
type Summary struct {
	Verdict       Verdict       `json:"verdict" yaml:"verdict"`
	SolvedCount   int           `json:"solved_count" yaml:"solved_count"`
	UnsolvedCount int           `json:"unsolved_count" yaml:"unsolved_count"`
	FailedCount   int           `json:"failed_count" yaml:"failed_count"`
	Elapsed       time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

// Meta records the settings used for the run.
type Meta struct {
	DataDir string    `json:"data_dir" yaml:"data_dir"`
	Workers int       `json:"workers" yaml:"workers"`
	Started time.Time `json:"started" yaml:"started"`
}
