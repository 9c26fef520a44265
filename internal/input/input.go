// Package input handles locating, reading, and hashing puzzle input files.
package input

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Role selects which input set a day is read from.
type Role string

const (
	RoleInputs   Role = "inputs"
	RoleExamples Role = "examples"
)

func (r Role) Valid() bool {
	switch r {
	case RoleInputs, RoleExamples:
		return true
	}
	return false
}

const (
	FirstDay = 1
	LastDay  = 25
)

// File holds a loaded puzzle input with its content and metadata.
type File struct {
	FilePath string
	Raw      string
	Lines    []string
	Hash     string
}

// Path returns the location of a day's input: <dataDir>/<role>/<DD>.txt.
func Path(dataDir string, role Role, day int) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("input.Path: unknown role %q", role)
	}
	if day < FirstDay || day > LastDay {
		return "", fmt.Errorf("input.Path: day %d outside %d..%d", day, FirstDay, LastDay)
	}
	return filepath.Join(dataDir, string(role), fmt.Sprintf("%02d.txt", day)), nil
}

// Load reads an input file, normalizes line endings, and computes its SHA-256 hash.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input.Load: %w", err)
	}
	raw := strings.ReplaceAll(string(data), "\r\n", "\n")
	h := sha256.Sum256([]byte(raw))
	return &File{
		FilePath: path,
		Raw:      raw,
		Lines:    strings.Split(raw, "\n"),
		Hash:     fmt.Sprintf("sha256:%x", h),
	}, nil
}

// LoadDay resolves and reads the input for a day.
func LoadDay(dataDir string, role Role, day int) (*File, error) {
	path, err := Path(dataDir, role, day)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Blocks groups lines into runs separated by blank lines.
// Lines are trimmed; empty runs are dropped.
func Blocks(raw string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, trimmed)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
