// Package solver registers the puzzle solvers and runs them against inputs.
package solver

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownDay  = errors.New("no solver for day")
	ErrUnknownPart = errors.New("unknown part")
)

// Answer is an optional unsigned result. The zero value means not solved.
type Answer struct {
	Value  uint64
	Solved bool
}

// Solution wraps v as a solved answer.
func Solution(v uint64) Answer {
	return Answer{Value: v, Solved: true}
}

// PartFunc solves one part of a day from the raw input text.
type PartFunc func(input string) (Answer, error)

// Solver bundles both parts of a day. A nil part is reported as unsolved.
type Solver struct {
	Day     int
	Title   string
	PartOne PartFunc
	PartTwo PartFunc
}

// Part returns the function for part 1 or 2.
func (s Solver) Part(n int) (PartFunc, error) {
	switch n {
	case 1:
		return s.PartOne, nil
	case 2:
		return s.PartTwo, nil
	}
	return nil, fmt.Errorf("solver.Part: %w: %d", ErrUnknownPart, n)
}

// Parts expands a part selector: 0 means both parts.
func Parts(sel int) ([]int, error) {
	switch sel {
	case 0:
		return []int{1, 2}, nil
	case 1, 2:
		return []int{sel}, nil
	}
	return nil, fmt.Errorf("solver.Parts: %w: %d", ErrUnknownPart, sel)
}

var registry = map[int]Solver{}

func register(solvers ...Solver) {
	for _, s := range solvers {
		if _, dup := registry[s.Day]; dup {
			panic(fmt.Sprintf("solver: day %d registered twice", s.Day))
		}
		registry[s.Day] = s
	}
}

func init() {
	register(day01, day02)
}

// Lookup returns the solver for a day.
func Lookup(day int) (Solver, error) {
	s, ok := registry[day]
	if !ok {
		return Solver{}, fmt.Errorf("solver.Lookup: %w %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns every registered day in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
