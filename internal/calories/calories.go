// Package calories aggregates blank-line separated groups of integers.
package calories

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dshills/aoc/internal/input"
)

// DefaultTop is how many of the largest groups the puzzle sums.
const DefaultTop = 3

// ErrInsufficientData matches every InsufficientDataError.
var ErrInsufficientData = errors.New("insufficient data")

// InsufficientDataError reports fewer groups than an aggregate needs.
type InsufficientDataError struct {
	Want int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("need %d groups, have %d", e.Want, e.Got)
}

func (e *InsufficientDataError) Unwrap() error { return ErrInsufficientData }

// ParseGroups reads groups of unsigned integers separated by blank lines.
func ParseGroups(raw string) ([][]uint64, error) {
	blocks := input.Blocks(raw)
	groups := make([][]uint64, 0, len(blocks))
	for bi, block := range blocks {
		group := make([]uint64, 0, len(block))
		for _, entry := range block {
			n, err := strconv.ParseUint(entry, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("calories.ParseGroups: group %d: %w", bi+1, err)
			}
			group = append(group, n)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Sums returns the total of each group, in input order.
func Sums(groups [][]uint64) []uint64 {
	sums := make([]uint64, len(groups))
	for i, g := range groups {
		for _, n := range g {
			sums[i] += n
		}
	}
	return sums
}

// MaxGroupSum returns the largest group total.
func MaxGroupSum(groups [][]uint64) (uint64, error) {
	if len(groups) == 0 {
		return 0, &InsufficientDataError{Want: 1, Got: 0}
	}
	var best uint64
	for _, s := range Sums(groups) {
		if s > best {
			best = s
		}
	}
	return best, nil
}

// TopGroupSum returns the combined total of the k largest groups.
func TopGroupSum(groups [][]uint64, k int) (uint64, error) {
	if k <= 0 {
		return 0, fmt.Errorf("calories.TopGroupSum: k must be positive, got %d", k)
	}
	if len(groups) < k {
		return 0, &InsufficientDataError{Want: k, Got: len(groups)}
	}
	sums := Sums(groups)
	sort.SliceStable(sums, func(i, j int) bool {
		return sums[i] > sums[j]
	})
	var total uint64
	for _, s := range sums[:k] {
		total += s
	}
	return total, nil
}
