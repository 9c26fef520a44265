// Package rps scores rounds of rock-paper-scissors from a strategy guide.
package rps

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCode matches every UnknownCodeError.
	ErrUnknownCode = errors.New("unknown code")
	// ErrInvalidValue is returned when a Signal, Outcome or Strategy is out of range.
	ErrInvalidValue = errors.New("invalid value")
)

// Round is one unresolved line of the strategy guide.
type Round struct {
	Opponent string
	Second   string
}

// FormatError reports a line that does not hold exactly two tokens.
type FormatError struct {
	Line   string
	Fields int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("round %q has %d fields, want 2", e.Line, e.Fields)
}

// UnknownCodeError reports a code outside the known alphabet.
type UnknownCodeError struct {
	Kind string
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %q", e.Kind, e.Code)
}

func (e *UnknownCodeError) Unwrap() error { return ErrUnknownCode }

// ParseRound splits a line into its two whitespace-separated tokens.
func ParseRound(line string) (Round, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Round{}, &FormatError{Line: line, Fields: len(fields)}
	}
	return Round{Opponent: fields[0], Second: fields[1]}, nil
}

// OpponentSignal resolves the opponent column: A, B, C.
func OpponentSignal(code string) (Signal, error) {
	switch code {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	}
	return 0, &UnknownCodeError{Kind: "opponent", Code: code}
}

// MoveSignal resolves the second column as a signal: X, Y, Z.
func MoveSignal(code string) (Signal, error) {
	switch code {
	case "X":
		return Rock, nil
	case "Y":
		return Paper, nil
	case "Z":
		return Scissors, nil
	}
	return 0, &UnknownCodeError{Kind: "move", Code: code}
}

// DesiredOutcome resolves the second column as an outcome: X, Y, Z.
func DesiredOutcome(code string) (Outcome, error) {
	switch code {
	case "X":
		return Lose, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, &UnknownCodeError{Kind: "outcome", Code: code}
}
