package rps

import (
	"errors"
	"fmt"
	"strings"
)

// Play decides the outcome of mine against opponent. It returns the zero
// Outcome unless both signals are valid.
func Play(opponent, mine Signal) Outcome {
	switch {
	case !opponent.Valid() || !mine.Valid():
		return 0
	case opponent == mine:
		return Draw
	case opponent.Beats() == mine:
		return Lose
	default:
		return Win
	}
}

// Respond picks the signal that reaches want against opponent. It returns the
// zero Signal unless both arguments are valid.
func Respond(opponent Signal, want Outcome) Signal {
	if !opponent.Valid() {
		return 0
	}
	switch want {
	case Win:
		return opponent.BeatenBy()
	case Lose:
		return opponent.Beats()
	case Draw:
		return opponent
	}
	return 0
}

// ScoreMove scores a round where the player's signal is given.
func ScoreMove(opponent, mine Signal) (uint64, error) {
	if !opponent.Valid() || !mine.Valid() {
		return 0, fmt.Errorf("rps.ScoreMove: %w: %d vs %d", ErrInvalidValue, opponent, mine)
	}
	return Play(opponent, mine).Bonus() + mine.ShapeValue(), nil
}

// ScoreOutcome scores a round where the outcome to reach is given.
func ScoreOutcome(opponent Signal, want Outcome) (uint64, error) {
	if !opponent.Valid() || !want.Valid() {
		return 0, fmt.Errorf("rps.ScoreOutcome: %w: %d wanting %d", ErrInvalidValue, opponent, want)
	}
	return want.Bonus() + Respond(opponent, want).ShapeValue(), nil
}

// ScoreRound resolves a round's codes under strategy and scores it.
func ScoreRound(r Round, strategy Strategy) (uint64, error) {
	if !strategy.Valid() {
		return 0, fmt.Errorf("rps.ScoreRound: %w: strategy %d", ErrInvalidValue, strategy)
	}
	opponent, err := OpponentSignal(r.Opponent)
	if err != nil {
		return 0, err
	}
	if strategy == StrategyMove {
		mine, err := MoveSignal(r.Second)
		if err != nil {
			return 0, err
		}
		return ScoreMove(opponent, mine)
	}
	want, err := DesiredOutcome(r.Second)
	if err != nil {
		return 0, err
	}
	return ScoreOutcome(opponent, want)
}

// Tally is the result of scoring a whole strategy guide.
type Tally struct {
	Total   uint64
	Rounds  int
	Skipped int
}

// TotalScore scores every line of input. Lines that fail to parse count as zero
// and are recorded in Skipped; unknown codes abort.
func TotalScore(input string, strategy Strategy) (Tally, error) {
	var t Tally
	for i, line := range strings.Split(input, "\n") {
		r, err := ParseRound(line)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				t.Skipped++
				continue
			}
			return t, err
		}
		score, err := ScoreRound(r, strategy)
		if err != nil {
			return t, fmt.Errorf("rps.TotalScore: line %d: %w", i+1, err)
		}
		t.Total += score
		t.Rounds++
	}
	return t, nil
}
