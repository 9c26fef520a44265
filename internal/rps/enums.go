package rps

// Signal is one of the three hand shapes. The zero value is not a valid signal.
type Signal int

const (
	Rock Signal = iota + 1
	Paper
	Scissors
)

// Signals lists every valid signal in shape-value order.
var Signals = []Signal{Rock, Paper, Scissors}

func (s Signal) Valid() bool {
	switch s {
	case Rock, Paper, Scissors:
		return true
	}
	return false
}

func (s Signal) String() string {
	switch s {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "Unknown"
	}
}

// ShapeValue is the points a signal earns when played.
func (s Signal) ShapeValue() uint64 {
	switch s {
	case Rock:
		return 1
	case Paper:
		return 2
	case Scissors:
		return 3
	default:
		return 0
	}
}

// Beats returns the signal s defeats.
func (s Signal) Beats() Signal {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	case Scissors:
		return Paper
	default:
		return 0
	}
}

// BeatenBy returns the signal that defeats s.
func (s Signal) BeatenBy() Signal {
	switch s {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	case Scissors:
		return Rock
	default:
		return 0
	}
}

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Lose Outcome = iota + 1
	Draw
	Win
)

// Outcomes lists every valid outcome in bonus order.
var Outcomes = []Outcome{Lose, Draw, Win}

func (o Outcome) Valid() bool {
	switch o {
	case Lose, Draw, Win:
		return true
	}
	return false
}

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	default:
		return "Unknown"
	}
}

// Bonus is the points awarded for the outcome.
func (o Outcome) Bonus() uint64 {
	switch o {
	case Draw:
		return 3
	case Win:
		return 6
	default:
		return 0
	}
}

// Strategy selects how the second column of a round is read.
type Strategy int

const (
	// StrategyMove reads the second column as the signal to play.
	StrategyMove Strategy = iota + 1
	// StrategyOutcome reads the second column as the outcome to reach.
	StrategyOutcome
)

func (s Strategy) Valid() bool {
	return s == StrategyMove || s == StrategyOutcome
}

func (s Strategy) String() string {
	switch s {
	case StrategyMove:
		return "move"
	case StrategyOutcome:
		return "outcome"
	default:
		return "unknown"
	}
}
