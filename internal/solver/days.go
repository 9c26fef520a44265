package solver

import (
	"github.com/dshills/aoc/internal/calories"
	"github.com/dshills/aoc/internal/rps"
)

var day01 = Solver{
	Day:   1,
	Title: "Calorie Counting",
	PartOne: func(input string) (Answer, error) {
		groups, err := calories.ParseGroups(input)
		if err != nil {
			return Answer{}, err
		}
		best, err := calories.MaxGroupSum(groups)
		if err != nil {
			return Answer{}, err
		}
		return Solution(best), nil
	},
	PartTwo: func(input string) (Answer, error) {
		groups, err := calories.ParseGroups(input)
		if err != nil {
			return Answer{}, err
		}
		top, err := calories.TopGroupSum(groups, calories.DefaultTop)
		if err != nil {
			return Answer{}, err
		}
		return Solution(top), nil
	},
}

var day02 = Solver{
	Day:     2,
	Title:   "Rock Paper Scissors",
	PartOne: strategyGuide(rps.StrategyMove),
	PartTwo: strategyGuide(rps.StrategyOutcome),
}

func strategyGuide(strategy rps.Strategy) PartFunc {
	return func(input string) (Answer, error) {
		tally, err := rps.TotalScore(input, strategy)
		if err != nil {
			return Answer{}, err
		}
		return Solution(tally.Total), nil
	}
}
