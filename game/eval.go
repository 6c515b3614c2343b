package game

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

// Blank cell counts at which the heuristics switch strategy (tuned on 7x7)
const (
	distanceEndgameBlanks = 30
	centerEndgameBlanks   = 20
)

var evaluators = map[string]Evaluate{
	"opponent-distance":   EvaluateOpponentDistance,
	"center-control":      EvaluateCenterControl,
	"normalized-distance": EvaluateNormalizedDistance,
}

// Evaluator looks up a heuristic by its configuration name.
func Evaluator(name string) (Evaluate, error) {
	evaluate, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEvaluator)
	}
	return evaluate, nil
}

// EvaluatorNames lists the names accepted by Evaluator.
func EvaluatorNames() []string {
	return []string{"opponent-distance", "center-control", "normalized-distance"}
}

// EvaluateOpponentDistance keeps as far away from the opponent as possible
// while the board is open, then maximizes the mobility difference once the
// board fills up
func EvaluateOpponentDistance(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}

	own, ok1 := s.Location(player)
	other, ok2 := s.Location(s.Opponent(player))
	if !ok1 || !ok2 || len(s.BlankSpaces()) <= distanceEndgameBlanks {
		return mobility(s, player)
	}

	dy, dx := float64(other.Row-own.Row), float64(other.Col-own.Col)
	return dy*dy + dx*dx
}

// EvaluateCenterControl fills up the center cells first and roams the area
// around them later on
func EvaluateCenterControl(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}

	own, ok := s.Location(player)
	if !ok {
		return mobility(s, player)
	}

	w, h := float64(s.Width())/2, float64(s.Height())/2
	dy, dx := h-float64(own.Row), w-float64(own.Col)
	distance := dy*dy + dx*dx
	if len(s.BlankSpaces()) > centerEndgameBlanks {
		return -distance
	}
	return distance
}

// EvaluateNormalizedDistance blends the manhattan distance to the opponent
// with the manhattan distance to the center, each scaled to its maximum on
// the board
func EvaluateNormalizedDistance(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}

	own, ok1 := s.Location(player)
	other, ok2 := s.Location(s.Opponent(player))
	if !ok1 || !ok2 {
		return mobility(s, player)
	}

	w, h := float64(s.Width())/2, float64(s.Height())/2
	opponentSpan := float64(s.Width() + s.Height())
	centerSpan := math.Max(float64(s.Width()+s.Height()-2)/2, 1)

	opponentDistance := math.Abs(float64(own.Row-other.Row)) + math.Abs(float64(own.Col-other.Col))
	centerDistance := math.Abs(float64(own.Row)-h) + math.Abs(float64(own.Col)-w)
	return opponentDistance/opponentSpan + centerDistance/centerSpan
}

// outcome scores finished games: -Inf for the loser, +Inf for the winner
func outcome(s State, player Player) (float64, bool) {
	if s.IsLoser(player) {
		return math.Inf(-1), true
	}
	if s.IsWinner(player) {
		return math.Inf(1), true
	}
	return 0, false
}

// mobility is the player's number of moves minus the opponent's
func mobility(s State, player Player) float64 {
	own := len(s.LegalMovesFor(player))
	other := len(s.LegalMovesFor(s.Opponent(player)))
	return float64(own - other)
}
