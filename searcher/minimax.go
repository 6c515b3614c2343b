package searcher

import (
	"isolation/game"
	"math"
)

// Minimax is an exhaustive depth-limited minimax search.
type Minimax struct {
	config Config
}

func NewMinimax(config Config) *Minimax {
	return &Minimax{config: config}
}

// ChooseMove returns the active player's best move at the given depth, or
// NoMove with ErrSearchTimeout if the time budget runs out.
func (m *Minimax) ChooseMove(state game.State, depth int, timer Timer) (game.Move, error) {
	result, err := m.Search(state, depth, timer)
	if err != nil {
		return game.NoMove, err
	}
	return result.Move, nil
}

func (m *Minimax) Search(state game.State, depth int, timer Timer) (Result, error) {
	r := m.config.newRun(timer)
	if err := r.enter(); err != nil {
		return Result{Move: game.NoMove}, err
	}

	// The first move with the maximum value wins ties
	best := Result{Move: game.NoMove, Value: math.Inf(-1)}
	for i, move := range state.LegalMoves() {
		value, err := r.minimax(state.Play(move), depth-1, false)
		if err != nil {
			return Result{Move: game.NoMove}, err
		}
		if i == 0 || value > best.Value {
			best.Move, best.Value = move, value
		}
	}
	best.Exhaustive = !r.horizon
	return best, nil
}

func (r *run) minimax(state game.State, depth int, maximizing bool) (float64, error) {
	if err := r.enter(); err != nil {
		return 0, err
	}

	moves := state.LegalMoves()
	if r.leaf(depth, moves) {
		return r.score(state, maximizing), nil
	}

	if maximizing {
		best := math.Inf(-1)
		for _, move := range moves {
			value, err := r.minimax(state.Play(move), depth-1, false)
			if err != nil {
				return 0, err
			}
			best = math.Max(best, value)
		}
		return best, nil
	}

	best := math.Inf(1)
	for _, move := range moves {
		value, err := r.minimax(state.Play(move), depth-1, true)
		if err != nil {
			return 0, err
		}
		best = math.Min(best, value)
	}
	return best, nil
}
