package searcher

import (
	"isolation/game"
	"math"
)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning. Moves
// are searched in the order the state enumerates them.
type AlphaBeta struct {
	config Config
}

func NewAlphaBeta(config Config) *AlphaBeta {
	return &AlphaBeta{config: config}
}

// ChooseMove returns the active player's best move at the given depth, or
// NoMove with ErrSearchTimeout if the time budget runs out.
func (a *AlphaBeta) ChooseMove(state game.State, depth int, timer Timer) (game.Move, error) {
	result, err := a.Search(state, depth, timer)
	if err != nil {
		return game.NoMove, err
	}
	return result.Move, nil
}

func (a *AlphaBeta) Search(state game.State, depth int, timer Timer) (Result, error) {
	return a.SearchWindow(state, depth, math.Inf(-1), math.Inf(1), timer)
}

// SearchWindow searches with an initial (alpha, beta) window.
func (a *AlphaBeta) SearchWindow(state game.State, depth int, alpha, beta float64, timer Timer) (Result, error) {
	r := a.config.newRun(timer)
	if err := r.enter(); err != nil {
		return Result{Move: game.NoMove}, err
	}

	// The root frame was already checked in, so search its children directly
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Result{Move: game.NoMove, Value: math.Inf(-1), Exhaustive: true}, nil
	}
	move, value, err := r.maxValue(state, moves, alpha, beta, depth)
	if err != nil {
		return Result{Move: game.NoMove}, err
	}
	return Result{Move: move, Value: value, Exhaustive: !r.horizon}, nil
}

func (r *run) alphabeta(state game.State, alpha, beta float64, depth int, maximizing bool) (game.Move, float64, error) {
	if err := r.enter(); err != nil {
		return game.NoMove, 0, err
	}

	moves := state.LegalMoves()
	if r.leaf(depth, moves) {
		return game.NoMove, r.score(state, maximizing), nil
	}

	if maximizing {
		return r.maxValue(state, moves, alpha, beta, depth)
	}
	return r.minValue(state, moves, alpha, beta, depth)
}

func (r *run) maxValue(state game.State, moves []game.Move, alpha, beta float64, depth int) (game.Move, float64, error) {
	best := moves[0]
	bestValue := math.Inf(-1)
	for _, move := range moves {
		_, value, err := r.alphabeta(state.Play(move), alpha, beta, depth-1, false)
		if err != nil {
			return game.NoMove, 0, err
		}
		bestValue = math.Max(bestValue, value)
		if value >= beta { // The minimizer will never let the game get here
			r.metrics.AddCutoff()
			return move, bestValue, nil
		}
		if bestValue > alpha {
			best = move
			alpha = bestValue
		}
	}
	return best, bestValue, nil
}

func (r *run) minValue(state game.State, moves []game.Move, alpha, beta float64, depth int) (game.Move, float64, error) {
	best := moves[0]
	bestValue := math.Inf(1)
	for _, move := range moves {
		_, value, err := r.alphabeta(state.Play(move), alpha, beta, depth-1, true)
		if err != nil {
			return game.NoMove, 0, err
		}
		bestValue = math.Min(bestValue, value)
		if value <= alpha { // The maximizer will never let the game get here
			r.metrics.AddCutoff()
			return move, bestValue, nil
		}
		if bestValue < beta {
			best = move
			beta = bestValue
		}
	}
	return best, bestValue, nil
}
