package agent

import (
	"errors"
	"fmt"
	"isolation/game"
	"isolation/searcher"
)

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// Search algorithm names
const (
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
)

type Agent interface {
	// FindMove returns the move to play before the timer runs out, NoMove if
	// there is none, and search metrics (if collected)
	FindMove(state game.State, timer searcher.Timer) (game.Move, searcher.SearchMetric)
}

// New builds a player for the algorithm, searching either at the configured
// fixed depth or by iterative deepening.
func New(algorithm string, iterative bool, options ...searcher.Option) (Agent, error) {
	config := searcher.NewConfig(options...)
	switch algorithm {
	case Minimax:
		return player{search: searcher.NewMinimax(config), config: config, iterative: iterative}, nil
	case AlphaBeta:
		return player{search: searcher.NewAlphaBeta(config), config: config, iterative: iterative}, nil
	default:
		return nil, fmt.Errorf("%q: %w", algorithm, ErrUnknownAlgorithm)
	}
}
