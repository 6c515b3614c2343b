package agent

import (
	"isolation/game"
	"isolation/searcher"
)

type player struct {
	search    searcher.DepthLimited
	config    searcher.Config
	iterative bool
}

// NewMinimaxPlayer returns a player running a single minimax search at the
// configured depth.
func NewMinimaxPlayer(options ...searcher.Option) Agent {
	config := searcher.NewConfig(options...)
	return player{search: searcher.NewMinimax(config), config: config}
}

// NewAlphaBetaPlayer returns a player running alpha-beta searches by
// iterative deepening until its time runs out.
func NewAlphaBetaPlayer(options ...searcher.Option) Agent {
	config := searcher.NewConfig(options...)
	return player{search: searcher.NewAlphaBeta(config), config: config, iterative: true}
}

func (p player) FindMove(state game.State, timer searcher.Timer) (game.Move, searcher.SearchMetric) {
	metrics := p.config.Metrics
	metrics.Start()

	var move game.Move
	if p.iterative {
		move, _ = searcher.Deepen(p.search, state, timer, p.config.MaxDepth, metrics)
	} else {
		move = searcher.FixedDepth(p.search, state, p.config.SearchDepth, timer, metrics)
	}
	return move, metrics.Complete()
}
