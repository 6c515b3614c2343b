package searcher

import (
	"errors"
	"isolation/game"

	"github.com/rs/zerolog/log"
)

// FixedDepth runs a single search at the given depth. It has no fallback of
// its own: a timeout yields NoMove.
func FixedDepth(search DepthLimited, state game.State, depth int, timer Timer, metrics Collector) game.Move {
	result, err := search.Search(state, depth, timer)
	if errors.Is(err, ErrSearchTimeout) {
		metrics.SetTimedOut()
		log.Debug().Int("depth", depth).Msg("fixed-depth search timed out")
		return game.NoMove
	}
	if err != nil {
		panic(err) // Searches only fail by timing out
	}
	metrics.CompleteDepth(depth)
	return result.Move
}

// Deepen searches at depth 1, 2, 3, ... until the time budget runs out and
// returns the best move of the deepest completed search along with that
// depth. A move, once found, is only ever replaced by another move: returning
// NoMove forfeits the game. maxDepth bounds the loop when positive.
func Deepen(search DepthLimited, state game.State, timer Timer, maxDepth int, metrics Collector) (game.Move, int) {
	best := game.NoMove
	completed := 0
	for depth := 1; maxDepth <= 0 || depth <= maxDepth; depth++ {
		result, err := search.Search(state, depth, timer)
		if errors.Is(err, ErrSearchTimeout) {
			metrics.SetTimedOut()
			log.Debug().Int("depth", depth).Str("best", best.String()).Msg("deepening timed out")
			return best, completed
		}
		if err != nil {
			panic(err) // Searches only fail by timing out
		}

		if result.Move != game.NoMove {
			best = result.Move
		}
		completed = depth
		metrics.CompleteDepth(depth)
		log.Trace().Int("depth", depth).Str("move", result.Move.String()).Float64("value", result.Value).Msg("completed depth")

		if result.Exhaustive { // Searching deeper cannot change the result
			break
		}
	}
	return best, completed
}
