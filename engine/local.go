package engine

import (
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const DefaultTurnDuration = 150 * time.Millisecond

type Option func(e *Engine)

// Engine plays a single game between two agents.
type Engine struct {
	ID       uuid.UUID
	Board    *game.Board
	agents   map[game.Player]agent.Agent
	turn     time.Duration
	openings int
	random   *rand.Rand
}

func WithTurnDuration(turn time.Duration) Option {
	return func(e *Engine) {
		if turn > 0 {
			e.turn = turn
		}
	}
}

// WithRandomOpenings plays the first n moves at random before the agents
// take over.
func WithRandomOpenings(n int, seed uint64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.openings = n
			e.random = rand.New(rand.NewSource(seed))
		}
	}
}

func New(board *game.Board, first, second agent.Agent, options ...Option) *Engine {
	if first == nil || second == nil {
		panic("need two agents")
	}
	e := &Engine{
		ID:    uuid.New(),
		Board: board,
		agents: map[game.Player]agent.Agent{
			board.ActivePlayer():   first,
			board.InactivePlayer(): second,
		},
		turn: DefaultTurnDuration,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the game until one player is isolated or forfeits.
func (e *Engine) Run() (game.Player, GameMetric, []MoveMetric) {
	gameMetric := GameMetric{
		ID:             e.ID,
		StartingPlayer: e.Board.ActivePlayer(),
		StartTime:      time.Now(),
	}
	log.Info().Str("game", e.ID.String()).Msgf("player %d is starting on a %dx%d board", e.Board.ActivePlayer(), e.Board.Width(), e.Board.Height())

	e.playOpenings()

	var moveMetrics []MoveMetric
	for {
		current := e.Board.ActivePlayer()
		legal := e.Board.LegalMoves()
		if len(legal) == 0 {
			gameMetric.Reason = Isolated
			break
		}

		timer := searcher.NewDeadline(e.turn)
		move, metric := e.agents[current].FindMove(e.Board, timer)
		remaining := timer.Remaining()
		moveMetrics = append(moveMetrics, MoveMetric{
			Step:         e.Board.MoveCount() + 1,
			Player:       current,
			Move:         move,
			SearchMetric: metric,
		})
		log.Debug().Str("game", e.ID.String()).
			Int("player", int(current)).
			Str("move", move.String()).
			Int("depth", metric.Depth).
			Int("nodes", metric.Nodes).
			Dur("duration", metric.Duration).
			Msg("move")

		if remaining < 0 {
			gameMetric.Reason = Timeout
			break
		}
		if move == game.NoMove {
			gameMetric.Reason = Forfeit
			break
		}
		if !slices.Contains(legal, move) {
			gameMetric.Reason = Illegal
			break
		}

		next, err := e.Board.Forecast(move)
		if err != nil {
			panic(err) // Checked against legal moves above
		}
		e.Board = next
	}

	// The player to move is the one that is isolated or forfeited
	gameMetric.Winner = e.Board.InactivePlayer()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.Board.MoveCount()

	log.Info().Str("game", e.ID.String()).Str("reason", gameMetric.Reason).Msgf("player %d wins after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	return gameMetric.Winner, gameMetric, moveMetrics
}

func (e *Engine) playOpenings() {
	for i := 0; i < e.openings; i++ {
		moves := e.Board.LegalMoves()
		if len(moves) == 0 {
			return
		}
		move := moves[e.random.Intn(len(moves))] // Random opening policy
		e.Board = e.Board.Play(move).(*game.Board)
		log.Debug().Str("game", e.ID.String()).Str("move", move.String()).Msg("random opening")
	}
}
