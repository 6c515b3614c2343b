package engine

import (
	"isolation/game"
	"isolation/searcher"
	"time"

	"github.com/google/uuid"
)

// Reasons a game ends
const (
	Isolated = "isolated" // The loser had no legal move left
	Forfeit  = "forfeit"  // The loser returned NoMove
	Illegal  = "illegal"  // The loser returned an illegal move
	Timeout  = "timeout"  // The loser overran its turn
)

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	searcher.SearchMetric
}

type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer game.Player
	Winner         game.Player
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}
