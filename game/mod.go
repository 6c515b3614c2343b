package game

// Player identifies one of the two competitors.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// State should be immutable - Play always returns a new copy with the active
// and inactive players swapped
type State interface {
	ActivePlayer() Player
	InactivePlayer() Player
	Opponent(player Player) Player
	// LegalMoves returns the active player's moves in a fixed order
	LegalMoves() []Move
	LegalMovesFor(player Player) []Move
	Play(Move) State
	IsLoser(player Player) bool
	IsWinner(player Player) bool
	Location(player Player) (Move, bool)
	Width() int
	Height() int
	BlankSpaces() []Move
}

// Evaluates the game state from the given player's point of view. Must return
// -Inf when the player has lost, +Inf when the player has won and a finite
// score otherwise.
type Evaluate func(state State, player Player) float64
