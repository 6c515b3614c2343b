package game

import (
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("illegal move")

// Queen directions, in the order moves are enumerated
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

const unplaced = -1

// Board is an Isolation position. Visited cells stay blocked for the rest of
// the game, and a player who cannot move on its turn loses.
type Board struct {
	width     int
	height    int
	blocked   []bool // Indexed by row*width + col
	locations [2]int // Cell index per player, unplaced before the first move
	active    Player // Player to move
	moveCount int    // Plies played so far
}

// NewBoard returns an empty board with Player1 to move.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	return &Board{
		width:     width,
		height:    height,
		blocked:   make([]bool, width*height),
		locations: [2]int{unplaced, unplaced},
		active:    Player1,
	}
}

// Copy returns a deep copy of the board
func (b *Board) Copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)
	return &Board{
		width:     b.width,
		height:    b.height,
		blocked:   blocked,
		locations: b.locations,
		active:    b.active,
		moveCount: b.moveCount,
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) MoveCount() int {
	return b.moveCount
}

func (b *Board) ActivePlayer() Player {
	return b.active
}

func (b *Board) InactivePlayer() Player {
	return b.Opponent(b.active)
}

func (b *Board) Opponent(player Player) Player {
	if player == Player1 {
		return Player2
	}
	return Player1
}

func (b *Board) Location(player Player) (Move, bool) {
	index := b.locations[player-1]
	if index == unplaced {
		return NoMove, false
	}
	return Move{Row: index / b.width, Col: index % b.width}, true
}

// BlankSpaces lists the cells nobody has visited yet in row-major order.
func (b *Board) BlankSpaces() []Move {
	blanks := make([]Move, 0, len(b.blocked))
	for index, blocked := range b.blocked {
		if !blocked {
			blanks = append(blanks, Move{Row: index / b.width, Col: index % b.width})
		}
	}
	return blanks
}

func (b *Board) LegalMoves() []Move {
	return b.LegalMovesFor(b.active)
}

// LegalMovesFor returns the cells the player can reach in a straight line
// through open cells. A player that has not been placed yet may move to any
// blank cell.
func (b *Board) LegalMovesFor(player Player) []Move {
	from, ok := b.Location(player)
	if !ok {
		return b.BlankSpaces()
	}

	moves := []Move{}
	for _, d := range directions {
		row, col := from.Row+d[0], from.Col+d[1]
		for b.isOpen(row, col) {
			moves = append(moves, Move{Row: row, Col: col})
			row += d[0]
			col += d[1]
		}
	}
	return moves
}

func (b *Board) isOpen(row, col int) bool {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return false
	}
	return !b.blocked[row*b.width+col]
}

// IsLegal reports whether the active player may move to the cell.
func (b *Board) IsLegal(move Move) bool {
	for _, legal := range b.LegalMoves() {
		if legal == move {
			return true
		}
	}
	return false
}

// Forecast returns the board after the active player moves, leaving the
// receiver untouched.
func (b *Board) Forecast(move Move) (*Board, error) {
	if !b.IsLegal(move) {
		return nil, fmt.Errorf("player %d cannot move to %v: %w", b.active, move, ErrIllegalMove)
	}

	next := b.Copy()
	index := move.Row*b.width + move.Col
	next.blocked[index] = true
	next.locations[b.active-1] = index
	next.active = b.InactivePlayer()
	next.moveCount++
	return next, nil
}

// Play is Forecast for callers that only ever pass legal moves. It panics on
// an illegal move.
func (b *Board) Play(move Move) State {
	next, err := b.Forecast(move)
	if err != nil {
		panic(err)
	}
	return next
}

func (b *Board) IsLoser(player Player) bool {
	return player == b.active && len(b.LegalMovesFor(player)) == 0
}

func (b *Board) IsWinner(player Player) bool {
	return player == b.InactivePlayer() && len(b.LegalMovesFor(b.active)) == 0
}
