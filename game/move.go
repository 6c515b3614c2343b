package game

import "fmt"

// Move is the cell a player moves its piece to.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when there is no legal move to play.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
