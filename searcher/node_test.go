package searcher

import (
	"isolation/game"
	"time"

	"golang.org/x/exp/rand"
)

// tree is a hand built game tree. Leaves and cutoff nodes are scored with
// value from Player1's point of view.
type tree struct {
	value    float64
	children []*tree
}

func leaf(value float64) *tree {
	return &tree{value: value}
}

func branch(children ...*tree) *tree {
	return &tree{children: children}
}

// randomTree builds a tree of the given height where every node carries a
// value, so searches cut off above the leaves still have something to score
func randomTree(r *rand.Rand, height, width int) *tree {
	node := &tree{value: float64(r.Intn(201) - 100)}
	if height == 0 {
		return node
	}
	for i := 0; i < width; i++ {
		node.children = append(node.children, randomTree(r, height-1, width))
	}
	return node
}

type mockState struct {
	node   *tree
	active game.Player
}

func newMockState(root *tree) mockState {
	return mockState{node: root, active: game.Player1}
}

func (m mockState) ActivePlayer() game.Player {
	return m.active
}

func (m mockState) InactivePlayer() game.Player {
	return m.Opponent(m.active)
}

func (m mockState) Opponent(player game.Player) game.Player {
	if player == game.Player1 {
		return game.Player2
	}
	return game.Player1
}

func (m mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.node.children))
	for i := range m.node.children {
		moves[i] = game.Move{Row: 0, Col: i}
	}
	return moves
}

func (m mockState) LegalMovesFor(player game.Player) []game.Move {
	if player == m.active {
		return m.LegalMoves()
	}
	return nil
}

func (m mockState) Play(move game.Move) game.State {
	return mockState{node: m.node.children[move.Col], active: m.InactivePlayer()}
}

func (m mockState) IsLoser(player game.Player) bool {
	return false
}

func (m mockState) IsWinner(player game.Player) bool {
	return false
}

func (m mockState) Location(player game.Player) (game.Move, bool) {
	return game.NoMove, false
}

func (m mockState) Width() int {
	return 0
}

func (m mockState) Height() int {
	return 0
}

func (m mockState) BlankSpaces() []game.Move {
	return nil
}

// treeValue scores a mock state for the given player
func treeValue(s game.State, player game.Player) float64 {
	value := s.(mockState).node.value
	if player == game.Player1 {
		return value
	}
	return -value
}

// probe wraps an evaluation function and records every value it returns
type probe struct {
	evaluate game.Evaluate
	values   []float64
}

func (p *probe) Evaluate(s game.State, player game.Player) float64 {
	value := p.evaluate(s, player)
	p.values = append(p.values, value)
	return value
}

func (p *probe) calls() int {
	return len(p.values)
}

// countdownTimer has plenty of time left for the first limit checks and none
// afterwards
type countdownTimer struct {
	limit  int
	checks int
}

func (t *countdownTimer) Remaining() time.Duration {
	t.checks++
	if t.checks > t.limit {
		return 0
	}
	return time.Hour
}

func expiredTimer() Timer {
	return TimerFunc(func() time.Duration { return 0 })
}
