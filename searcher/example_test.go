package searcher_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomjwolc/monte/game"
	"github.com/tomjwolc/monte/searcher"
)

// nim is the classic subtraction game: two players alternate taking one to
// three tokens from a pile, and whoever takes the last token wins. Small
// enough to search exhaustively, real enough to drive a whole game loop.
type nim struct {
	pile int
	turn int
}

func (n *nim) PlayerCount() int { return 2 }

func (n *nim) Turn() int { return n.turn }

func (n *nim) Choices() []int {
	take := n.pile
	if take > 3 {
		take = 3
	}
	choices := make([]int, take)
	for i := range choices {
		choices[i] = i + 1
	}
	return choices
}

func (n *nim) Apply(take int) {
	n.pile -= take
	if n.pile > 0 {
		n.turn = 1 - n.turn
	}
}

func (n *nim) Winner() game.Result {
	if n.pile > 0 {
		return game.Ongoing()
	}
	return game.WonBy(n.turn)
}

func (n *nim) Clone() game.State[int] {
	clone := *n
	return &clone
}

// TestSelfPlay drives a full game through the public API: one searcher per
// player, each keeping its own tree across real moves and rebasing it with
// Advance after every play.
func TestSelfPlay(t *testing.T) {
	state := &nim{pile: 10}
	agents := []*searcher.MCTS[int]{
		searcher.NewMCTS[int](searcher.WithIterations(500), searcher.WithSeed(3)),
		searcher.NewMCTS[int](searcher.WithIterations(500), searcher.WithSeed(7)),
	}
	trees := []*searcher.Tree[int]{searcher.NewTree[int](), searcher.NewTree[int]()}

	plies := 0
	for !state.Winner().Over() {
		require.LessOrEqual(t, plies, 10, "Ten tokens allow at most ten plies")
		mover := state.Turn()

		take, err := agents[mover].SearchTree(trees[mover], state)
		require.NoError(t, err)
		require.Contains(t, state.Choices(), take, "Recommendations should always be legal")

		state.Apply(take)
		for _, tree := range trees {
			tree.Advance(take)
		}
		plies++
	}

	winner, ok := state.Winner().Winner()
	require.True(t, ok, "Nim never draws")
	require.Contains(t, []int{0, 1}, winner)
}

// TestCloneIsolation pins the duplication contract the engine relies on:
// playing out a clone must leave the original position untouched.
func TestCloneIsolation(t *testing.T) {
	original := &nim{pile: 10}
	before := original.Choices()

	clone := original.Clone()
	for !clone.Winner().Over() {
		clone.Apply(clone.Choices()[0])
	}

	require.Equal(t, game.Ongoing(), original.Winner(), "The original should still be undecided")
	require.Equal(t, before, original.Choices(), "The original's choices should be unchanged")
}
