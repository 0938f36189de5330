package searcher

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/tomjwolc/monte/game"
)

// node carries the search statistics for one reachable position. Children
// are keyed by choice for O(1) rebasing; order remembers expansion order so
// that iteration, and with it a seeded search, is reproducible.
type node[C comparable] struct {
	parent   *node[C]
	mover    int
	result   game.Result
	untried  []C
	order    []C
	children map[C]*node[C]
	rewards  []float64
	visits   int
}

func newNode[C comparable](parent *node[C], state game.State[C], players int) (*node[C], error) {
	result := state.Winner()
	if winner, ok := result.Winner(); ok && (winner < 0 || winner >= players) {
		return nil, fmt.Errorf("%w: winner %d with %d players", ErrPlayerRange, winner, players)
	}

	n := &node[C]{
		parent:  parent,
		result:  result,
		rewards: make([]float64, players),
	}
	if result.Over() {
		return n, nil
	}

	mover := state.Turn()
	if mover < 0 || mover >= players {
		return nil, fmt.Errorf("%w: mover %d with %d players", ErrPlayerRange, mover, players)
	}
	n.mover = mover
	n.untried = state.Choices()
	if len(n.untried) == 0 {
		return nil, fmt.Errorf("%w: mover %d has nothing to play", ErrNoLegalChoices, mover)
	}
	n.children = make(map[C]*node[C], len(n.untried))
	return n, nil
}

// popUntried removes and returns a uniformly picked unexpanded choice.
func (n *node[C]) popUntried(rng *rand.Rand) C {
	i := rng.Intn(len(n.untried))
	last := len(n.untried) - 1
	choice := n.untried[i]
	n.untried[i] = n.untried[last]
	n.untried = n.untried[:last]
	return choice
}

// selectChild scores every child from the mover's perspective and returns
// the best, separating exact ties with the tie-break rule.
func (n *node[C]) selectChild(rng *rand.Rand, score SelectionPolicy, tieBreak TieBreak) (C, *node[C]) {
	best := math.Inf(-1)
	var ties []C
	for _, choice := range n.order {
		child := n.children[choice]
		s := math.Inf(1) // Prioritize unexplored nodes
		if child.visits > 0 {
			s = score(rng, child.rewards[n.mover], float64(child.visits), float64(n.visits))
		}
		switch {
		case s > best:
			best = s
			ties = append(ties[:0], choice)
		case s == best:
			ties = append(ties, choice)
		}
	}

	choice := ties[0]
	if tieBreak == TieBreakRandom && len(ties) > 1 {
		choice = ties[rng.Intn(len(ties))]
	}
	return choice, n.children[choice]
}
