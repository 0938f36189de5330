// Package searcher recommends choices for any game implementing the
// game.State contract, using Monte Carlo tree search.
package searcher

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/tomjwolc/monte/game"
)

// MCTS recommends choices by Monte Carlo tree search: repeated descents
// through a statistics tree, each ending in one random playout whose
// outcome is credited back along the visited path.
type MCTS[C comparable] struct {
	cfg config
}

// NewMCTS builds a searcher from the given options. The configuration is
// validated when a search starts, not here.
func NewMCTS[C comparable](options ...Option) *MCTS[C] {
	return &MCTS[C]{cfg: newConfig(options)}
}

// Search recommends a choice for the player on turn, building a throwaway
// tree. The caller's state is never modified.
func (m *MCTS[C]) Search(state game.State[C]) (C, error) {
	return m.SearchTree(NewTree[C](), state)
}

// SearchTree is Search with caller-owned statistics: the tree survives the
// call, so advancing it by the played choices keeps the explored subtree
// alive for the next search. The state must be the position the tree was
// advanced to; a detectable mismatch rebuilds the tree instead of reusing
// it.
func (m *MCTS[C]) SearchTree(t *Tree[C], state game.State[C]) (C, error) {
	var zero C

	if err := m.cfg.validate(); err != nil {
		return zero, err
	}
	players := state.PlayerCount()
	if players < 1 {
		return zero, fmt.Errorf("%w: adapter reports %d players", ErrPlayerRange, players)
	}
	if m.cfg.drawRewards != nil && len(m.cfg.drawRewards) != players {
		return zero, fmt.Errorf("%w: %d rewards for %d players", ErrDrawRewards, len(m.cfg.drawRewards), players)
	}
	if result := state.Winner(); result.Over() {
		return zero, fmt.Errorf("%w: %v", ErrGameOver, result)
	}

	id := uuid.NewString()
	collector := m.cfg.collector
	collector.Start(id)
	log.Debug().Msgf("search %s: mover %d of %d players, %d trees", id, state.Turn(), players, m.cfg.trees)

	if err := m.prepare(t, state, players, id, collector); err != nil {
		return zero, err
	}

	var extras []*Tree[C]
	rng := rand.New(rand.NewSource(m.cfg.seed))
	if m.cfg.trees > 1 {
		var err error
		if extras, err = m.growParallel(t, state, collector); err != nil {
			return zero, err
		}
		rng = rand.New(rand.NewSource(m.cfg.seed + uint64(m.cfg.trees)))
	} else if err := m.grow(t.root, state, rng, collector); err != nil {
		return zero, err
	}

	choice := m.recommend(t, extras, rng)

	metric := collector.Complete()
	if metric.CappedRollouts > 0 {
		log.Warn().Msgf("search %s: %d rollouts stopped at the %d-ply cap", id, metric.CappedRollouts, m.cfg.rolloutCap)
	}
	log.Debug().Msgf("search %s: %d iterations in %s", id, metric.Iterations, metric.Duration)
	return choice, nil
}

// prepare reuses the tree root when it matches the state, and builds a
// fresh root otherwise.
func (m *MCTS[C]) prepare(t *Tree[C], state game.State[C], players int, id string, collector Collector) error {
	if t.root != nil && t.players == players && !t.root.result.Over() {
		if t.root.mover == state.Turn() {
			collector.ReuseTree()
			return nil
		}
		log.Warn().Msgf("search %s: tree expects mover %d but state has mover %d, rebuilding", id, t.root.mover, state.Turn())
	}

	root, err := newNode[C](nil, state, players)
	if err != nil {
		return err
	}
	t.root = root
	t.players = players
	return nil
}

// grow runs iterations against the budget: a fixed count, a deadline, or
// whichever of the two runs out first. The first iteration always runs, so
// even a too-tight deadline yields a (poorly informed) recommendation.
func (m *MCTS[C]) grow(root *node[C], state game.State[C], rng *rand.Rand, collector Collector) error {
	var deadline time.Time
	if m.cfg.duration > 0 {
		deadline = time.Now().Add(m.cfg.duration)
	}

	for done := 0; ; done++ {
		if done > 0 {
			if m.cfg.iterations > 0 && done >= m.cfg.iterations {
				return nil
			}
			if !deadline.IsZero() && !time.Now().Before(deadline) {
				return nil
			}
		}
		if err := m.simulate(root, state, rng, collector); err != nil {
			return err
		}
		collector.AddIteration()
	}
}

// simulate runs one iteration: descend to a new or decided node, play out,
// credit the outcome to every node on the path.
func (m *MCTS[C]) simulate(root *node[C], state game.State[C], rng *rand.Rand, collector Collector) error {
	working := state.Clone()
	leaf, err := m.descend(root, working, rng)
	if err != nil {
		return err
	}

	result := leaf.result
	if result.Over() {
		// Decided positions skip the playout and replay their outcome
		collector.AddTerminalVisit()
	} else {
		var capped bool
		if result, capped, err = rollout(working, m.cfg.rolloutCap, rng); err != nil {
			return err
		}
		if capped {
			collector.AddCappedRollout()
		}
	}

	vector, err := m.outcome(result, len(root.rewards))
	if err != nil {
		return err
	}
	backup(leaf, vector)
	return nil
}

// descend walks the tree by the selection policy, expanding the first
// unexpanded choice it meets, and applies every step to the working state.
func (m *MCTS[C]) descend(root *node[C], state game.State[C], rng *rand.Rand) (*node[C], error) {
	n := root
	for !n.result.Over() {
		if len(n.untried) > 0 {
			return m.expand(n, state, rng)
		}

		choice, child := n.selectChild(rng, m.cfg.selection, m.cfg.tieBreak)
		state.Apply(choice)
		if !child.result.Over() && state.Turn() != child.mover {
			return nil, fmt.Errorf("%w: choice %v led to mover %d, expected %d", ErrTurnMismatch, choice, state.Turn(), child.mover)
		}
		n = child
	}
	return n, nil
}

// expand plays one unexpanded choice and adds the resulting node.
func (m *MCTS[C]) expand(n *node[C], state game.State[C], rng *rand.Rand) (*node[C], error) {
	choice := n.popUntried(rng)
	state.Apply(choice)

	child, err := newNode[C](n, state, len(n.rewards))
	if err != nil {
		return nil, err
	}
	n.children[choice] = child
	n.order = append(n.order, choice)
	return child, nil
}

// rollout plays uniformly random choices on the working state until the
// game decides itself or the ply cap stops a potentially endless playout,
// which counts as a draw.
func rollout[C comparable](state game.State[C], maxPlies int, rng *rand.Rand) (game.Result, bool, error) {
	result := state.Winner()
	for plies := 0; !result.Over(); plies++ {
		if plies >= maxPlies {
			return game.Draw(), true, nil
		}

		choices := state.Choices()
		if len(choices) == 0 {
			return game.Result{}, false, fmt.Errorf("%w: playout reached an undecided position with no choices", ErrNoLegalChoices)
		}
		state.Apply(choices[rng.Intn(len(choices))])
		result = state.Winner()
	}
	return result, false, nil
}

// outcome converts a result into the per-player reward vector that backup
// adds along the path.
func (m *MCTS[C]) outcome(result game.Result, players int) ([]float64, error) {
	vector := make([]float64, players)
	if winner, ok := result.Winner(); ok {
		if winner < 0 || winner >= players {
			return nil, fmt.Errorf("%w: winner %d with %d players", ErrPlayerRange, winner, players)
		}
		vector[winner] = 1
		return vector, nil
	}

	switch {
	case m.cfg.drawRewards != nil:
		copy(vector, m.cfg.drawRewards)
	case m.cfg.draw == DrawZero:
	default:
		floats.AddConst(1/float64(players), vector)
	}
	return vector, nil
}

// backup credits the playout to every node on the path, leaf to root.
func backup[C comparable](leaf *node[C], vector []float64) {
	for n := leaf; n != nil; n = n.parent {
		floats.Add(n.rewards, vector)
		n.visits++
	}
}

// recommend picks from the root children, folding in the extra trees a
// parallel search built. Visit counts are the default yardstick; average
// reward for the mover is the configurable alternative.
func (m *MCTS[C]) recommend(t *Tree[C], extras []*Tree[C], rng *rand.Rand) C {
	mover := t.root.mover

	var order []C
	totals := make(map[C]*candidate)
	for _, tree := range append([]*Tree[C]{t}, extras...) {
		for _, choice := range tree.root.order {
			child := tree.root.children[choice]
			total, ok := totals[choice]
			if !ok {
				total = &candidate{}
				totals[choice] = total
				order = append(order, choice)
			}
			total.visits += child.visits
			total.rewards += child.rewards[mover]
		}
	}
	if len(order) == 0 {
		panic("root has no expanded children")
	}

	best := math.Inf(-1)
	var ties []C
	for _, choice := range order {
		total := totals[choice]
		score := float64(total.visits)
		if m.cfg.recommend == RecommendHighestReward {
			score = total.rewards / float64(total.visits)
		}
		switch {
		case score > best:
			best = score
			ties = append(ties[:0], choice)
		case score == best:
			ties = append(ties, choice)
		}
	}

	choice := ties[0]
	if m.cfg.tieBreak == TieBreakRandom && len(ties) > 1 {
		choice = ties[rng.Intn(len(ties))]
	}
	return choice
}

// candidate totals one root choice's statistics across trees.
type candidate struct {
	visits  int
	rewards float64
}
