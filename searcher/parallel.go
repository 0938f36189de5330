package searcher

import (
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/tomjwolc/monte/game"
)

// growParallel grows the configured number of independent trees, each
// worker against the full budget with its own derived seed and its own copy
// of the state. Worker 0 grows the caller's tree so reuse via Advance keeps
// paying off; the extra trees are returned for the recommendation to fold
// in their root statistics.
func (m *MCTS[C]) growParallel(t *Tree[C], state game.State[C], collector Collector) ([]*Tree[C], error) {
	extras := make([]*Tree[C], m.cfg.trees-1)

	var group errgroup.Group
	for i := 0; i < m.cfg.trees; i++ {
		worker := i
		base := state
		if worker > 0 {
			base = state.Clone()
		}

		group.Go(func() error {
			tree := t
			if worker > 0 {
				root, err := newNode[C](nil, base, t.players)
				if err != nil {
					return err
				}
				tree = &Tree[C]{root: root, players: t.players}
				extras[worker-1] = tree
			}

			rng := rand.New(rand.NewSource(m.cfg.seed + uint64(worker)))
			return m.grow(tree.root, base, rng, collector)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return extras, nil
}
