package searcher

import (
	"fmt"
)

// Tree owns the statistics a search builds up from one position. Callers
// that keep it across real moves and rebase it with Advance hand the next
// search a head start; everyone else can let Search manage a throwaway one.
type Tree[C comparable] struct {
	root    *node[C]
	players int
}

// NewTree returns an empty tree for SearchTree to populate.
func NewTree[C comparable]() *Tree[C] {
	return &Tree[C]{}
}

// Advance rebases the tree onto the played choice, keeping that child's
// subtree and dropping the rest. It reports false and empties the tree when
// the choice was never expanded, in which case the next search rebuilds
// from scratch.
func (t *Tree[C]) Advance(choice C) bool {
	if t.root == nil {
		return false
	}
	child, ok := t.root.children[choice]
	if !ok {
		t.root = nil
		return false
	}
	child.parent = nil
	t.root = child
	return true
}

// Visits reports how many iterations have passed through the root.
func (t *Tree[C]) Visits() int {
	if t.root == nil {
		return 0
	}
	return t.root.visits
}

// Policy returns the share of search effort spent on each root choice. It
// is nil for a tree that has not been searched.
func (t *Tree[C]) Policy() map[C]float64 {
	if t.root == nil || len(t.root.order) == 0 {
		return nil
	}
	total := 0
	for _, child := range t.root.children {
		total += child.visits
	}
	policy := make(map[C]float64, len(t.root.order))
	for choice, child := range t.root.children {
		policy[choice] = float64(child.visits) / float64(total)
	}
	return policy
}

// Snapshot is a JSON-marshalable view of a searched tree for logging and
// offline inspection. Choices are rendered with their %v formatting.
type Snapshot struct {
	Choice   string      `json:"choice,omitempty"`
	Mover    int         `json:"mover"`
	Terminal bool        `json:"terminal,omitempty"`
	Visits   int         `json:"visits"`
	Rewards  []float64   `json:"rewards"`
	Children []*Snapshot `json:"children,omitempty"`
}

// Snapshot dumps the whole tree in expansion order, nil when empty.
func (t *Tree[C]) Snapshot() *Snapshot {
	if t.root == nil {
		return nil
	}
	return snapshot(t.root, "")
}

func snapshot[C comparable](n *node[C], choice string) *Snapshot {
	s := &Snapshot{
		Choice:   choice,
		Mover:    n.mover,
		Terminal: n.result.Over(),
		Visits:   n.visits,
		Rewards:  append([]float64(nil), n.rewards...),
	}
	for _, c := range n.order {
		s.Children = append(s.Children, snapshot(n.children[c], fmt.Sprint(c)))
	}
	return s
}
