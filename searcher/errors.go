package searcher

import "errors"

// Contract violations by the game adapter. Searches fail on these instead of
// recommending from a corrupted tree.
var (
	ErrNoLegalChoices = errors.New("no legal choices in an undecided position")
	ErrTurnMismatch   = errors.New("reapplied choice produced a different mover")
	ErrPlayerRange    = errors.New("player index out of range")
)

// Configuration faults, reported before any iteration runs.
var (
	ErrEmptyBudget = errors.New("no iteration count and no duration configured")
	ErrRolloutCap  = errors.New("rollout cap must be positive")
	ErrDrawRewards = errors.New("draw rewards must cover every player")
)

// ErrGameOver reports a search started on a position that is already
// decided, with nothing left to recommend.
var ErrGameOver = errors.New("position is already decided")
