package searcher

import (
	"fmt"
	"math"
	"time"
)

// DrawPolicy controls how a drawn outcome is credited to the players.
type DrawPolicy int

const (
	// DrawEqualSplit shares one point of reward equally among all players.
	DrawEqualSplit DrawPolicy = iota
	// DrawZero credits nothing to anyone, scoring a draw like a loss.
	DrawZero
)

// RecommendPolicy controls how the final choice is picked from the root's
// children once the budget runs out.
type RecommendPolicy int

const (
	// RecommendMostVisits picks the most explored choice.
	RecommendMostVisits RecommendPolicy = iota
	// RecommendHighestReward picks the choice with the best average reward
	// for the player on turn.
	RecommendHighestReward
)

// TieBreak controls which of several equally scored choices wins.
type TieBreak int

const (
	// TieBreakRandom picks uniformly among the tied choices.
	TieBreakRandom TieBreak = iota
	// TieBreakFirst picks the earliest expanded of the tied choices.
	TieBreakFirst
)

// DefaultRolloutCap bounds playout length for games that could otherwise
// cycle forever. A capped playout counts as a draw.
const DefaultRolloutCap = 10000

type config struct {
	exploration float64
	iterations  int
	duration    time.Duration
	rolloutCap  int
	seed        uint64
	draw        DrawPolicy
	drawRewards []float64
	recommend   RecommendPolicy
	tieBreak    TieBreak
	selection   SelectionPolicy
	trees       int
	collector   Collector
}

type Option func(*config)

// WithExploration sets the exploration constant of the default UCB1
// selection policy. The default is sqrt(2).
func WithExploration(c float64) Option {
	return func(cfg *config) {
		cfg.exploration = c
	}
}

// WithIterations budgets the search by iteration count.
func WithIterations(iterations int) Option {
	return func(cfg *config) {
		if iterations > 0 {
			cfg.iterations = iterations
		}
	}
}

// WithDuration budgets the search by wall clock. Combined with
// WithIterations, the search stops at whichever runs out first.
func WithDuration(duration time.Duration) Option {
	return func(cfg *config) {
		if duration > 0 {
			cfg.duration = duration
		}
	}
}

// WithRolloutCap replaces DefaultRolloutCap.
func WithRolloutCap(plies int) Option {
	return func(cfg *config) {
		cfg.rolloutCap = plies
	}
}

// WithSeed fixes the random stream. Equal seeds and equal iteration budgets
// replay the exact same search; vary the seed to vary play.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithDrawPolicy sets how drawn playouts are credited.
func WithDrawPolicy(policy DrawPolicy) Option {
	return func(cfg *config) {
		cfg.draw = policy
	}
}

// WithDrawRewards credits drawn playouts with an explicit per-player vector,
// overriding the draw policy. The length must match the game's player count.
func WithDrawRewards(rewards []float64) Option {
	return func(cfg *config) {
		cfg.drawRewards = append([]float64(nil), rewards...)
	}
}

// WithRecommendation sets how the final choice is picked.
func WithRecommendation(policy RecommendPolicy) Option {
	return func(cfg *config) {
		cfg.recommend = policy
	}
}

// WithTieBreak sets how equally scored choices are separated, both during
// descent and in the final recommendation.
func WithTieBreak(tieBreak TieBreak) Option {
	return func(cfg *config) {
		cfg.tieBreak = tieBreak
	}
}

// WithSelectionPolicy replaces the descent scoring function. The default is
// UCB1 with the configured exploration constant.
func WithSelectionPolicy(policy SelectionPolicy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.selection = policy
		}
	}
}

// WithRootParallelism grows the given number of independent trees on
// separate goroutines, each against the full budget, and merges their root
// statistics for the recommendation.
func WithRootParallelism(trees int) Option {
	return func(cfg *config) {
		if trees > 0 {
			cfg.trees = trees
		}
	}
}

// WithCollector installs a metrics sink for search diagnostics.
func WithCollector(collector Collector) Option {
	return func(cfg *config) {
		if collector != nil {
			cfg.collector = collector
		}
	}
}

func newConfig(options []Option) config {
	cfg := config{ // Default values
		exploration: math.Sqrt2,
		rolloutCap:  DefaultRolloutCap,
		seed:        1,
		trees:       1,
		collector:   NewCollector(),
	}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.selection == nil {
		cfg.selection = UCB1(cfg.exploration)
	}
	return cfg
}

func (cfg *config) validate() error {
	if cfg.iterations <= 0 && cfg.duration <= 0 {
		return ErrEmptyBudget
	}
	if cfg.rolloutCap <= 0 {
		return fmt.Errorf("%w: %d", ErrRolloutCap, cfg.rolloutCap)
	}
	return nil
}
