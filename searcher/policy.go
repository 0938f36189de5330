package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// SelectionPolicy scores one child during descent. rewards is the child's
// accumulated reward for the player on turn at the parent, visits the
// child's visit count, and parentVisits the parent's. The child with the
// highest score is descended into. A child that has never been visited
// scores +Inf before the policy is consulted, so visits is always positive.
type SelectionPolicy func(rng *rand.Rand, rewards, visits, parentVisits float64) float64

// UCB1 balances exploitation against exploration with the upper confidence
// bound rewards/visits + c*sqrt(ln(parentVisits)/visits).
func UCB1(c float64) SelectionPolicy {
	cSquared := c * c
	return func(_ *rand.Rand, rewards, visits, parentVisits float64) float64 {
		// UCT = q/n + sqrt(c^2*ln(N)/n)
		return rewards/visits + math.Sqrt(cSquared*math.Log(parentVisits)/visits)
	}
}

// Random descends uniformly at random, ignoring all statistics.
func Random() SelectionPolicy {
	return func(rng *rand.Rand, _, _, _ float64) float64 {
		return rng.Float64()
	}
}

// ExploreFirst favors the least visited child, ignoring rewards.
func ExploreFirst() SelectionPolicy {
	return func(_ *rand.Rand, _, visits, _ float64) float64 {
		return 1 / visits
	}
}
