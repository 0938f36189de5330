package searcher

import "github.com/tomjwolc/monte/game"

// Tiny purpose-built games for exercising the engine without a real rules
// engine in the way.

// pickGame ends after one choice by player 0: each choice maps to the index
// of the player it hands the win to, or -1 for a draw.
type pickGame struct {
	players int
	targets []int
	picked  int
}

func newPickGame(players int, targets ...int) *pickGame {
	return &pickGame{players: players, targets: targets, picked: -1}
}

func (p *pickGame) PlayerCount() int { return p.players }

func (p *pickGame) Turn() int { return 0 }

func (p *pickGame) Choices() []int {
	if p.picked >= 0 {
		return nil
	}
	choices := make([]int, len(p.targets))
	for i := range choices {
		choices[i] = i
	}
	return choices
}

func (p *pickGame) Apply(choice int) { p.picked = choice }

func (p *pickGame) Winner() game.Result {
	if p.picked < 0 {
		return game.Ongoing()
	}
	if target := p.targets[p.picked]; target >= 0 {
		return game.WonBy(target)
	}
	return game.Draw()
}

func (p *pickGame) Clone() game.State[int] {
	clone := *p
	return &clone
}

// endlessGame never decides; every position offers the same two choices and
// passes the turn around the table.
type endlessGame struct {
	players int
	turn    int
}

func (e *endlessGame) PlayerCount() int { return e.players }

func (e *endlessGame) Turn() int { return e.turn }

func (e *endlessGame) Choices() []int { return []int{0, 1} }

func (e *endlessGame) Apply(int) { e.turn = (e.turn + 1) % e.players }

func (e *endlessGame) Winner() game.Result { return game.Ongoing() }

func (e *endlessGame) Clone() game.State[int] {
	clone := *e
	return &clone
}

// stuckGame breaks the adapter contract: after left choices it reports an
// undecided position with nothing to play.
type stuckGame struct {
	players int
	left    int
}

func (s *stuckGame) PlayerCount() int { return s.players }

func (s *stuckGame) Turn() int { return 0 }

func (s *stuckGame) Choices() []int {
	if s.left <= 0 {
		return nil
	}
	return []int{0}
}

func (s *stuckGame) Apply(int) { s.left-- }

func (s *stuckGame) Winner() game.Result { return game.Ongoing() }

func (s *stuckGame) Clone() game.State[int] {
	clone := *s
	return &clone
}

// fickleGame breaks deterministic Apply: the mover it reports depends on
// how many times any clone has applied a choice.
type fickleGame struct {
	players int
	applies *int
	turn    int
}

func newFickleGame(players int) *fickleGame {
	applies := 0
	return &fickleGame{players: players, applies: &applies}
}

func (f *fickleGame) PlayerCount() int { return f.players }

func (f *fickleGame) Turn() int { return f.turn }

func (f *fickleGame) Choices() []int { return []int{0} }

func (f *fickleGame) Apply(int) {
	*f.applies++
	f.turn = *f.applies % f.players
}

func (f *fickleGame) Winner() game.Result { return game.Ongoing() }

func (f *fickleGame) Clone() game.State[int] {
	clone := *f
	return &clone
}

// badMoverGame reports a mover outside the player roster.
type badMoverGame struct{}

func (badMoverGame) PlayerCount() int { return 2 }

func (badMoverGame) Turn() int { return 3 }

func (badMoverGame) Choices() []int { return []int{0} }

func (badMoverGame) Apply(int) {}

func (badMoverGame) Winner() game.Result { return game.Ongoing() }

func (badMoverGame) Clone() game.State[int] { return badMoverGame{} }
