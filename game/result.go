package game

import "fmt"

type status uint8

const (
	statusOngoing status = iota
	statusDraw
	statusWon
)

// Result is the terminal status of a position: still ongoing, drawn, or won
// by one player. The zero value is ongoing.
type Result struct {
	status status
	winner int
}

// Ongoing reports a position that has not been decided yet.
func Ongoing() Result { return Result{} }

// Draw reports a decided position that no player won.
func Draw() Result { return Result{status: statusDraw} }

// WonBy reports a position won by the player with the given index.
func WonBy(player int) Result { return Result{status: statusWon, winner: player} }

// Over reports whether the position has been decided.
func (r Result) Over() bool { return r.status != statusOngoing }

// IsDraw reports whether the position ended without a winner.
func (r Result) IsDraw() bool { return r.status == statusDraw }

// Winner returns the winning player's index. The boolean is false for
// ongoing and drawn positions.
func (r Result) Winner() (player int, ok bool) {
	if r.status != statusWon {
		return 0, false
	}
	return r.winner, true
}

func (r Result) String() string {
	switch r.status {
	case statusDraw:
		return "draw"
	case statusWon:
		return fmt.Sprintf("won by player %d", r.winner)
	default:
		return "ongoing"
	}
}
