// Package game defines the capability a turn-based game exposes to the
// search engine. Any game that wants move recommendations implements State
// over its own choice type; the engine knows nothing else about the rules.
package game

// State is a position in a sequential turn-based game for a fixed roster of
// players, parameterized over the game's choice type C. Choices are opaque to
// the engine: it only stores them, compares them, and hands them back.
//
// Apply is destructive. The engine never applies a choice to a state it does
// not own; it calls Clone first and mutates the copy. Implementations are
// free to reuse internal buffers across Apply calls as long as Clone yields
// a fully independent position.
type State[C comparable] interface {
	// PlayerCount reports the number of players, fixed for the whole game.
	// Players are identified by index 0 through PlayerCount()-1.
	PlayerCount() int

	// Turn reports which player moves next. Only meaningful while the
	// position is undecided.
	Turn() int

	// Choices lists every legal choice for the player on turn. The engine
	// takes ownership of the returned slice, so implementations must return
	// a fresh slice on every call. An undecided position must offer at
	// least one choice.
	Choices() []C

	// Apply plays a choice in place. Applying the same choice to equal
	// positions must produce equal positions; games with chance elements
	// need to fold the randomness into the choice itself.
	Apply(choice C)

	// Winner reports whether the position is decided, and for whom.
	Winner() Result

	// Clone returns an independent copy sharing no mutable memory with the
	// receiver.
	Clone() State[C]
}
