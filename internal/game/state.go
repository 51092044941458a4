// Package game provides the labyrinth's turn engine: session state, turn
// generation, command interpretation and the console game loop.
package game

// GameState is the phase a session is in.
type GameState int

const (
	// StateTutorial shows the tutorial and waits for "continue".
	StateTutorial GameState = iota
	// StateExploring is the room-to-room crawl.
	StateExploring
)

// String returns a human-readable state name.
func (s GameState) String() string {
	switch s {
	case StateTutorial:
		return "tutorial"
	case StateExploring:
		return "exploring"
	default:
		return "unknown"
	}
}
