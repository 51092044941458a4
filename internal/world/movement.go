// Package world provides the labyrinth's rooms, movement directions and room catalog.
package world

import "strings"

// Movement is a direction relative to the player's facing.
type Movement int

const (
	// Forward continues straight ahead.
	Forward Movement = iota
	// Left turns into the passage on the left.
	Left
	// Right turns into the passage on the right.
	Right
)

// allMovements lists movements in display order.
var allMovements = [...]Movement{Forward, Left, Right}

// String returns the movement name as shown in usage text.
func (m Movement) String() string {
	switch m {
	case Forward:
		return "FORWARD"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// ParseMovement converts user text into a Movement.
// Matching ignores case and surrounding space; ok is false for unknown tokens.
func ParseMovement(token string) (m Movement, ok bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "forward", "f", "front", "straight":
		return Forward, true
	case "left", "l":
		return Left, true
	case "right", "r":
		return Right, true
	default:
		return 0, false
	}
}

// DirectionSet is the set of movements available from a room.
// The zero value is the empty set.
type DirectionSet uint8

// NewDirectionSet builds a set from the given movements.
func NewDirectionSet(moves ...Movement) DirectionSet {
	var s DirectionSet
	for _, m := range moves {
		s = s.With(m)
	}
	return s
}

// With returns a copy of the set that also contains m.
func (s DirectionSet) With(m Movement) DirectionSet {
	if m < Forward || m > Right {
		return s
	}
	return s | 1<<uint(m)
}

// CanGo reports whether m leads somewhere from the current room.
func (s DirectionSet) CanGo(m Movement) bool {
	if m < Forward || m > Right {
		return false
	}
	return s&(1<<uint(m)) != 0
}

// Len returns the number of available movements.
func (s DirectionSet) Len() int {
	n := 0
	for _, m := range allMovements {
		if s.CanGo(m) {
			n++
		}
	}
	return n
}

// Movements returns the available movements in display order.
func (s DirectionSet) Movements() []Movement {
	moves := make([]Movement, 0, len(allMovements))
	for _, m := range allMovements {
		if s.CanGo(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// String joins the available movements, e.g. "FORWARD, LEFT".
func (s DirectionSet) String() string {
	names := make([]string, 0, len(allMovements))
	for _, m := range s.Movements() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}
