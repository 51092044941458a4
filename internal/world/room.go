package world

import (
	"fmt"
	"strings"

	"github.com/samdwyer/labyrinth/internal/gamedata"
)

// RoomType determines which commands make sense in a room.
type RoomType int

const (
	// RoomEmpty is a plain passage with nothing but exits.
	RoomEmpty RoomType = iota
	// RoomEnemy holds an enemy that must be fought or skipped.
	RoomEnemy
	// RoomItem holds an item; the player can only skip past it.
	RoomItem
	// RoomNarrative carries a piece of story text alongside its exits.
	RoomNarrative
)

// String returns the room type name used in game data.
func (t RoomType) String() string {
	switch t {
	case RoomEmpty:
		return "empty"
	case RoomEnemy:
		return "enemy"
	case RoomItem:
		return "item"
	case RoomNarrative:
		return "narrative"
	default:
		return "unknown"
	}
}

// ParseRoomType converts a game data type name into a RoomType.
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty":
		return RoomEmpty, nil
	case "enemy":
		return RoomEnemy, nil
	case "item":
		return RoomItem, nil
	case "narrative":
		return RoomNarrative, nil
	default:
		return RoomEmpty, fmt.Errorf("unknown room type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t RoomType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RoomType) UnmarshalText(text []byte) error {
	parsed, err := ParseRoomType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// RoomDescriptor is everything the turn generator needs to build a room.
type RoomDescriptor struct {
	Type       RoomType
	Enemy      *gamedata.EnemyDef // Only set for RoomEnemy
	Narrative  string
	Directions DirectionSet
	Template   *gamedata.RoomTemplate // Source template, nil for fallback rooms
}

// Progress is what a catalog knows about the run when picking the next room.
type Progress struct {
	Turn     int      // Number of the turn being generated, starting at 1
	Previous RoomType // Type of the room being left
}

// Catalog supplies rooms. NextRoom must always return a usable room.
type Catalog interface {
	NextRoom(p Progress) RoomDescriptor
}
