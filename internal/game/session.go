package game

import (
	"github.com/google/uuid"

	"github.com/samdwyer/labyrinth/internal/entity"
	"github.com/samdwyer/labyrinth/internal/gamedata"
	"github.com/samdwyer/labyrinth/internal/world"
)

// DisplayFlags are turn-scoped presentation flags, kept apart from GameState.
type DisplayFlags struct {
	InfoShown       bool // Room info for this turn has been printed
	WaitForContinue bool // The player is expected to type "continue"
}

// Clear marks both flags as needing a refresh.
func (f *DisplayFlags) Clear() {
	f.InfoShown = false
	f.WaitForContinue = false
}

// Session is the state of one play-through.
type Session struct {
	ID         uuid.UUID
	State      GameState
	Room       world.RoomType
	Enemy      *entity.Enemy // Only set in enemy rooms
	Directions world.DirectionSet
	Narrative  string
	Template   *gamedata.RoomTemplate // Template the room came from, if any
	Turn       int
	Flags      DisplayFlags
}

// NewSession creates a session in its initial configuration.
func NewSession() *Session {
	s := &Session{ID: uuid.New()}
	s.Reset()
	return s
}

// Reset returns the session to its initial configuration, keeping its ID.
func (s *Session) Reset() {
	*s = Session{
		ID:    s.ID,
		State: StateTutorial,
		Room:  world.RoomEmpty,
	}
}

// EnterTutorial switches back to the tutorial and asks for it to be shown
// again. WaitForContinue is left alone.
func (s *Session) EnterTutorial() {
	s.State = StateTutorial
	s.Flags.InfoShown = false
}

// RefreshInfo asks for the current room info to be shown again.
func (s *Session) RefreshInfo() {
	s.Flags.InfoShown = false
}

// CanSkip reports whether the current room can be skipped.
func (s *Session) CanSkip() bool {
	return s.State == StateExploring && (s.Room == world.RoomEnemy || s.Room == world.RoomItem)
}

// applyRoom replaces the current room with desc and clears the display flags.
func (s *Session) applyRoom(desc world.RoomDescriptor) {
	s.Room = desc.Type
	s.Directions = desc.Directions
	s.Narrative = desc.Narrative
	s.Template = desc.Template

	s.Enemy = nil
	if desc.Type == world.RoomEnemy && desc.Enemy != nil {
		s.Enemy = entity.NewEnemyFromDef(desc.Enemy)
	}

	s.Turn++
	s.Flags.Clear()
}
