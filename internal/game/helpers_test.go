package game

import (
	"context"

	"github.com/samdwyer/labyrinth/internal/entity"
	"github.com/samdwyer/labyrinth/internal/gamedata"
	"github.com/samdwyer/labyrinth/internal/world"
)

// stubCatalog returns a fixed room and records every query.
type stubCatalog struct {
	room  world.RoomDescriptor
	calls []world.Progress
}

func (c *stubCatalog) NextRoom(p world.Progress) world.RoomDescriptor {
	c.calls = append(c.calls, p)
	return c.room
}

// sentinelRoom is what the stub catalog hands out unless a test says otherwise.
var sentinelRoom = world.RoomDescriptor{
	Type:       world.RoomNarrative,
	Narrative:  "sentinel",
	Directions: world.NewDirectionSet(world.Left),
}

type stubLifecycle struct{ abandoned int }

func (l *stubLifecycle) AbandonSession() { l.abandoned++ }

type stubHistory struct{ cleared int }

func (h *stubHistory) Clear() { h.cleared++ }

type fixture struct {
	catalog   *stubCatalog
	lifecycle *stubLifecycle
	history   *stubHistory
	turns     *TurnGenerator
	in        *Interpreter
	session   *Session
}

func newFixture(opts ...Option) *fixture {
	f := &fixture{
		catalog:   &stubCatalog{room: sentinelRoom},
		lifecycle: &stubLifecycle{},
		history:   &stubHistory{},
		session:   NewSession(),
	}
	f.turns = NewTurnGenerator(f.catalog, nil, nil)
	f.in = NewInterpreter(f.turns, f.lifecycle, f.history, opts...)
	return f
}

func (f *fixture) handle(cmd string) []string {
	return f.in.Handle(context.Background(), cmd, f.session)
}

// exploring puts the session in a room of the given type with both display
// flags set, so tests can see whether a command clears them.
func (f *fixture) exploring(room world.RoomType, dirs world.DirectionSet) {
	f.session.State = StateExploring
	f.session.Room = room
	f.session.Directions = dirs
	f.session.Enemy = nil
	if room == world.RoomEnemy {
		f.session.Enemy = entity.NewEnemyFromDef(&gamedata.EnemyDef{ID: "goblin", Name: "Goblin", Health: 3})
	}
	f.session.Turn = 4
	f.session.Flags = DisplayFlags{InfoShown: true, WaitForContinue: true}
}
