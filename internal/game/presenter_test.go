package game

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/samdwyer/labyrinth/internal/metrics"
	"github.com/samdwyer/labyrinth/internal/world"
)

func TestPresentTutorial(t *testing.T) {
	f := newFixture()
	p := NewPresenter(f.turns, nil, nil)
	ctx := context.Background()

	out := p.Present(ctx, f.session)

	if len(out) != len(tutorialText) || out[len(out)-1] != "Type 'continue' to start exploring." {
		t.Errorf("Present() in tutorial = %q", out)
	}
	if !f.session.Flags.InfoShown || !f.session.Flags.WaitForContinue {
		t.Errorf("flags = %+v, want both set", f.session.Flags)
	}

	if again := p.Present(ctx, f.session); len(again) != 0 {
		t.Errorf("second Present() = %q, want nothing", again)
	}
}

func TestPresentRoomOncePerTurn(t *testing.T) {
	f := newFixture()
	p := NewPresenter(f.turns, nil, nil)
	ctx := context.Background()

	f.handle("continue")
	out := p.Present(ctx, f.session)

	want := []string{"-- Room 1 --", "sentinel", "Paths: LEFT"}
	if !equalLines(out, want) {
		t.Errorf("Present() = %q, want %q", out, want)
	}
	if f.session.Flags.WaitForContinue {
		t.Error("WaitForContinue should stay clear while exploring")
	}
	if again := p.Present(ctx, f.session); len(again) != 0 {
		t.Errorf("second Present() = %q, want nothing", again)
	}

	f.handle("infos")
	if again := p.Present(ctx, f.session); !equalLines(again, want) {
		t.Errorf("Present() after infos = %q, want %q", again, want)
	}
}

func TestPresentEnemyAndItemRooms(t *testing.T) {
	f := newFixture()
	p := NewPresenter(f.turns, nil, nil)

	f.exploring(world.RoomEnemy, 0)
	f.session.Narrative = "lair"
	f.session.Flags.InfoShown = false
	out := p.Present(context.Background(), f.session)
	want := []string{"-- Room 4 --", "lair", "A Goblin blocks your way (3 HP).", "Paths: none (skip or fight)"}
	if !equalLines(out, want) {
		t.Errorf("Present() in enemy room = %q, want %q", out, want)
	}

	f.exploring(world.RoomItem, 0)
	f.session.Narrative = ""
	f.session.Flags.InfoShown = false
	out = p.Present(context.Background(), f.session)
	if len(out) != 3 || !strings.HasPrefix(out[1], "There is something here") {
		t.Errorf("Present() in item room = %q", out)
	}
}

func TestPresentAfterAttack(t *testing.T) {
	f := newFixture()
	p := NewPresenter(f.turns, nil, nil)
	f.exploring(world.RoomEnemy, 0)

	f.handle("attack")
	out := p.Present(context.Background(), f.session)

	if len(out) < 2 || out[1] != "A Goblin blocks your way (2 HP)." {
		t.Errorf("Present() after attack = %q, want updated health", out)
	}
}

func TestPresentDefeatedEnemy(t *testing.T) {
	m := metrics.New(nil)
	f := newFixture()
	p := NewPresenter(f.turns, m, nil)
	f.exploring(world.RoomEnemy, 0)

	for i := 0; i < 3; i++ {
		f.handle("attack")
	}
	out := p.Present(context.Background(), f.session)

	if len(out) == 0 || out[0] != "The Goblin collapses. The way ahead is clear." {
		t.Fatalf("Present() = %q, want the defeat line first", out)
	}
	if len(f.catalog.calls) != 1 {
		t.Errorf("catalog calls = %d, want 1", len(f.catalog.calls))
	}
	if f.session.Room != world.RoomNarrative || f.session.Enemy != nil {
		t.Errorf("session should be in the next room, got %v with enemy %v", f.session.Room, f.session.Enemy)
	}
	if !equalLines(out[1:], []string{"-- Room 5 --", "sentinel", "Paths: LEFT"}) {
		t.Errorf("Present() should describe the new room, got %q", out[1:])
	}
	if got := testutil.ToFloat64(m.EnemiesDefeated); got != 1 {
		t.Errorf("enemies_defeated_total = %v, want 1", got)
	}
}

func TestFormatHealth(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{0.5, "0.5"},
		{-1, "-1"},
	}
	for _, tt := range tests {
		if got := formatHealth(tt.in); got != tt.want {
			t.Errorf("formatHealth(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
