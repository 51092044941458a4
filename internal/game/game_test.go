package game

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/labyrinth/internal/gamedata"
	"github.com/samdwyer/labyrinth/internal/world"
)

// submitLine types line and presses Enter without running it.
func submitLine(g *Game, line string) {
	for _, r := range line {
		g.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

// typeLine submits line and runs it.
func typeLine(g *Game, line string) {
	submitLine(g, line)
	g.Step(context.Background())
}

func messageTexts(g *Game) []string {
	var texts []string
	for _, m := range g.Console().Messages() {
		texts = append(texts, m.Text)
	}
	return texts
}

func TestGamePlaythrough(t *testing.T) {
	catalog := &stubCatalog{room: world.RoomDescriptor{
		Type:       world.RoomNarrative,
		Narrative:  "carved words",
		Directions: world.NewDirectionSet(world.Forward),
		Template:   &gamedata.RoomTemplate{ID: "inscription", Color: "#87AFFF"},
	}}
	g := New(nil, catalog, Config{})
	ctx := context.Background()

	g.present(ctx)
	if !g.Session().Flags.WaitForContinue {
		t.Fatal("the tutorial should be waiting for continue")
	}

	typeLine(g, "continue")
	if g.Session().State != StateExploring || g.Session().Turn != 1 {
		t.Fatalf("after continue: state = %v, turn = %d", g.Session().State, g.Session().Turn)
	}

	msgs := g.Console().Messages()
	last := msgs[len(msgs)-1]
	if last.Text != "Paths: FORWARD" {
		t.Errorf("last message = %q, want the room's paths", last.Text)
	}
	if last.Color != tcell.NewRGBColor(0x87, 0xAF, 0xFF) {
		t.Errorf("room info color = %v, want the template color", last.Color)
	}

	typeLine(g, "go forward")
	if g.Session().Turn != 2 {
		t.Errorf("after go forward: turn = %d, want 2", g.Session().Turn)
	}

	typeLine(g, "clear")
	texts := messageTexts(g)
	if len(texts) != 0 {
		t.Errorf("after clear: messages = %q, want none", texts)
	}
}

func TestGameKeyEditing(t *testing.T) {
	g := New(nil, &stubCatalog{room: sentinelRoom}, Config{})

	for _, r := range "infoz" {
		g.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))

	if got := g.Console().Input(); got != "infos" {
		t.Errorf("Input() = %q, want %q", got, "infos")
	}

	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if g.Running() {
		t.Error("Esc should stop the game")
	}
}

func TestGameRagequit(t *testing.T) {
	g := New(nil, &stubCatalog{room: sentinelRoom}, Config{})

	typeLine(g, "continue")
	typeLine(g, "ragequit")

	if g.Running() {
		t.Error("ragequit should stop the game")
	}
	if g.Session().State != StateTutorial || g.Session().Turn != 0 {
		t.Errorf("session after ragequit = %v/turn %d, want a reset session", g.Session().State, g.Session().Turn)
	}

	texts := messageTexts(g)
	if texts[len(texts)-1] != "Quitting Labyrinth..." {
		t.Errorf("last message = %q, want the quitting line", texts[len(texts)-1])
	}
}

func TestGameEmptyEnter(t *testing.T) {
	g := New(nil, &stubCatalog{room: sentinelRoom}, Config{})
	g.present(context.Background())
	before := len(g.Console().Messages())

	typeLine(g, "")

	if got := len(g.Console().Messages()); got != before {
		t.Errorf("empty enter added %d messages", got-before)
	}
}

func TestGameBatchesSubmittedLines(t *testing.T) {
	tests := []struct {
		name     string
		policy   EmptyCommandPolicy
		wantTurn int
	}{
		{"skip empty", SkipEmpty, 3},
		{"stop on empty", StopOnEmpty, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &stubCatalog{room: sentinelRoom}
			g := New(nil, catalog, Config{EmptyPolicy: tt.policy})
			typeLine(g, "continue")

			submitLine(g, "go left")
			submitLine(g, "")
			submitLine(g, "go left")
			if g.Session().Turn != 1 {
				t.Fatalf("submitted lines ran before Step: turn = %d", g.Session().Turn)
			}

			g.Step(context.Background())
			if g.Session().Turn != tt.wantTurn {
				t.Errorf("turn after Step = %d, want %d", g.Session().Turn, tt.wantTurn)
			}
		})
	}
}

func TestGameRunWithoutScreen(t *testing.T) {
	g := New(nil, &stubCatalog{room: sentinelRoom}, Config{})

	if err := g.Run(context.Background()); !errors.Is(err, ErrNoScreen) {
		t.Errorf("Run() without a screen = %v, want ErrNoScreen", err)
	}
}
