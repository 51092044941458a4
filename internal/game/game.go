package game

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/labyrinth/internal/metrics"
	"github.com/samdwyer/labyrinth/internal/telemetry"
	"github.com/samdwyer/labyrinth/internal/ui"
	"github.com/samdwyer/labyrinth/internal/world"
)

// ErrNoScreen is returned by Run when the game was created without a screen.
var ErrNoScreen = errors.New("game has no screen to run on")

// Game hosts one labyrinth session on a terminal console.
type Game struct {
	screen      *ui.Screen
	renderer    *ui.Renderer
	console     *ui.Console
	session     *Session
	interpreter *Interpreter
	presenter   *Presenter
	log         *zap.Logger
	queue       []string
	running     bool
}

// New creates a game drawing to screen and pulling rooms from catalog.
// With a nil screen the game can only be driven through Enqueue and Step.
func New(screen *ui.Screen, catalog world.Catalog, cfg Config) *Game {
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	g := &Game{
		screen:  screen,
		console: ui.NewConsole(cfg.HistoryLimit),
		session: NewSession(),
		log:     cfg.Logger,
		running: true,
	}
	if screen != nil {
		g.renderer = ui.NewRenderer(screen)
	}

	turns := NewTurnGenerator(catalog, cfg.Metrics, cfg.Logger)
	g.interpreter = NewInterpreter(turns, g, g.console,
		WithEmptyPolicy(cfg.EmptyPolicy),
		WithMetrics(cfg.Metrics),
		WithLogger(cfg.Logger),
	)
	g.presenter = NewPresenter(turns, cfg.Metrics, cfg.Logger)

	return g
}

// Session returns the session being played.
func (g *Game) Session() *Session {
	return g.session
}

// Console returns the game's display history.
func (g *Game) Console() *ui.Console {
	return g.console
}

// Running reports whether the main loop should keep going.
func (g *Game) Running() bool {
	return g.running
}

// AbandonSession stops the game after a ragequit. The session has already
// been reset by the interpreter.
func (g *Game) AbandonSession() {
	g.log.Info("labyrinth abandoned", zap.Stringer("session", g.session.ID))
	g.running = false
}

// Run executes the main game loop. Lines submitted while more input is
// already waiting are drained together as one batch.
func (g *Game) Run(ctx context.Context) error {
	if g.screen == nil {
		return ErrNoScreen
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.start")
	span.SetAttributes(attribute.String("session.id", g.session.ID.String()))
	span.End()

	g.log.Info("labyrinth started", zap.Stringer("session", g.session.ID))

	g.present(ctx)
	for g.running {
		g.renderer.Render(g.console, g.session.Flags.WaitForContinue)

		// Handle input (blocking)
		g.handleInput()
		if g.running && !g.screen.HasPendingEvent() {
			g.Step(ctx)
		}
	}

	g.screen.Close()
	return nil
}

// Step runs everything queued so far and presents the resulting turn.
func (g *Game) Step(ctx context.Context) {
	if len(g.queue) == 0 {
		return
	}
	queue := g.queue
	g.queue = nil

	for _, line := range g.interpreter.Drain(ctx, queue, g.session) {
		g.console.Print(line)
	}
	if g.running {
		g.present(ctx)
	}
}

// Enqueue queues a raw command for the next Step.
func (g *Game) Enqueue(cmd string) {
	g.queue = append(g.queue, cmd)
}

// present prints the current turn's info, tinted with the room's color.
func (g *Game) present(ctx context.Context) {
	lines := g.presenter.Present(ctx, g.session)

	color := tcell.ColorDefault
	if g.session.Template != nil {
		color = g.session.Template.TCellColor()
	}
	for _, line := range lines {
		g.console.PrintColor(line, color)
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyEnter:
		g.Enqueue(g.console.Submit())

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		g.console.Backspace()

	case tcell.KeyRune:
		g.console.Insert(ev.Rune())
	}
}
