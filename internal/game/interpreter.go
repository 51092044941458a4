package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/labyrinth/internal/metrics"
	"github.com/samdwyer/labyrinth/internal/telemetry"
	"github.com/samdwyer/labyrinth/internal/world"
)

// Verbs understood by the interpreter.
const (
	VerbClear    = "clear"
	VerbHelp     = "help"
	VerbRagequit = "ragequit"
	VerbTutorial = "tutorial"
	VerbInfos    = "infos"
	VerbContinue = "continue"
	VerbSkip     = "skip"
	VerbGo       = "go"
	VerbAttack   = "attack"
)

// Messages printed by command handlers.
const (
	msgPrompt          = "> "
	msgQuitting        = "Quitting Labyrinth..."
	msgNothingContinue = "There is nothing to continue..."
	msgSkipping        = "Skipping room..."
	msgNoDirection     = "You specified no direction..."
	msgBadDirection    = "Please enter a valid direction..."
	msgGoUsage         = "Usage: go <direction>, valid: (FORWARD, LEFT, RIGHT)"
	msgNoPath          = "There is no path in this direction..."
	msgAttack          = "Attacking the enemy for 1 (one) damage"
	msgPunchWall       = "You punch... uh... the wall!"
	msgNothingToPunch  = "In fustration, you see there is nothing else to punch here!"
)

// unknownVerb labels metrics for anything that is not a known verb.
const unknownVerb = "unknown"

// attackDamage is what one attack takes off the enemy's health.
const attackDamage = 1.0

// Lifecycle is told when the player abandons the labyrinth.
type Lifecycle interface {
	AbandonSession()
}

// History is the console's display history.
type History interface {
	Clear()
}

// EmptyCommandPolicy decides what Drain does with an empty queued command.
type EmptyCommandPolicy int

const (
	// SkipEmpty ignores the empty entry and keeps draining.
	SkipEmpty EmptyCommandPolicy = iota
	// StopOnEmpty drops the empty entry and everything queued after it.
	StopOnEmpty
)

// Interpreter turns player commands into session changes and output lines.
type Interpreter struct {
	turns       *TurnGenerator
	lifecycle   Lifecycle
	history     History
	emptyPolicy EmptyCommandPolicy
	metrics     *metrics.Metrics
	log         *zap.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithEmptyPolicy sets how Drain treats empty commands.
func WithEmptyPolicy(p EmptyCommandPolicy) Option {
	return func(in *Interpreter) { in.emptyPolicy = p }
}

// WithMetrics sets the counters the interpreter reports to.
func WithMetrics(m *metrics.Metrics) Option {
	return func(in *Interpreter) { in.metrics = m }
}

// WithLogger sets the interpreter's logger.
func WithLogger(log *zap.Logger) Option {
	return func(in *Interpreter) { in.log = log }
}

// NewInterpreter creates an interpreter. The collaborators are held for the
// lifetime of the session.
func NewInterpreter(turns *TurnGenerator, lifecycle Lifecycle, history History, opts ...Option) *Interpreter {
	in := &Interpreter{
		turns:     turns,
		lifecycle: lifecycle,
		history:   history,
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.metrics == nil {
		in.metrics = metrics.New(nil)
	}
	if in.log == nil {
		in.log = zap.NewNop()
	}
	return in
}

// reply collects a command's output.
type reply struct {
	lines    []string
	rejected bool
}

func (r *reply) say(lines ...string) {
	r.lines = append(r.lines, lines...)
}

// reject records that the command did not do what was asked.
func (r *reply) reject(lines ...string) {
	r.rejected = true
	r.say(lines...)
}

// Handle runs one raw command against s and returns the lines to display,
// in order. An empty command does nothing.
func (in *Interpreter) Handle(ctx context.Context, raw string, s *Session) []string {
	if raw == "" {
		return nil
	}

	trimmed := strings.TrimSpace(raw)
	args := strings.Fields(trimmed)
	verb := ""
	if len(args) > 0 {
		verb = args[0]
	}

	tracer := telemetry.Tracer("command")
	ctx, span := tracer.Start(ctx, "command.handle")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("verb", verb),
		attribute.String("state", s.State.String()),
		attribute.String("room.type", s.Room.String()),
	)

	r := &reply{}
	if verb != VerbClear {
		r.say(msgPrompt + trimmed)
	}

	switch verb {
	case VerbClear:
		in.history.Clear()
	case VerbHelp:
		in.help(args, r)
	case VerbRagequit:
		in.ragequit(s, r)
	case VerbTutorial:
		s.EnterTutorial()
	case VerbInfos:
		s.RefreshInfo()
	case VerbContinue:
		in.continueTutorial(ctx, s, r)
	case VerbSkip:
		in.skip(ctx, s, r)
	case VerbGo:
		in.move(ctx, args, s, r)
	case VerbAttack:
		in.attack(s, r)
	default:
		r.reject(fmt.Sprintf("I didn't understand the command: \"%s\"", verb))
	}

	label := verbLabel(verb)
	in.metrics.IncCommand(label)
	if r.rejected {
		in.metrics.IncRejected(label)
	}
	span.SetAttributes(
		attribute.Bool("accepted", !r.rejected),
		attribute.Int("output.lines", len(r.lines)),
	)
	in.log.Debug("command handled",
		zap.Stringer("session", s.ID),
		zap.String("verb", verb),
		zap.Int("args", len(args)),
		zap.Bool("accepted", !r.rejected),
		zap.Stringer("state", s.State),
		zap.Stringer("room", s.Room),
	)

	return r.lines
}

// verbLabel keeps the metric label set bounded to the known verbs.
func verbLabel(verb string) string {
	switch verb {
	case VerbClear, VerbHelp, VerbRagequit, VerbTutorial, VerbInfos,
		VerbContinue, VerbSkip, VerbGo, VerbAttack:
		return verb
	}
	return unknownVerb
}

// Drain handles queued commands in arrival order and returns all output.
func (in *Interpreter) Drain(ctx context.Context, queue []string, s *Session) []string {
	var out []string
	for i, cmd := range queue {
		if cmd == "" {
			if in.emptyPolicy == StopOnEmpty {
				in.log.Debug("empty command stopped the batch", zap.Int("dropped", len(queue)-i-1))
				break
			}
			continue
		}
		out = append(out, in.Handle(ctx, cmd, s)...)
	}
	return out
}

func (in *Interpreter) help(args []string, r *reply) {
	if len(args) < 2 {
		r.say(HelpPage(1))
		return
	}

	page, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		r.reject(fmt.Sprintf("Invalid page number: %q", args[1]), HelpPage(1))
		return
	}
	r.say(HelpPage(page))
}

func (in *Interpreter) ragequit(s *Session, r *reply) {
	r.say(msgQuitting)
	in.log.Info("session abandoned", zap.Stringer("session", s.ID), zap.Int("turn", s.Turn))
	s.Reset()
	in.metrics.IncAbandon()
	in.lifecycle.AbandonSession()
}

func (in *Interpreter) continueTutorial(ctx context.Context, s *Session, r *reply) {
	if s.State != StateTutorial {
		r.reject(msgNothingContinue)
		return
	}
	s.State = StateExploring
	in.turns.Advance(ctx, s)
	s.Flags.Clear()
}

func (in *Interpreter) skip(ctx context.Context, s *Session, r *reply) {
	if !s.CanSkip() {
		r.rejected = true
		return
	}
	r.say(msgSkipping)
	in.turns.Advance(ctx, s)
	s.Flags.Clear()
}

func (in *Interpreter) move(ctx context.Context, args []string, s *Session, r *reply) {
	if len(args) < 2 {
		r.reject(msgNoDirection, msgGoUsage)
		return
	}

	m, ok := world.ParseMovement(args[1])
	if !ok {
		r.reject(msgBadDirection, msgGoUsage)
		return
	}
	if !s.Directions.CanGo(m) {
		r.reject(msgNoPath)
		return
	}

	in.turns.Advance(ctx, s)
	s.Flags.Clear()
}

// attack hits the current enemy. Whether that defeats it is decided later,
// by whoever presents the next turn.
func (in *Interpreter) attack(s *Session, r *reply) {
	if s.Room != world.RoomEnemy || s.Enemy == nil {
		r.reject(msgPunchWall, msgNothingToPunch)
		return
	}
	r.say(msgAttack)
	s.Enemy.TakeDamage(attackDamage)
	s.Flags.Clear()
}
