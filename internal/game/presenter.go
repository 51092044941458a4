package game

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/samdwyer/labyrinth/internal/metrics"
	"github.com/samdwyer/labyrinth/internal/world"
)

var tutorialText = []string{
	"Welcome to the Labyrinth.",
	"Each turn you stand in a room. Some rooms are empty passages, some hold an item,",
	"some hold a story, and some hold something that would rather you left.",
	"- Move with 'go forward', 'go left' or 'go right' when a path exists.",
	"- Fight with 'attack'. Each blow deals 1 damage.",
	"- Leave an enemy or an item behind with 'skip'.",
	"- 'infos' shows the room again, 'help' lists every command.",
	"Type 'continue' to start exploring.",
}

// Presenter prints what the player sees at the start of each turn. It is
// also where a defeated enemy is noticed and the run moves on.
type Presenter struct {
	turns   *TurnGenerator
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewPresenter creates a presenter that advances turns through turns.
func NewPresenter(turns *TurnGenerator, m *metrics.Metrics, log *zap.Logger) *Presenter {
	if m == nil {
		m = metrics.New(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Presenter{
		turns:   turns,
		metrics: m,
		log:     log,
	}
}

// Present returns the lines to show for the current turn, if any are due.
func (p *Presenter) Present(ctx context.Context, s *Session) []string {
	var out []string

	if s.State == StateExploring && s.Room == world.RoomEnemy && s.Enemy != nil && s.Enemy.IsDefeated() {
		out = append(out, fmt.Sprintf("The %s collapses. The way ahead is clear.", s.Enemy.Name))
		p.metrics.IncDefeated()
		p.log.Info("enemy defeated",
			zap.Stringer("session", s.ID),
			zap.String("enemy", s.Enemy.ID()),
			zap.Int("turn", s.Turn),
		)
		p.turns.Advance(ctx, s)
	}

	if s.Flags.InfoShown {
		return out
	}
	s.Flags.InfoShown = true

	if s.State == StateTutorial {
		s.Flags.WaitForContinue = true
		return append(out, tutorialText...)
	}

	return append(out, roomInfo(s)...)
}

// roomInfo describes the room the session is in.
func roomInfo(s *Session) []string {
	lines := []string{fmt.Sprintf("-- Room %d --", s.Turn)}
	if s.Narrative != "" {
		lines = append(lines, s.Narrative)
	}

	switch s.Room {
	case world.RoomEnemy:
		if s.Enemy != nil {
			lines = append(lines, fmt.Sprintf("A %s blocks your way (%s HP).", s.Enemy.Name, formatHealth(s.Enemy.Health)))
			if d := s.Enemy.Description(); d != "" {
				lines = append(lines, d)
			}
		}
	case world.RoomItem:
		lines = append(lines, "There is something here, but nothing you can carry yet.")
	}

	if s.Directions.Len() == 0 {
		lines = append(lines, "Paths: none (skip or fight)")
	} else {
		lines = append(lines, "Paths: "+s.Directions.String())
	}
	return lines
}

func formatHealth(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
