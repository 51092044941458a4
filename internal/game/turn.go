package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/labyrinth/internal/metrics"
	"github.com/samdwyer/labyrinth/internal/telemetry"
	"github.com/samdwyer/labyrinth/internal/world"
)

// TurnGenerator produces new rooms from a catalog.
type TurnGenerator struct {
	catalog world.Catalog
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewTurnGenerator creates a generator over catalog. Nil metrics or logger
// are replaced by unregistered counters and a no-op logger.
func NewTurnGenerator(catalog world.Catalog, m *metrics.Metrics, log *zap.Logger) *TurnGenerator {
	if m == nil {
		m = metrics.New(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TurnGenerator{
		catalog: catalog,
		metrics: m,
		log:     log,
	}
}

// Advance moves s to a freshly generated room: it asks the catalog for the
// next room, replaces the room type, enemy, exits and text, and clears both
// display flags. It does not check whether a move is allowed; every call
// consumes a turn.
func (g *TurnGenerator) Advance(ctx context.Context, s *Session) {
	tracer := telemetry.Tracer("turn")
	_, span := tracer.Start(ctx, "turn.advance")
	defer span.End()

	desc := g.catalog.NextRoom(world.Progress{
		Turn:     s.Turn + 1,
		Previous: s.Room,
	})
	s.applyRoom(desc)

	g.metrics.IncTurn()

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int("turn", s.Turn),
		attribute.String("room.type", s.Room.String()),
		attribute.Int("room.directions", s.Directions.Len()),
	)
	if s.Enemy != nil {
		span.SetAttributes(attribute.String("enemy.id", s.Enemy.ID()))
	}

	g.log.Debug("turn advanced",
		zap.Stringer("session", s.ID),
		zap.Int("turn", s.Turn),
		zap.Stringer("room", s.Room),
		zap.Stringer("directions", s.Directions),
	)
}
