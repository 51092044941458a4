package game

import (
	"go.uber.org/zap"

	"github.com/samdwyer/labyrinth/internal/metrics"
)

// Config holds game configuration options.
type Config struct {
	// EmptyPolicy decides what happens to a queued batch at an empty command.
	EmptyPolicy EmptyCommandPolicy

	// HistoryLimit caps the console's message log. 0 uses the console default.
	HistoryLimit int

	Metrics *metrics.Metrics
	Logger  *zap.Logger
}
