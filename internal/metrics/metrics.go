// Package metrics exposes Prometheus counters for the labyrinth engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "labyrinth"

// Metrics holds the engine's counters.
type Metrics struct {
	Commands         *prometheus.CounterVec
	RejectedCommands *prometheus.CounterVec
	Turns            prometheus.Counter
	EnemiesDefeated  prometheus.Counter
	Abandons         prometheus.Counter
}

// New creates the counters and registers them with reg.
// A nil reg leaves them unregistered, which is what tests want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands handled, by verb",
		}, []string{"verb"}),
		RejectedCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_rejected_total",
			Help:      "Commands that were malformed, unknown or not allowed in the current state, by verb",
		}, []string{"verb"}),
		Turns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Turns generated",
		}),
		EnemiesDefeated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_defeated_total",
			Help:      "Enemies brought to zero health",
		}),
		Abandons: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_abandoned_total",
			Help:      "Sessions ended with ragequit",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.Commands,
			m.RejectedCommands,
			m.Turns,
			m.EnemiesDefeated,
			m.Abandons,
		)
	}

	return m
}

// IncCommand counts a handled command.
func (m *Metrics) IncCommand(verb string) {
	m.Commands.WithLabelValues(verb).Inc()
}

// IncRejected counts a command that did not do what was asked.
func (m *Metrics) IncRejected(verb string) {
	m.RejectedCommands.WithLabelValues(verb).Inc()
}

// IncTurn counts a generated turn.
func (m *Metrics) IncTurn() {
	m.Turns.Inc()
}

// IncDefeated counts a defeated enemy.
func (m *Metrics) IncDefeated() {
	m.EnemiesDefeated.Inc()
}

// IncAbandon counts a ragequit.
func (m *Metrics) IncAbandon() {
	m.Abandons.Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
