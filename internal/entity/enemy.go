// Package entity provides the creatures that inhabit the labyrinth.
package entity

import "github.com/samdwyer/labyrinth/internal/gamedata"

// Enemy represents a hostile creature blocking a room.
type Enemy struct {
	Def       *gamedata.EnemyDef // Reference to the enemy definition (nil for ad-hoc enemies)
	Name      string
	Health    float64 // Current health; may go below zero
	MaxHealth float64
}

// NewEnemy creates an enemy with the given name and health.
func NewEnemy(name string, health float64) *Enemy {
	return &Enemy{
		Name:      name,
		Health:    health,
		MaxHealth: health,
	}
}

// NewEnemyFromDef creates a new enemy from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef) *Enemy {
	return &Enemy{
		Def:       def,
		Name:      def.Name,
		Health:    def.Health,
		MaxHealth: def.Health,
	}
}

// TakeDamage lowers health by amount. Health is not clamped at zero.
func (e *Enemy) TakeDamage(amount float64) {
	e.Health -= amount
}

// IsDefeated reports whether the enemy has no health left.
func (e *Enemy) IsDefeated() bool {
	return e.Health <= 0
}

// ID returns the enemy's type identifier.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return e.Name
}

// Description returns the enemy's flavor text, if any.
func (e *Enemy) Description() string {
	if e.Def != nil {
		return e.Def.Description
	}
	return ""
}
