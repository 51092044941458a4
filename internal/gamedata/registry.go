package gamedata

import (
	"errors"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	i := weightedIndex(rng, r.totalWeight, len(r.enemies), func(i int) int {
		return r.enemies[i].SpawnWeight
	})
	if i < 0 {
		return nil
	}
	return &r.enemies[i]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// RoomRegistry
// =============================================================================

// RoomRegistry holds loaded room templates and provides weighted selection.
type RoomRegistry struct {
	rooms       []RoomTemplate
	totalWeight int
}

// NewRoomRegistry creates a registry from loaded room templates.
func NewRoomRegistry(rooms []RoomTemplate) *RoomRegistry {
	totalWeight := 0
	for _, r := range rooms {
		totalWeight += r.SpawnWeight
	}
	return &RoomRegistry{
		rooms:       rooms,
		totalWeight: totalWeight,
	}
}

// LoadRoomRegistry loads and creates a registry from the embedded rooms.json.
func LoadRoomRegistry() (*RoomRegistry, error) {
	rooms, err := LoadRooms()
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, errors.New("no rooms loaded from rooms.json")
	}
	return NewRoomRegistry(rooms), nil
}

// SpawnRandom selects a random room template using weighted probability.
func (r *RoomRegistry) SpawnRandom(rng *rand.Rand) *RoomTemplate {
	i := weightedIndex(rng, r.totalWeight, len(r.rooms), func(i int) int {
		return r.rooms[i].SpawnWeight
	})
	if i < 0 {
		return nil
	}
	return &r.rooms[i]
}

// GetByID returns the room template with the given ID, or nil if not found.
func (r *RoomRegistry) GetByID(id string) *RoomTemplate {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			return &r.rooms[i]
		}
	}
	return nil
}

// Count returns the number of room templates in the registry.
func (r *RoomRegistry) Count() int {
	return len(r.rooms)
}

// weightedIndex rolls against totalWeight and returns the index whose
// cumulative weight covers the roll, or -1 when nothing can be picked.
func weightedIndex(rng *rand.Rand, totalWeight, n int, weight func(int) int) int {
	if totalWeight <= 0 || n == 0 {
		return -1
	}

	roll := rng.Intn(totalWeight)

	cumulative := 0
	for i := 0; i < n; i++ {
		cumulative += weight(i)
		if roll < cumulative {
			return i
		}
	}

	// Fallback (shouldn't happen)
	return 0
}
