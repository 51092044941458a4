package world

import (
	"math/rand"
	"time"

	"github.com/samdwyer/labyrinth/internal/gamedata"
)

// maxRerolls bounds how many templates NextRoom draws before falling back.
const maxRerolls = 8

// fallbackText is shown when no template could be used.
const fallbackText = "A bare stone passage. The labyrinth seems to hold its breath."

// RandomCatalog picks rooms and enemies from weighted registries.
type RandomCatalog struct {
	rooms   *gamedata.RoomRegistry
	enemies *gamedata.EnemyRegistry
	rng     *rand.Rand
}

// NewRandomCatalog creates a catalog over the given registries.
// A nil rng is replaced by one seeded from the current time.
func NewRandomCatalog(rooms *gamedata.RoomRegistry, enemies *gamedata.EnemyRegistry, rng *rand.Rand) *RandomCatalog {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomCatalog{
		rooms:   rooms,
		enemies: enemies,
		rng:     rng,
	}
}

// LoadRandomCatalog creates a catalog from the embedded game data.
func LoadRandomCatalog(rng *rand.Rand) (*RandomCatalog, error) {
	rooms, err := gamedata.LoadRoomRegistry()
	if err != nil {
		return nil, err
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	return NewRandomCatalog(rooms, enemies, rng), nil
}

// NextRoom draws the next room.
//
// Enemy and item rooms never have exits and only enemy rooms carry an enemy.
// Empty and narrative rooms always have at least one exit. The first room of
// a run is never an enemy room.
func (c *RandomCatalog) NextRoom(p Progress) RoomDescriptor {
	for i := 0; i < maxRerolls; i++ {
		tmpl := c.rooms.SpawnRandom(c.rng)
		if tmpl == nil {
			break
		}

		desc, ok := c.describe(tmpl)
		if !ok {
			continue
		}
		if p.Turn <= 1 && desc.Type == RoomEnemy {
			continue
		}
		return desc
	}

	return RoomDescriptor{
		Type:       RoomEmpty,
		Narrative:  fallbackText,
		Directions: NewDirectionSet(Forward),
	}
}

// describe turns a template into a descriptor. ok is false when the template
// cannot be used (unknown type, or an enemy room with no enemy to spawn).
func (c *RandomCatalog) describe(tmpl *gamedata.RoomTemplate) (desc RoomDescriptor, ok bool) {
	typ, err := ParseRoomType(tmpl.Type)
	if err != nil {
		return RoomDescriptor{}, false
	}

	desc = RoomDescriptor{
		Type:      typ,
		Narrative: tmpl.Text,
		Template:  tmpl,
	}

	switch typ {
	case RoomEnemy:
		if c.enemies == nil {
			return RoomDescriptor{}, false
		}
		desc.Enemy = c.enemies.SpawnRandom(c.rng)
		if desc.Enemy == nil {
			return RoomDescriptor{}, false
		}
	case RoomItem:
	default:
		for _, name := range tmpl.Directions {
			if m, ok := ParseMovement(name); ok {
				desc.Directions = desc.Directions.With(m)
			}
		}
		if desc.Directions.Len() == 0 {
			desc.Directions = NewDirectionSet(Forward)
		}
	}

	return desc, true
}
