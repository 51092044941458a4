package gamedata

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string  `json:"name"`        // Display name (e.g., "Goblin")
	Description string  `json:"description"` // Flavor text shown when the enemy appears
	Health      float64 `json:"health"`      // Starting health
	SpawnWeight int     `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
