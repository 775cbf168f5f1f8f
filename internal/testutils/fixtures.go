package testutils

import (
	"github.com/codequest-gg/codequest-api/internal/entities"
)

// Common fixture IDs
const (
	TestPlayerID = "player-test-001"
	TestQuestID  = "quest-variables-1"
	TestEnemyID  = "enemy-slime"
	TestSpawnID  = "spawn-slime-meadow"
)

// CreateTestPlayer creates a fresh level-1 player for tests
func CreateTestPlayer(id string) *entities.Player {
	return entities.NewPlayer(id)
}

// CreateTestPlayerAtLevel creates a player leveled up past the start,
// with the stat growth the level-up loop would have applied
func CreateTestPlayerAtLevel(id string, level int) *entities.Player {
	p := entities.NewPlayer(id)
	for p.Level < level {
		p.Level++
		p.MaxHP += 10
		p.HP = p.MaxHP
		p.Attack += 2
		p.Defense++
	}
	return p
}

// CreateTestQuest creates a quest definition with sensible defaults
func CreateTestQuest(id string) *entities.Quest {
	return &entities.Quest{
		ID:               id,
		Title:            "Test Quest",
		Difficulty:       "easy",
		XPReward:         50,
		CoinReward:       25,
		LevelRequirement: 1,
	}
}

// CreateTestEnemy creates an enemy template with sensible defaults
func CreateTestEnemy(id string) *entities.Enemy {
	return &entities.Enemy{
		ID:          id,
		EnemyType:   "slime",
		Name:        "Slime",
		BaseHP:      30,
		BaseAttack:  8,
		BaseDefense: 2,
		BaseSpeed:   3,
		CritChance:  0.05,
		XPReward:    20,
		CoinReward:  10,
	}
}

// CreateTestSpawn creates a spawn point for the given enemy
func CreateTestSpawn(id, enemyID string, levelMin, levelMax int) *entities.EnemySpawn {
	return &entities.EnemySpawn{
		ID:       id,
		ZoneID:   "zone-meadow",
		EnemyID:  enemyID,
		LevelMin: levelMin,
		LevelMax: levelMax,
	}
}
