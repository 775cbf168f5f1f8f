package engine

import (
	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/pkg/rng"
)

const (
	// Per-level stat multiplier step for enemy scaling
	enemyLevelScale = 0.15

	// Critical hits deal 150% damage
	critMultiplier = 1.5

	// Flat escape probability for the flee action
	fleeChance = 0.5
)

// Damage computes the damage one attack deals:
// max(1, attack - floor(defense/2)), then floor(damage * 1.5) on a
// critical hit. Always at least 1.
func Damage(attack, defense int, crit bool) int {
	dmg := attack - defense/2
	if dmg < 1 {
		dmg = 1
	}
	if crit {
		dmg = int(float64(dmg) * critMultiplier)
	}
	return dmg
}

// RollCrit rolls a critical hit against the given chance
func RollCrit(r rng.Roller, critChance float64) bool {
	return r.Float64() < critChance
}

// RollFlee rolls a flee attempt at the flat escape probability
func RollFlee(r rng.Roller) bool {
	return r.Float64() < fleeChance
}

// RollEnemyLevel picks the encounter level within the spawn's range
func RollEnemyLevel(r rng.Roller, spawn *entities.EnemySpawn) int {
	return r.IntN(spawn.LevelMin, spawn.LevelMax)
}

// ScaleEnemy produces the scaled snapshot for one encounter:
// stats and rewards multiplied by 1 + (level-1)*0.15, floored.
func ScaleEnemy(e *entities.Enemy, level int) entities.ScaledEnemy {
	mult := 1 + float64(level-1)*enemyLevelScale

	scale := func(base int) int {
		return int(float64(base) * mult)
	}

	hp := scale(e.BaseHP)
	return entities.ScaledEnemy{
		EnemyID:    e.ID,
		Name:       e.Name,
		EnemyType:  e.EnemyType,
		Level:      level,
		HP:         hp,
		MaxHP:      hp,
		Attack:     scale(e.BaseAttack),
		Defense:    scale(e.BaseDefense),
		CritChance: e.CritChance,
		XPReward:   scale(e.XPReward),
		CoinReward: scale(e.CoinReward),
	}
}
