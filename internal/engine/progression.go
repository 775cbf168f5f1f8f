// Package engine implements the game rules: the XP curve and level-up
// loop, quest gate evaluation, star ratings, character unlock gates,
// combat formulas, and loot rolling. Everything here is pure; random
// sources are injected and persistence belongs to the callers.
package engine

import (
	"math"

	"github.com/codequest-gg/codequest-api/internal/entities"
)

const (
	xpBase   = 100
	xpGrowth = 1.25
)

// Stat growth applied on each level gained
const (
	levelUpMaxHPGain   = 10
	levelUpAttackGain  = 2
	levelUpDefenseGain = 1
)

// XPToNextLevel returns the XP threshold to advance past the given
// level: floor(100 * 1.25^(level-1)). Strictly increasing in level.
func XPToNextLevel(level int) int {
	return int(xpBase * math.Pow(xpGrowth, float64(level-1)))
}

// LevelUpResult reports what a GrantXP call did
type LevelUpResult struct {
	XPGained     int
	LeveledUp    bool
	NewLevel     int
	LevelsGained int
}

// GrantXP adds xp to the player and runs the level-up loop: while the
// accumulated XP reaches the threshold for the current level, the
// threshold is consumed and the level rises. A single grant can cross
// several level boundaries, so this loops rather than branching once.
// Each level gained also applies stat growth and fully heals the
// player. On return CurrentXP is below the threshold for Level.
func GrantXP(p *entities.Player, xp int) LevelUpResult {
	p.CurrentXP += xp

	res := LevelUpResult{XPGained: xp}
	for p.CurrentXP >= XPToNextLevel(p.Level) {
		p.CurrentXP -= XPToNextLevel(p.Level)
		p.Level++

		p.MaxHP += levelUpMaxHPGain
		p.HP = p.MaxHP
		p.Attack += levelUpAttackGain
		p.Defense += levelUpDefenseGain

		res.LeveledUp = true
		res.NewLevel = p.Level
		res.LevelsGained++
	}
	return res
}
