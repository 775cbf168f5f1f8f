package engine

import (
	"fmt"

	"github.com/codequest-gg/codequest-api/internal/entities"
)

// Default star thresholds when a quest defines none
var defaultStarThresholds = map[int]int{1: 999, 2: 50, 3: 20}

// StarRating converts an attempt's action count into a 1-3 star
// score. Thresholds are maximum action counts per star and decrease
// monotonically with star count, so the 3-star check is the tightest.
func StarRating(thresholds map[int]int, actionCount int) int {
	lookup := func(star, fallback int) int {
		if v, ok := thresholds[star]; ok {
			return v
		}
		return fallback
	}

	stars := 1
	if actionCount <= lookup(3, defaultStarThresholds[3]) {
		stars = 3
	} else if actionCount <= lookup(2, defaultStarThresholds[2]) {
		stars = 2
	}
	return stars
}

// QuestStatus evaluates a quest's gate for a player. Completion wins
// over gating: a completed quest stays completed even if the player
// could no longer unlock it. Otherwise the quest is unlocked when the
// level gate is met and every prerequisite is in the completed set;
// an empty prerequisite set is vacuously satisfied. Prerequisite
// graphs are authored acyclic; no cycle detection happens here.
func QuestStatus(q *entities.Quest, playerLevel int, completed map[string]bool) entities.QuestStatus {
	if completed[q.ID] {
		return entities.QuestCompleted
	}

	for _, pre := range q.PrerequisiteQuests {
		if !completed[pre] {
			return entities.QuestLocked
		}
	}
	if playerLevel < q.LevelRequirement {
		return entities.QuestLocked
	}
	return entities.QuestUnlocked
}

// CharacterUnlock is the result of evaluating a character's gate
type CharacterUnlock struct {
	Unlocked bool
	// Reason is empty when unlocked, otherwise a player-facing
	// explanation of the failing gate
	Reason string
}

// EvaluateCharacterUnlock checks a character's gate against the
// player. An owned character is always unlocked. Otherwise the level
// and quest gates must hold, and a coin-priced character additionally
// requires affordability; the purchase itself is a separate operation.
func EvaluateCharacterUnlock(c *entities.Character, p *entities.Player, completed map[string]bool) CharacterUnlock {
	if p.HasUnlocked(c.ID) {
		return CharacterUnlock{Unlocked: true}
	}

	levelOk := p.Level >= c.LevelRequired
	questsOk := true
	for _, qid := range c.QuestsRequired {
		if !completed[qid] {
			questsOk = false
			break
		}
	}
	coinsOk := c.CoinCost == 0 || p.Coins >= c.CoinCost

	if levelOk && questsOk && coinsOk {
		return CharacterUnlock{Unlocked: true}
	}

	var reason string
	switch {
	case !levelOk:
		reason = fmt.Sprintf("Requires level %d", c.LevelRequired)
	case !questsOk:
		reason = "Complete required quests"
	default:
		reason = fmt.Sprintf("Costs %d coins", c.CoinCost)
	}
	return CharacterUnlock{Reason: reason}
}
