package entities

import "time"

// QuestStatus is a player's status toward a quest
type QuestStatus string

// Quest statuses
const (
	QuestLocked    QuestStatus = "locked"
	QuestUnlocked  QuestStatus = "unlocked"
	QuestCompleted QuestStatus = "completed"
)

// Quest is read-mostly content describing one node of the quest map.
// PrerequisiteQuests must form a DAG; content authoring guarantees
// acyclicity and the runtime evaluator does not re-check it.
type Quest struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
	Difficulty  string `json:"difficulty" yaml:"difficulty"`

	XPReward   int `json:"xp_reward" yaml:"xp_reward"`
	CoinReward int `json:"coin_reward" yaml:"coin_reward"`

	// Map positioning (0-1000 scale)
	NodeX int `json:"node_x" yaml:"node_x"`
	NodeY int `json:"node_y" yaml:"node_y"`

	LevelRequirement   int      `json:"level_requirement" yaml:"level_requirement"`
	PrerequisiteQuests []string `json:"prerequisite_quests" yaml:"prerequisite_quests"`

	// Star rating thresholds: star count to maximum action count.
	// Empty means the default {1: 999, 2: 50, 3: 20}.
	StarThresholds map[int]int `json:"star_thresholds,omitempty" yaml:"star_thresholds"`
}

// QuestProgress is the per-(player, quest) progress record.
// StarsEarned only rises, BestActionCount only falls, Attempts only
// grows, and CompletedAt is never cleared once set.
type QuestProgress struct {
	PlayerID string `json:"player_id"`
	QuestID  string `json:"quest_id"`

	StarsEarned     int        `json:"stars_earned"`
	BestActionCount *int       `json:"best_action_count,omitempty"`
	Attempts        int        `json:"attempts"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// IsCompleted reports whether the quest has ever been completed
func (qp *QuestProgress) IsCompleted() bool {
	return qp != nil && qp.CompletedAt != nil
}
