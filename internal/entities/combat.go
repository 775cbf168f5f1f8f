package entities

import "time"

// CombatAction is a player's choice for one combat turn
type CombatAction string

// Combat actions
const (
	ActionAttack  CombatAction = "attack"
	ActionDefend  CombatAction = "defend"
	ActionFlee    CombatAction = "flee"
	ActionUseItem CombatAction = "useItem"
)

// ValidCombatAction reports whether a names a known combat action
func ValidCombatAction(a CombatAction) bool {
	switch a {
	case ActionAttack, ActionDefend, ActionFlee, ActionUseItem:
		return true
	}
	return false
}

// CombatOutcome is a terminal combat result
type CombatOutcome string

// Combat outcomes
const (
	OutcomeVictory CombatOutcome = "victory"
	OutcomeDefeat  CombatOutcome = "defeat"
	OutcomeFled    CombatOutcome = "fled"
)

// Enemy is read-mostly content describing an enemy template. Base
// stats are scaled per encounter by a level multiplier.
type Enemy struct {
	ID          string `json:"id" yaml:"id"`
	EnemyType   string `json:"enemy_type" yaml:"enemy_type"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`

	BaseHP      int     `json:"base_hp" yaml:"base_hp"`
	BaseAttack  int     `json:"base_attack" yaml:"base_attack"`
	BaseDefense int     `json:"base_defense" yaml:"base_defense"`
	BaseSpeed   int     `json:"base_speed" yaml:"base_speed"`
	CritChance  float64 `json:"crit_chance" yaml:"crit_chance"`

	XPReward   int         `json:"xp_reward" yaml:"xp_reward"`
	CoinReward int         `json:"coin_reward" yaml:"coin_reward"`
	LootTable  []LootEntry `json:"loot_table" yaml:"loot_table"`

	IsBoss    bool   `json:"is_boss" yaml:"is_boss"`
	SpriteKey string `json:"sprite_key" yaml:"sprite_key"`
}

// EnemySpawn places an enemy template in a zone with a level range
type EnemySpawn struct {
	ID      string `json:"id" yaml:"id"`
	ZoneID  string `json:"zone_id" yaml:"zone_id"`
	EnemyID string `json:"enemy_id" yaml:"enemy_id"`

	SpawnX int `json:"spawn_x" yaml:"spawn_x"`
	SpawnY int `json:"spawn_y" yaml:"spawn_y"`

	LevelMin int `json:"level_min" yaml:"level_min"`
	LevelMax int `json:"level_max" yaml:"level_max"`

	IsBoss bool `json:"is_boss" yaml:"is_boss"`
}

// ScaledEnemy is an enemy template's stats after level scaling, the
// snapshot a combat session carries between turns
type ScaledEnemy struct {
	EnemyID    string  `json:"enemy_id"`
	Name       string  `json:"name"`
	EnemyType  string  `json:"enemy_type"`
	Level      int     `json:"level"`
	HP         int     `json:"hp"`
	MaxHP      int     `json:"max_hp"`
	Attack     int     `json:"attack"`
	Defense    int     `json:"defense"`
	CritChance float64 `json:"crit_chance"`
	XPReward   int     `json:"xp_reward"`
	CoinReward int     `json:"coin_reward"`
}

// CombatSession is the server-side state of one encounter, created by
// start-combat and carried across action calls until a terminal
// outcome removes it.
type CombatSession struct {
	ID       string      `json:"id"`
	PlayerID string      `json:"player_id"`
	SpawnID  string      `json:"spawn_id"`
	Enemy    ScaledEnemy `json:"enemy"`
	Turn     int         `json:"turn"`

	CreatedAt time.Time `json:"created_at"`
}

// DamageInfo describes one side's damage in a resolved combat turn
type DamageInfo struct {
	Amount        int  `json:"amount"`
	IsCritical    bool `json:"is_critical"`
	WasBlocked    bool `json:"was_blocked"`
	BlockedAmount int  `json:"blocked_amount"`
}
