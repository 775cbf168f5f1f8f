package entities

// Character is a playable avatar skin with an unlock gate: minimum
// level, completed quests, and an optional coin cost.
type Character struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Description string `json:"description,omitempty" yaml:"description"`
	SpriteKey   string `json:"sprite_key" yaml:"sprite_key"`

	LevelRequired  int      `json:"level_required" yaml:"level_required"`
	QuestsRequired []string `json:"quests_required" yaml:"quests_required"`
	CoinCost       int      `json:"coin_cost" yaml:"coin_cost"`

	SortOrder int `json:"sort_order" yaml:"sort_order"`
}
