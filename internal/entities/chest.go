package entities

import "time"

// Chest is read-mostly content describing a world chest
type Chest struct {
	ID     string `json:"id" yaml:"id"`
	ZoneID string `json:"zone_id" yaml:"zone_id"`

	ChestType string `json:"chest_type" yaml:"chest_type"`
	PositionX int    `json:"position_x" yaml:"position_x"`
	PositionY int    `json:"position_y" yaml:"position_y"`

	LootTable  []LootEntry `json:"loot_table" yaml:"loot_table"`
	CoinAmount int         `json:"coin_amount" yaml:"coin_amount"`

	// Locked chests consume the named key item on open
	IsLocked          bool   `json:"is_locked" yaml:"is_locked"`
	RequiredKeyItemID string `json:"required_key_item_id,omitempty" yaml:"required_key_item_id"`

	IsOneTime bool `json:"is_one_time" yaml:"is_one_time"`
}

// ChestProgress records that a player opened a one-time chest
type ChestProgress struct {
	PlayerID string    `json:"player_id"`
	ChestID  string    `json:"chest_id"`
	OpenedAt time.Time `json:"opened_at"`
}
