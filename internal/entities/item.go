package entities

// Item types
const (
	ItemTypeWeapon     = "weapon"
	ItemTypeArmor      = "armor"
	ItemTypeConsumable = "consumable"
	ItemTypeKey        = "key"
	ItemTypeQuest      = "quest"
	ItemTypeMaterial   = "material"
)

// Consumable effect types
const (
	EffectHeal = "heal"
	EffectMana = "mana"
)

// Item is read-mostly content describing one item definition
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`

	ItemType string `json:"item_type" yaml:"item_type"`
	Rarity   string `json:"rarity" yaml:"rarity"`

	Stackable bool `json:"stackable" yaml:"stackable"`
	MaxStack  int  `json:"max_stack" yaml:"max_stack"`

	BuyPrice  int `json:"buy_price" yaml:"buy_price"`
	SellPrice int `json:"sell_price" yaml:"sell_price"`

	// Equipment stats (weapons and armor)
	AttackBonus  int       `json:"attack_bonus,omitempty" yaml:"attack_bonus"`
	DefenseBonus int       `json:"defense_bonus,omitempty" yaml:"defense_bonus"`
	HPBonus      int       `json:"hp_bonus,omitempty" yaml:"hp_bonus"`
	CritBonus    float64   `json:"crit_bonus,omitempty" yaml:"crit_bonus"`
	EquipSlot    EquipSlot `json:"equip_slot,omitempty" yaml:"equip_slot"`

	// Consumable effect
	EffectType  string `json:"effect_type,omitempty" yaml:"effect_type"`
	EffectValue int    `json:"effect_value,omitempty" yaml:"effect_value"`

	SpriteKey string `json:"sprite_key" yaml:"sprite_key"`
}

// InventoryEntry is one stack of an item owned by a player
type InventoryEntry struct {
	PlayerID   string `json:"player_id"`
	ItemID     string `json:"item_id"`
	Quantity   int    `json:"quantity"`
	IsEquipped bool   `json:"is_equipped"`
}

// LootEntry is one independently rolled line of a loot table
type LootEntry struct {
	ItemID   string  `json:"item_id" yaml:"item_id"`
	Chance   float64 `json:"chance" yaml:"chance"`
	Quantity int     `json:"quantity" yaml:"quantity"`
}

// LootDrop is a granted loot table hit
type LootDrop struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Rarity   string `json:"rarity"`
}
