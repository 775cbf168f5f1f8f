// Package entities defines the domain types shared by the engine,
// repositories, and orchestrators.
package entities

import "slices"

// EquipSlot identifies an equipment slot on the player
type EquipSlot string

// Equipment slots
const (
	SlotWeapon    EquipSlot = "weapon"
	SlotHead      EquipSlot = "head"
	SlotChest     EquipSlot = "chest"
	SlotLegs      EquipSlot = "legs"
	SlotFeet      EquipSlot = "feet"
	SlotAccessory EquipSlot = "accessory"
)

// EquipSlots lists all valid equipment slots
var EquipSlots = []EquipSlot{SlotWeapon, SlotHead, SlotChest, SlotLegs, SlotFeet, SlotAccessory}

// ValidEquipSlot reports whether s names a known equipment slot
func ValidEquipSlot(s EquipSlot) bool {
	return slices.Contains(EquipSlots, s)
}

// Player holds a player's progression and RPG state. Invariants:
// HP in [0, MaxHP]; CurrentXP always below the threshold for Level
// (the level-up loop re-establishes this after every XP grant).
type Player struct {
	ID string `json:"id"`

	// Progression
	Level     int `json:"level"`
	CurrentXP int `json:"current_xp"`
	Coins     int `json:"coins"`

	// Combat stats
	HP         int     `json:"hp"`
	MaxHP      int     `json:"max_hp"`
	MP         int     `json:"mp"`
	MaxMP      int     `json:"max_mp"`
	Attack     int     `json:"attack"`
	Defense    int     `json:"defense"`
	Speed      int     `json:"speed"`
	CritChance float64 `json:"crit_chance"`

	// Equipment, one item ID per slot
	Equipped map[EquipSlot]string `json:"equipped,omitempty"`

	// Playable characters. Unlocked tracks purchases independently of
	// the current selection.
	SelectedCharacterID  string   `json:"selected_character_id,omitempty"`
	UnlockedCharacterIDs []string `json:"unlocked_character_ids,omitempty"`
}

// NewPlayer creates a player with starting stats
func NewPlayer(id string) *Player {
	return &Player{
		ID:         id,
		Level:      1,
		CurrentXP:  0,
		Coins:      50,
		HP:         100,
		MaxHP:      100,
		MP:         30,
		MaxMP:      30,
		Attack:     10,
		Defense:    5,
		Speed:      5,
		CritChance: 0.05,
		Equipped:   make(map[EquipSlot]string),
	}
}

// HasUnlocked reports whether the player owns the given character
func (p *Player) HasUnlocked(characterID string) bool {
	return slices.Contains(p.UnlockedCharacterIDs, characterID)
}
