// Package inventory implements the inventory orchestrator: listing a
// player's items, using consumables out of combat, equipping and
// unequipping gear, and dropping stacks.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/codequest-gg/codequest-api/internal/orchestrators/inventory Service

import (
	"context"
	"log/slog"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	contentrepo "github.com/codequest-gg/codequest-api/internal/repositories/content"
	inventoryrepo "github.com/codequest-gg/codequest-api/internal/repositories/inventory"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
)

// Service defines the interface for inventory operations
type Service interface {
	// GetInventory lists a player's stacks with item definitions and
	// the equipped slot map
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// UseItem consumes one unit of a consumable and applies its effect
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)

	// EquipItem equips a weapon or armor piece into its slot,
	// swapping out whatever occupied it
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// UnequipItem clears an equipment slot
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)

	// DropItem discards part or all of a stack; equipped items are
	// protected
	DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error)
}

// InventoryItem is one stack joined with its item definition
type InventoryItem struct {
	Item     *entities.Item
	Quantity int
	Equipped bool
}

// GetInventoryInput defines the request for listing the inventory
type GetInventoryInput struct {
	PlayerID string
}

// GetInventoryOutput defines the response for listing the inventory
type GetInventoryOutput struct {
	Items    []*InventoryItem
	Equipped map[entities.EquipSlot]string
}

// UseItemInput defines the request for using a consumable
type UseItemInput struct {
	PlayerID string
	ItemID   string
}

// UseItemOutput defines the response for using a consumable
type UseItemOutput struct {
	Player        *entities.Player
	EffectType    string
	EffectApplied int
	Remaining     int
}

// EquipItemInput defines the request for equipping an item
type EquipItemInput struct {
	PlayerID string
	ItemID   string
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	Player   *entities.Player
	Slot     entities.EquipSlot
	Replaced string
}

// UnequipItemInput defines the request for clearing a slot
type UnequipItemInput struct {
	PlayerID string
	Slot     entities.EquipSlot
}

// UnequipItemOutput defines the response for clearing a slot
type UnequipItemOutput struct {
	Player     *entities.Player
	Unequipped string
}

// DropItemInput defines the request for dropping a stack
type DropItemInput struct {
	PlayerID string
	ItemID   string

	// Quantity to drop; 0 or below drops the whole stack
	Quantity int
}

// DropItemOutput defines the response for dropping a stack
type DropItemOutput struct {
	Remaining int
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	PlayerRepo    playerrepo.Repository
	InventoryRepo inventoryrepo.Repository
	ContentRepo   contentrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo    playerrepo.Repository
	inventoryRepo inventoryrepo.Repository
	contentRepo   contentrepo.Repository
}

// NewOrchestrator creates a new inventory orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo:    cfg.PlayerRepo,
		inventoryRepo: cfg.InventoryRepo,
		contentRepo:   cfg.ContentRepo,
	}, nil
}

func (o *orchestrator) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	listOut, err := o.inventoryRepo.ListByPlayer(ctx, inventoryrepo.ListByPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	equippedIDs := make(map[string]bool, len(p.Equipped))
	for _, itemID := range p.Equipped {
		equippedIDs[itemID] = true
	}

	items := make([]*InventoryItem, 0, len(listOut.Entries))
	for _, entry := range listOut.Entries {
		item, err := o.contentRepo.GetItem(ctx, entry.ItemID)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "inventory references unknown item",
					"player_id", input.PlayerID,
					"item_id", entry.ItemID)
				continue
			}
			return nil, err
		}
		items = append(items, &InventoryItem{
			Item:     item,
			Quantity: entry.Quantity,
			Equipped: equippedIDs[entry.ItemID],
		})
	}

	return &GetInventoryOutput{Items: items, Equipped: p.Equipped}, nil
}

func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	item, err := o.contentRepo.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.ItemType != entities.ItemTypeConsumable {
		return nil, errors.FailedPreconditionf("item %s is not consumable", item.ID)
	}

	entryOut, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{
		PlayerID: input.PlayerID,
		ItemID:   input.ItemID,
	})
	if err != nil {
		return nil, err
	}
	entry := entryOut.Entry
	if entry.Quantity < 1 {
		return nil, errors.FailedPreconditionf("no %s left to use", item.Name)
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	var applied int
	switch item.EffectType {
	case entities.EffectHeal:
		applied = item.EffectValue
		if p.HP+applied > p.MaxHP {
			applied = p.MaxHP - p.HP
		}
		p.HP += applied
	case entities.EffectMana:
		applied = item.EffectValue
		if p.MP+applied > p.MaxMP {
			applied = p.MaxMP - p.MP
		}
		p.MP += applied
	default:
		return nil, errors.FailedPreconditionf("item %s has no usable effect", item.ID)
	}

	entry.Quantity--
	if _, err := o.inventoryRepo.Save(ctx, inventoryrepo.SaveInput{Entry: entry}); err != nil {
		return nil, err
	}
	if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
		return nil, err
	}

	return &UseItemOutput{
		Player:        p,
		EffectType:    item.EffectType,
		EffectApplied: applied,
		Remaining:     entry.Quantity,
	}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	item, err := o.contentRepo.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.EquipSlot == "" || !entities.ValidEquipSlot(item.EquipSlot) {
		return nil, errors.FailedPreconditionf("item %s is not equippable", item.ID)
	}

	if _, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{
		PlayerID: input.PlayerID,
		ItemID:   input.ItemID,
	}); err != nil {
		return nil, err
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	if p.Equipped == nil {
		p.Equipped = make(map[entities.EquipSlot]string)
	}
	replaced := p.Equipped[item.EquipSlot]
	p.Equipped[item.EquipSlot] = item.ID

	if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
		return nil, err
	}

	return &EquipItemOutput{Player: p, Slot: item.EquipSlot, Replaced: replaced}, nil
}

func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if !entities.ValidEquipSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("unknown equipment slot %q", input.Slot)
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	itemID, ok := p.Equipped[input.Slot]
	if !ok {
		return nil, errors.FailedPreconditionf("nothing equipped in slot %s", input.Slot)
	}

	delete(p.Equipped, input.Slot)
	if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
		return nil, err
	}

	return &UnequipItemOutput{Player: p, Unequipped: itemID}, nil
}

func (o *orchestrator) DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	for slot, itemID := range playerOut.Player.Equipped {
		if itemID == input.ItemID {
			return nil, errors.FailedPreconditionf("unequip %s from %s before dropping", input.ItemID, slot)
		}
	}

	entryOut, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{
		PlayerID: input.PlayerID,
		ItemID:   input.ItemID,
	})
	if err != nil {
		return nil, err
	}
	entry := entryOut.Entry

	qty := input.Quantity
	if qty <= 0 || qty >= entry.Quantity {
		qty = entry.Quantity
	}

	entry.Quantity -= qty
	if _, err := o.inventoryRepo.Save(ctx, inventoryrepo.SaveInput{Entry: entry}); err != nil {
		return nil, err
	}

	return &DropItemOutput{Remaining: entry.Quantity}, nil
}
