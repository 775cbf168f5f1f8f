// Package chest implements the chest orchestrator: opening world
// chests, rolling their loot tables, and tracking one-time opens.
package chest

//go:generate mockgen -destination=mock/mock_service.go -package=chestmock github.com/codequest-gg/codequest-api/internal/orchestrators/chest Service

import (
	"context"
	"log/slog"

	"github.com/codequest-gg/codequest-api/internal/engine"
	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/pkg/clock"
	"github.com/codequest-gg/codequest-api/internal/pkg/rng"
	chestprogress "github.com/codequest-gg/codequest-api/internal/repositories/chest_progress"
	contentrepo "github.com/codequest-gg/codequest-api/internal/repositories/content"
	inventoryrepo "github.com/codequest-gg/codequest-api/internal/repositories/inventory"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
)

// Service defines the interface for chest operations
type Service interface {
	// GetChest returns a chest definition with the player's open state
	GetChest(ctx context.Context, input *GetChestInput) (*GetChestOutput, error)

	// OpenChest opens a chest: consumes the key if locked, grants the
	// flat coins, rolls the loot table, and records one-time opens
	OpenChest(ctx context.Context, input *OpenChestInput) (*OpenChestOutput, error)
}

// GetChestInput defines the request for fetching a chest
type GetChestInput struct {
	PlayerID string
	ChestID  string
}

// GetChestOutput defines the response for fetching a chest
type GetChestOutput struct {
	Chest         *entities.Chest
	AlreadyOpened bool
}

// OpenChestInput defines the request for opening a chest
type OpenChestInput struct {
	PlayerID string
	ChestID  string
}

// OpenChestOutput defines the response for opening a chest
type OpenChestOutput struct {
	CoinsGained int
	Loot        []*entities.LootDrop
	KeyConsumed string
}

// Config holds the dependencies for the chest orchestrator
type Config struct {
	PlayerRepo        playerrepo.Repository
	InventoryRepo     inventoryrepo.Repository
	ChestProgressRepo chestprogress.Repository
	ContentRepo       contentrepo.Repository
	Roller            rng.Roller
	Clock             clock.Clock
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
	if c.ChestProgressRepo == nil {
		vb.RequiredField("ChestProgressRepo")
	}
	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo        playerrepo.Repository
	inventoryRepo     inventoryrepo.Repository
	chestProgressRepo chestprogress.Repository
	contentRepo       contentrepo.Repository
	roller            rng.Roller
	clock             clock.Clock
}

// NewOrchestrator creates a new chest orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo:        cfg.PlayerRepo,
		inventoryRepo:     cfg.InventoryRepo,
		chestProgressRepo: cfg.ChestProgressRepo,
		contentRepo:       cfg.ContentRepo,
		roller:            cfg.Roller,
		clock:             cfg.Clock,
	}, nil
}

func (o *orchestrator) alreadyOpened(ctx context.Context, playerID, chestID string) (bool, error) {
	_, err := o.chestProgressRepo.Get(ctx, chestprogress.GetInput{
		PlayerID: playerID,
		ChestID:  chestID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (o *orchestrator) GetChest(ctx context.Context, input *GetChestInput) (*GetChestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.ChestID == "" {
		return nil, errors.InvalidArgument("chest ID is required")
	}

	chest, err := o.contentRepo.GetChest(ctx, input.ChestID)
	if err != nil {
		return nil, err
	}

	opened, err := o.alreadyOpened(ctx, input.PlayerID, input.ChestID)
	if err != nil {
		return nil, err
	}

	return &GetChestOutput{Chest: chest, AlreadyOpened: opened}, nil
}

func (o *orchestrator) OpenChest(ctx context.Context, input *OpenChestInput) (*OpenChestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.ChestID == "" {
		return nil, errors.InvalidArgument("chest ID is required")
	}

	chest, err := o.contentRepo.GetChest(ctx, input.ChestID)
	if err != nil {
		return nil, err
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	// All preconditions before any mutation
	if chest.IsOneTime {
		opened, err := o.alreadyOpened(ctx, input.PlayerID, input.ChestID)
		if err != nil {
			return nil, err
		}
		if opened {
			return nil, errors.FailedPreconditionf("chest %s already opened", chest.ID)
		}
	}

	var keyEntry *entities.InventoryEntry
	if chest.IsLocked {
		if chest.RequiredKeyItemID == "" {
			return nil, errors.Internalf("chest %s is locked but names no key item", chest.ID)
		}
		entryOut, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{
			PlayerID: input.PlayerID,
			ItemID:   chest.RequiredKeyItemID,
		})
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.FailedPreconditionf("chest %s requires a key", chest.ID).
					WithMeta("required_key_item_id", chest.RequiredKeyItemID)
			}
			return nil, err
		}
		keyEntry = entryOut.Entry
	}

	result := &OpenChestOutput{CoinsGained: chest.CoinAmount}

	if keyEntry != nil {
		keyEntry.Quantity--
		if _, err := o.inventoryRepo.Save(ctx, inventoryrepo.SaveInput{Entry: keyEntry}); err != nil {
			return nil, err
		}
		result.KeyConsumed = chest.RequiredKeyItemID
	}

	// Flat coins are always granted; loot entries roll independently
	p.Coins += chest.CoinAmount
	if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
		return nil, err
	}

	for _, hit := range engine.RollLoot(o.roller, chest.LootTable) {
		drop, err := o.grantLoot(ctx, input.PlayerID, hit)
		if err != nil {
			return nil, err
		}
		result.Loot = append(result.Loot, drop)
	}

	if chest.IsOneTime {
		if _, err := o.chestProgressRepo.Save(ctx, chestprogress.SaveInput{
			Progress: &entities.ChestProgress{
				PlayerID: input.PlayerID,
				ChestID:  input.ChestID,
				OpenedAt: o.clock.Now(),
			},
		}); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "chest opened",
		"player_id", input.PlayerID,
		"chest_id", input.ChestID,
		"coins_gained", result.CoinsGained,
		"loot_drops", len(result.Loot))

	return result, nil
}

func (o *orchestrator) grantLoot(ctx context.Context, playerID string, hit engine.LootHit) (*entities.LootDrop, error) {
	item, err := o.contentRepo.GetItem(ctx, hit.ItemID)
	if err != nil {
		return nil, err
	}

	entry := &entities.InventoryEntry{PlayerID: playerID, ItemID: hit.ItemID}
	entryOut, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{
		PlayerID: playerID,
		ItemID:   hit.ItemID,
	})
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if err == nil {
		entry = entryOut.Entry
	}

	entry.Quantity += hit.Quantity
	if _, err := o.inventoryRepo.Save(ctx, inventoryrepo.SaveInput{Entry: entry}); err != nil {
		return nil, err
	}

	return &entities.LootDrop{
		ItemID:   item.ID,
		Name:     item.Name,
		Quantity: hit.Quantity,
		Rarity:   item.Rarity,
	}, nil
}
