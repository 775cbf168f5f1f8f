// Package inventory provides storage for player inventory stacks.
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/codequest-gg/codequest-api/internal/repositories/inventory Repository

import (
	"context"

	"github.com/codequest-gg/codequest-api/internal/entities"
)

// Repository defines the storage interface for inventory entries.
// One entry per (player, item) pair; quantities track the stack size.
type Repository interface {
	// Get retrieves a player's stack of an item
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save upserts a stack; a quantity of zero or below removes it
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Remove deletes a stack outright
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)

	// ListByPlayer retrieves all stacks a player owns
	ListByPlayer(ctx context.Context, input ListByPlayerInput) (*ListByPlayerOutput, error)
}

// GetInput defines the request for retrieving a stack
type GetInput struct {
	PlayerID string
	ItemID   string
}

// GetOutput defines the response for retrieving a stack
type GetOutput struct {
	Entry *entities.InventoryEntry
}

// SaveInput defines the request for saving a stack
type SaveInput struct {
	Entry *entities.InventoryEntry
}

// SaveOutput defines the response for saving a stack
type SaveOutput struct{}

// RemoveInput defines the request for removing a stack
type RemoveInput struct {
	PlayerID string
	ItemID   string
}

// RemoveOutput defines the response for removing a stack
type RemoveOutput struct{}

// ListByPlayerInput defines the request for listing a player's stacks
type ListByPlayerInput struct {
	PlayerID string
}

// ListByPlayerOutput defines the response for listing a player's stacks
type ListByPlayerOutput struct {
	Entries []*entities.InventoryEntry
}
