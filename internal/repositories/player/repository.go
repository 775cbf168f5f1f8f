// Package player provides storage for player state.
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/codequest-gg/codequest-api/internal/repositories/player Repository

import (
	"context"

	"github.com/codequest-gg/codequest-api/internal/entities"
)

// Repository defines the storage interface for players
type Repository interface {
	// Create stores a new player; fails if the ID already exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a player by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save overwrites an existing player's state
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// CreateInput defines the request for creating a player
type CreateInput struct {
	Player *entities.Player
}

// CreateOutput defines the response for creating a player
type CreateOutput struct {
	Player *entities.Player
}

// GetInput defines the request for retrieving a player
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a player
type GetOutput struct {
	Player *entities.Player
}

// SaveInput defines the request for saving a player
type SaveInput struct {
	Player *entities.Player
}

// SaveOutput defines the response for saving a player
type SaveOutput struct{}
