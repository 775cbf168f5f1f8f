// Package combatsession provides storage for in-flight combat encounters.
//
// A session holds the scaled enemy snapshot and turn counter for one
// player's encounter. Sessions expire on their own so an abandoned
// fight never needs explicit cleanup.
package combatsession

//go:generate mockgen -destination=mock/mock_repository.go -package=combatsessionmock -source=repository.go

import (
	"context"
	"time"

	"github.com/codequest-gg/codequest-api/internal/entities"
)

// Repository defines the interface for combat session storage
type Repository interface {
	// Create stores a new session with the given TTL.
	// A player may hold at most one active session at a time.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves the active session for a player.
	// Returns NotFound if none exists or it has expired.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists updated session state, refreshing the TTL
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a player's session once combat resolves
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput contains the session to store
type CreateInput struct {
	Session *entities.CombatSession
	TTL     time.Duration
}

// CreateOutput contains the stored session
type CreateOutput struct {
	Session *entities.CombatSession
}

// GetInput identifies the player whose session to fetch
type GetInput struct {
	PlayerID string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *entities.CombatSession
}

// SaveInput contains the session to update
type SaveInput struct {
	Session *entities.CombatSession
	TTL     time.Duration
}

// SaveOutput is returned after a successful save
type SaveOutput struct{}

// DeleteInput identifies the player whose session to remove
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput is returned after a successful delete
type DeleteOutput struct{}
