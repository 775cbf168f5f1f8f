// Package chestprogress tracks which one-time chests a player has opened.
package chestprogress

//go:generate mockgen -destination=mock/mock_repository.go -package=chestprogressmock -source=repository.go

import (
	"context"

	"github.com/codequest-gg/codequest-api/internal/entities"
)

// Repository defines the interface for chest progress storage
type Repository interface {
	// Get retrieves a player's open record for a chest.
	// Returns NotFound if the chest has never been opened.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save records that a player opened a chest
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput identifies the record to retrieve
type GetInput struct {
	PlayerID string
	ChestID  string
}

// GetOutput contains the retrieved record
type GetOutput struct {
	Progress *entities.ChestProgress
}

// SaveInput contains the record to persist
type SaveInput struct {
	Progress *entities.ChestProgress
}

// SaveOutput is returned after a successful save
type SaveOutput struct{}
