// Package questprogress provides storage for per-player quest
// progress records.
package questprogress

//go:generate mockgen -destination=mock/mock_repository.go -package=questprogressmock github.com/codequest-gg/codequest-api/internal/repositories/quest_progress Repository

import (
	"context"

	"github.com/codequest-gg/codequest-api/internal/entities"
)

// Repository defines the storage interface for quest progress.
// Records are keyed by the (player, quest) pair.
type Repository interface {
	// Get retrieves the progress record for a (player, quest) pair
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save upserts a progress record
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// ListByPlayer retrieves all progress records for a player
	ListByPlayer(ctx context.Context, input ListByPlayerInput) (*ListByPlayerOutput, error)
}

// GetInput defines the request for retrieving a progress record
type GetInput struct {
	PlayerID string
	QuestID  string
}

// GetOutput defines the response for retrieving a progress record
type GetOutput struct {
	Progress *entities.QuestProgress
}

// SaveInput defines the request for saving a progress record
type SaveInput struct {
	Progress *entities.QuestProgress
}

// SaveOutput defines the response for saving a progress record
type SaveOutput struct{}

// ListByPlayerInput defines the request for listing a player's records
type ListByPlayerInput struct {
	PlayerID string
}

// ListByPlayerOutput defines the response for listing a player's records
type ListByPlayerOutput struct {
	Records []*entities.QuestProgress
}
