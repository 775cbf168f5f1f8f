// Package progression implements the progression orchestrator:
// player creation and the level/XP summary.
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/codequest-gg/codequest-api/internal/orchestrators/progression Service

import (
	"context"
	"log/slog"

	"github.com/codequest-gg/codequest-api/internal/engine"
	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/pkg/idgen"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
)

// Service defines the interface for progression operations
type Service interface {
	// CreatePlayer provisions a new player with starting stats
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)

	// GetProgression returns a player's level, XP, and coin summary
	GetProgression(ctx context.Context, input *GetProgressionInput) (*GetProgressionOutput, error)
}

// CreatePlayerInput defines the request for creating a player
type CreatePlayerInput struct {
	// PlayerID is optional; a UUID is generated when empty
	PlayerID string
}

// CreatePlayerOutput defines the response for creating a player
type CreatePlayerOutput struct {
	Player *entities.Player
}

// GetProgressionInput defines the request for a progression summary
type GetProgressionInput struct {
	PlayerID string
}

// GetProgressionOutput defines the response for a progression summary
type GetProgressionOutput struct {
	Player        *entities.Player
	XPToNextLevel int
}

// Config holds the dependencies for the progression orchestrator
type Config struct {
	PlayerRepo  playerrepo.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo playerrepo.Repository
	idGen      idgen.Generator
}

// NewOrchestrator creates a new progression orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		idGen:      cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	playerID := input.PlayerID
	if playerID == "" {
		playerID = o.idGen.Generate()
	}

	p := entities.NewPlayer(playerID)
	if _, err := o.playerRepo.Create(ctx, playerrepo.CreateInput{Player: p}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created player", "player_id", playerID)

	return &CreatePlayerOutput{Player: p}, nil
}

func (o *orchestrator) GetProgression(ctx context.Context, input *GetProgressionInput) (*GetProgressionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &GetProgressionOutput{
		Player:        out.Player,
		XPToNextLevel: engine.XPToNextLevel(out.Player.Level),
	}, nil
}
