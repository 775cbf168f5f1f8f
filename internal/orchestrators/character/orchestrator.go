// Package character implements the character orchestrator: unlock
// gate evaluation, selection, and coin purchases.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/codequest-gg/codequest-api/internal/orchestrators/character Service

import (
	"context"
	"log/slog"

	"github.com/codequest-gg/codequest-api/internal/engine"
	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	contentrepo "github.com/codequest-gg/codequest-api/internal/repositories/content"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
	questprogress "github.com/codequest-gg/codequest-api/internal/repositories/quest_progress"
)

// Service defines the interface for character operations
type Service interface {
	// ListCharacters returns every character with the player's unlock
	// evaluation, ownership, and selection state
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// SelectCharacter switches the player's selected character. Free
	// characters need only their gates; priced ones must be owned.
	SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error)

	// PurchaseCharacter debits the coin cost once, adds the character
	// to the owned set, and selects it
	PurchaseCharacter(ctx context.Context, input *PurchaseCharacterInput) (*PurchaseCharacterOutput, error)
}

// CharacterView is one character annotated with the player's state
type CharacterView struct {
	Character  *entities.Character
	Unlocked   bool
	LockReason string
	Owned      bool
	Selected   bool
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*CharacterView
}

// SelectCharacterInput defines the request for selecting a character
type SelectCharacterInput struct {
	PlayerID    string
	CharacterID string
}

// SelectCharacterOutput defines the response for selecting a character
type SelectCharacterOutput struct {
	Player *entities.Player
}

// PurchaseCharacterInput defines the request for purchasing a character
type PurchaseCharacterInput struct {
	PlayerID    string
	CharacterID string
}

// PurchaseCharacterOutput defines the response for purchasing a character
type PurchaseCharacterOutput struct {
	Player     *entities.Player
	CoinsSpent int
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	PlayerRepo        playerrepo.Repository
	QuestProgressRepo questprogress.Repository
	ContentRepo       contentrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.QuestProgressRepo == nil {
		vb.RequiredField("QuestProgressRepo")
	}
	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo        playerrepo.Repository
	questProgressRepo questprogress.Repository
	contentRepo       contentrepo.Repository
}

// NewOrchestrator creates a new character orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo:        cfg.PlayerRepo,
		questProgressRepo: cfg.QuestProgressRepo,
		contentRepo:       cfg.ContentRepo,
	}, nil
}

func (o *orchestrator) completedSet(ctx context.Context, playerID string) (map[string]bool, error) {
	out, err := o.questProgressRepo.ListByPlayer(ctx, questprogress.ListByPlayerInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool)
	for _, rec := range out.Records {
		if rec.IsCompleted() {
			completed[rec.QuestID] = true
		}
	}
	return completed, nil
}

func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
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

	characters, err := o.contentRepo.ListCharacters(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := o.completedSet(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	views := make([]*CharacterView, 0, len(characters))
	for _, c := range characters {
		unlock := engine.EvaluateCharacterUnlock(c, p, completed)
		views = append(views, &CharacterView{
			Character:  c,
			Unlocked:   unlock.Unlocked,
			LockReason: unlock.Reason,
			Owned:      p.HasUnlocked(c.ID),
			Selected:   p.SelectedCharacterID == c.ID,
		})
	}

	return &ListCharactersOutput{Characters: views}, nil
}

// checkGates verifies the level and quest gates, returning a
// PERMISSION_DENIED error naming the failing gate
func checkGates(c *entities.Character, p *entities.Player, completed map[string]bool) error {
	if p.Level < c.LevelRequired {
		return errors.PermissionDeniedf("Requires level %d", c.LevelRequired).
			WithMeta("level_required", c.LevelRequired)
	}
	for _, qid := range c.QuestsRequired {
		if !completed[qid] {
			return errors.PermissionDenied("Complete required quests").
				WithMeta("quests_required", c.QuestsRequired)
		}
	}
	return nil
}

func (o *orchestrator) SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	c, err := o.contentRepo.GetCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	completed, err := o.completedSet(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := checkGates(c, p, completed); err != nil {
		return nil, err
	}
	if c.CoinCost > 0 && !p.HasUnlocked(c.ID) {
		return nil, errors.FailedPreconditionf("Purchase for %d coins", c.CoinCost).
			WithMeta("coin_cost", c.CoinCost)
	}

	p.SelectedCharacterID = c.ID
	if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
		return nil, err
	}

	return &SelectCharacterOutput{Player: p}, nil
}

func (o *orchestrator) PurchaseCharacter(ctx context.Context, input *PurchaseCharacterInput) (*PurchaseCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	c, err := o.contentRepo.GetCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if c.CoinCost == 0 {
		return nil, errors.FailedPreconditionf("character %s has no coin cost, select it directly", c.ID)
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	if p.HasUnlocked(c.ID) {
		return nil, errors.AlreadyExistsf("character %s already owned", c.ID)
	}

	completed, err := o.completedSet(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if err := checkGates(c, p, completed); err != nil {
		return nil, err
	}

	if p.Coins < c.CoinCost {
		return nil, errors.FailedPreconditionf("Costs %d coins", c.CoinCost).
			WithMeta("coin_cost", c.CoinCost).
			WithMeta("coins", p.Coins)
	}

	p.Coins -= c.CoinCost
	p.UnlockedCharacterIDs = append(p.UnlockedCharacterIDs, c.ID)
	p.SelectedCharacterID = c.ID

	if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character purchased",
		"player_id", input.PlayerID,
		"character_id", c.ID,
		"coin_cost", c.CoinCost)

	return &PurchaseCharacterOutput{Player: p, CoinsSpent: c.CoinCost}, nil
}
