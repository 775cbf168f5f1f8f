// Package quest implements the quest orchestrator: the quest map with
// unlock statuses, per-quest detail, and the completion transaction.
package quest

//go:generate mockgen -destination=mock/mock_service.go -package=questmock github.com/codequest-gg/codequest-api/internal/orchestrators/quest Service

import (
	"context"
	"log/slog"

	"github.com/codequest-gg/codequest-api/internal/engine"
	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/pkg/clock"
	contentrepo "github.com/codequest-gg/codequest-api/internal/repositories/content"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
	questprogress "github.com/codequest-gg/codequest-api/internal/repositories/quest_progress"
)

// Service defines the interface for quest operations
type Service interface {
	// GetQuestMap returns every quest with the player's status plus
	// the prerequisite edge list for graph rendering
	GetQuestMap(ctx context.Context, input *GetQuestMapInput) (*GetQuestMapOutput, error)

	// GetQuest returns one quest with the player's status and progress
	GetQuest(ctx context.Context, input *GetQuestInput) (*GetQuestOutput, error)

	// CompleteQuest records a completed attempt: star rating, progress
	// update, and first-completion rewards with the level-up loop
	CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error)
}

// QuestNode is one quest annotated with the player's status
type QuestNode struct {
	Quest    *entities.Quest
	Status   entities.QuestStatus
	Progress *entities.QuestProgress
}

// PrerequisiteEdge is one edge of the quest graph, prerequisite first
type PrerequisiteEdge struct {
	FromQuestID string
	ToQuestID   string
}

// GetQuestMapInput defines the request for the quest map
type GetQuestMapInput struct {
	PlayerID string
}

// GetQuestMapOutput defines the response for the quest map
type GetQuestMapOutput struct {
	Nodes []*QuestNode
	Edges []PrerequisiteEdge
}

// GetQuestInput defines the request for one quest
type GetQuestInput struct {
	PlayerID string
	QuestID  string
}

// GetQuestOutput defines the response for one quest
type GetQuestOutput struct {
	Node *QuestNode
}

// CompleteQuestInput defines the request for completing a quest
type CompleteQuestInput struct {
	PlayerID    string
	QuestID     string
	ActionCount int

	// CoinsCollected is informational only; reward math ignores it
	CoinsCollected int
}

// CompleteQuestOutput defines the response for completing a quest
type CompleteQuestOutput struct {
	StarsEarned       int
	IsFirstCompletion bool
	XPGained          int
	CoinsGained       int
	LeveledUp         bool
	NewLevel          int
	Player            *entities.Player
	Progress          *entities.QuestProgress
}

// Config holds the dependencies for the quest orchestrator
type Config struct {
	PlayerRepo        playerrepo.Repository
	QuestProgressRepo questprogress.Repository
	ContentRepo       contentrepo.Repository
	Clock             clock.Clock
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
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo        playerrepo.Repository
	questProgressRepo questprogress.Repository
	contentRepo       contentrepo.Repository
	clock             clock.Clock
}

// NewOrchestrator creates a new quest orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo:        cfg.PlayerRepo,
		questProgressRepo: cfg.QuestProgressRepo,
		contentRepo:       cfg.ContentRepo,
		clock:             cfg.Clock,
	}, nil
}

// completedSet builds the set of quest IDs the player has completed,
// indexed alongside the raw records
func (o *orchestrator) completedSet(ctx context.Context, playerID string) (map[string]bool, map[string]*entities.QuestProgress, error) {
	out, err := o.questProgressRepo.ListByPlayer(ctx, questprogress.ListByPlayerInput{PlayerID: playerID})
	if err != nil {
		return nil, nil, err
	}

	completed := make(map[string]bool)
	byQuest := make(map[string]*entities.QuestProgress, len(out.Records))
	for _, rec := range out.Records {
		byQuest[rec.QuestID] = rec
		if rec.IsCompleted() {
			completed[rec.QuestID] = true
		}
	}
	return completed, byQuest, nil
}

func (o *orchestrator) GetQuestMap(ctx context.Context, input *GetQuestMapInput) (*GetQuestMapOutput, error) {
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

	quests, err := o.contentRepo.ListQuests(ctx)
	if err != nil {
		return nil, err
	}

	completed, byQuest, err := o.completedSet(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	nodes := make([]*QuestNode, 0, len(quests))
	var edges []PrerequisiteEdge
	for _, q := range quests {
		nodes = append(nodes, &QuestNode{
			Quest:    q,
			Status:   engine.QuestStatus(q, playerOut.Player.Level, completed),
			Progress: byQuest[q.ID],
		})
		for _, pre := range q.PrerequisiteQuests {
			edges = append(edges, PrerequisiteEdge{FromQuestID: pre, ToQuestID: q.ID})
		}
	}

	return &GetQuestMapOutput{Nodes: nodes, Edges: edges}, nil
}

func (o *orchestrator) GetQuest(ctx context.Context, input *GetQuestInput) (*GetQuestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	q, err := o.contentRepo.GetQuest(ctx, input.QuestID)
	if err != nil {
		return nil, err
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	completed, byQuest, err := o.completedSet(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetQuestOutput{Node: &QuestNode{
		Quest:    q,
		Status:   engine.QuestStatus(q, playerOut.Player.Level, completed),
		Progress: byQuest[q.ID],
	}}, nil
}

func (o *orchestrator) CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}
	if input.ActionCount < 0 {
		return nil, errors.InvalidArgument("action count cannot be negative")
	}

	q, err := o.contentRepo.GetQuest(ctx, input.QuestID)
	if err != nil {
		return nil, err
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	stars := engine.StarRating(q.StarThresholds, input.ActionCount)

	progress := &entities.QuestProgress{
		PlayerID: input.PlayerID,
		QuestID:  input.QuestID,
	}
	progressOut, err := o.questProgressRepo.Get(ctx, questprogress.GetInput{
		PlayerID: input.PlayerID,
		QuestID:  input.QuestID,
	})
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if err == nil {
		progress = progressOut.Progress
	}

	isFirstCompletion := !progress.IsCompleted()

	progress.Attempts++
	if progress.CompletedAt == nil {
		now := o.clock.Now()
		progress.CompletedAt = &now
	}
	// Stars only rise, best action count only falls
	if stars > progress.StarsEarned {
		progress.StarsEarned = stars
	}
	if progress.BestActionCount == nil || input.ActionCount < *progress.BestActionCount {
		actionCount := input.ActionCount
		progress.BestActionCount = &actionCount
	}

	result := &CompleteQuestOutput{
		StarsEarned:       stars,
		IsFirstCompletion: isFirstCompletion,
		Progress:          progress,
	}

	if isFirstCompletion {
		p.Coins += q.CoinReward
		levelUp := engine.GrantXP(p, q.XPReward)

		result.XPGained = levelUp.XPGained
		result.CoinsGained = q.CoinReward
		result.LeveledUp = levelUp.LeveledUp
		result.NewLevel = levelUp.NewLevel
	}

	// Progress first: once completedAt is persisted a replay can no
	// longer double-credit first-completion rewards
	if _, err := o.questProgressRepo.Save(ctx, questprogress.SaveInput{Progress: progress}); err != nil {
		return nil, err
	}
	if isFirstCompletion {
		if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
			return nil, err
		}
	}

	result.Player = p

	slog.InfoContext(ctx, "quest completed",
		"player_id", input.PlayerID,
		"quest_id", input.QuestID,
		"stars", stars,
		"first_completion", isFirstCompletion,
		"leveled_up", result.LeveledUp)

	return result, nil
}
