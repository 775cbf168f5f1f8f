// Package combat implements the combat orchestrator: the turn-based
// encounter state machine. StartCombat scales an enemy for the spawn
// and persists the session; ResolveAction loads it, resolves one
// action plus the enemy's turn, and persists or deletes the session
// when the encounter reaches a terminal outcome.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/codequest-gg/codequest-api/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codequest-gg/codequest-api/internal/engine"
	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/pkg/idgen"
	"github.com/codequest-gg/codequest-api/internal/pkg/rng"
	combatsession "github.com/codequest-gg/codequest-api/internal/repositories/combat_session"
	contentrepo "github.com/codequest-gg/codequest-api/internal/repositories/content"
	inventoryrepo "github.com/codequest-gg/codequest-api/internal/repositories/inventory"
	playerrepo "github.com/codequest-gg/codequest-api/internal/repositories/player"
)

// DefaultSessionTTL bounds how long an abandoned encounter lingers
const DefaultSessionTTL = 30 * time.Minute

// Service defines the interface for combat operations
type Service interface {
	// StartCombat rolls and scales an enemy from a spawn point and
	// opens a persisted session for the encounter
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)

	// GetCombat returns the player's active encounter
	GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error)

	// ResolveAction resolves one combat turn: the player's action,
	// then the enemy's turn unless the encounter already ended
	ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error)
}

// StartCombatInput defines the request for starting combat
type StartCombatInput struct {
	PlayerID string
	SpawnID  string
}

// StartCombatOutput defines the response for starting combat
type StartCombatOutput struct {
	Session  *entities.CombatSession
	PlayerHP int
	MaxHP    int
}

// GetCombatInput defines the request for fetching the active encounter
type GetCombatInput struct {
	PlayerID string
}

// GetCombatOutput defines the response for fetching the active encounter
type GetCombatOutput struct {
	Session *entities.CombatSession
}

// ResolveActionInput defines the request for resolving one turn
type ResolveActionInput struct {
	PlayerID string
	Action   entities.CombatAction

	// ItemID names the consumable for the useItem action
	ItemID string
}

// ResolveActionOutput defines the response for one resolved turn
type ResolveActionOutput struct {
	PlayerMessage string
	EnemyMessage  string

	PlayerDamage *entities.DamageInfo
	EnemyDamage  *entities.DamageInfo

	PlayerHP int
	EnemyHP  int

	Ended   bool
	Outcome entities.CombatOutcome

	// Reward fields, populated only on victory
	XPGained    int
	CoinsGained int
	Loot        []*entities.LootDrop
	LeveledUp   bool
	NewLevel    int
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	PlayerRepo    playerrepo.Repository
	SessionRepo   combatsession.Repository
	InventoryRepo inventoryrepo.Repository
	ContentRepo   contentrepo.Repository
	IDGenerator   idgen.Generator
	Roller        rng.Roller
	SessionTTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo    playerrepo.Repository
	sessionRepo   combatsession.Repository
	inventoryRepo inventoryrepo.Repository
	contentRepo   contentrepo.Repository
	idGen         idgen.Generator
	roller        rng.Roller
	sessionTTL    time.Duration
}

// NewOrchestrator creates a new combat orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		playerRepo:    cfg.PlayerRepo,
		sessionRepo:   cfg.SessionRepo,
		inventoryRepo: cfg.InventoryRepo,
		contentRepo:   cfg.ContentRepo,
		idGen:         cfg.IDGenerator,
		roller:        cfg.Roller,
		sessionTTL:    ttl,
	}, nil
}

func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.SpawnID == "" {
		return nil, errors.InvalidArgument("spawn ID is required")
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	spawn, err := o.contentRepo.GetEnemySpawn(ctx, input.SpawnID)
	if err != nil {
		return nil, err
	}
	enemy, err := o.contentRepo.GetEnemy(ctx, spawn.EnemyID)
	if err != nil {
		return nil, err
	}

	level := engine.RollEnemyLevel(o.roller, spawn)
	session := &entities.CombatSession{
		ID:       o.idGen.Generate(),
		PlayerID: input.PlayerID,
		SpawnID:  spawn.ID,
		Enemy:    engine.ScaleEnemy(enemy, level),
		Turn:     1,
	}

	created, err := o.sessionRepo.Create(ctx, combatsession.CreateInput{
		Session: session,
		TTL:     o.sessionTTL,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "combat started",
		"player_id", input.PlayerID,
		"spawn_id", spawn.ID,
		"enemy_id", enemy.ID,
		"enemy_level", level)

	return &StartCombatOutput{
		Session:  created.Session,
		PlayerHP: p.HP,
		MaxHP:    p.MaxHP,
	}, nil
}

func (o *orchestrator) GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.sessionRepo.Get(ctx, combatsession.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	return &GetCombatOutput{Session: out.Session}, nil
}

func (o *orchestrator) ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	// Unknown actions are rejected before any state loads or mutations
	if !entities.ValidCombatAction(input.Action) {
		return nil, errors.InvalidArgumentf("unknown combat action %q", input.Action)
	}

	sessionOut, err := o.sessionRepo.Get(ctx, combatsession.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	session := sessionOut.Session

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := playerOut.Player

	result := &ResolveActionOutput{}
	defending := false

	switch input.Action {
	case entities.ActionAttack:
		crit := engine.RollCrit(o.roller, p.CritChance)
		dmg := engine.Damage(p.Attack, session.Enemy.Defense, crit)
		session.Enemy.HP -= dmg
		if session.Enemy.HP < 0 {
			session.Enemy.HP = 0
		}

		result.PlayerDamage = &entities.DamageInfo{Amount: dmg, IsCritical: crit}
		result.PlayerMessage = fmt.Sprintf("You hit the %s for %d damage", session.Enemy.Name, dmg)
		if crit {
			result.PlayerMessage = fmt.Sprintf("Critical hit! You strike the %s for %d damage", session.Enemy.Name, dmg)
		}

		if session.Enemy.HP <= 0 {
			return o.resolveVictory(ctx, session, p, result)
		}

	case entities.ActionDefend:
		defending = true
		result.PlayerMessage = "You brace for the incoming attack"

	case entities.ActionFlee:
		if engine.RollFlee(o.roller) {
			result.PlayerMessage = "You fled from combat"
			return o.finishCombat(ctx, session, p, result, entities.OutcomeFled)
		}
		result.PlayerMessage = "You failed to escape"

	case entities.ActionUseItem:
		if err := o.useItem(ctx, p, input.ItemID, result); err != nil {
			return nil, err
		}
	}

	// Enemy turn
	enemyCrit := engine.RollCrit(o.roller, session.Enemy.CritChance)
	enemyDmg := engine.Damage(session.Enemy.Attack, p.Defense, enemyCrit)

	enemyDamage := &entities.DamageInfo{Amount: enemyDmg, IsCritical: enemyCrit}
	if defending {
		blocked := enemyDmg - enemyDmg/2
		enemyDmg /= 2
		enemyDamage.Amount = enemyDmg
		enemyDamage.WasBlocked = true
		enemyDamage.BlockedAmount = blocked
	}

	p.HP -= enemyDmg
	if p.HP < 0 {
		p.HP = 0
	}
	result.EnemyDamage = enemyDamage
	result.EnemyMessage = fmt.Sprintf("The %s hits you for %d damage", session.Enemy.Name, enemyDmg)
	if enemyCrit {
		result.EnemyMessage = fmt.Sprintf("The %s lands a critical hit for %d damage", session.Enemy.Name, enemyDmg)
	}

	if p.HP <= 0 {
		return o.finishCombat(ctx, session, p, result, entities.OutcomeDefeat)
	}

	session.Turn++
	if _, err := o.sessionRepo.Save(ctx, combatsession.SaveInput{
		Session: session,
		TTL:     o.sessionTTL,
	}); err != nil {
		return nil, err
	}
	if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
		return nil, err
	}

	result.PlayerHP = p.HP
	result.EnemyHP = session.Enemy.HP
	return result, nil
}

// useItem validates and applies a consumable. Validation failures
// reject the whole action, so no enemy turn fires.
func (o *orchestrator) useItem(ctx context.Context, p *entities.Player, itemID string, result *ResolveActionOutput) error {
	if itemID == "" {
		return errors.InvalidArgument("item ID is required for useItem")
	}

	item, err := o.contentRepo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.ItemType != entities.ItemTypeConsumable {
		return errors.FailedPreconditionf("item %s is not consumable", item.ID)
	}

	entryOut, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{
		PlayerID: p.ID,
		ItemID:   itemID,
	})
	if err != nil {
		return err
	}
	entry := entryOut.Entry
	if entry.Quantity < 1 {
		return errors.FailedPreconditionf("no %s left to use", item.Name)
	}

	switch item.EffectType {
	case entities.EffectHeal:
		healed := item.EffectValue
		if p.HP+healed > p.MaxHP {
			healed = p.MaxHP - p.HP
		}
		p.HP += healed
		result.PlayerMessage = fmt.Sprintf("You use %s and restore %d HP", item.Name, healed)
	case entities.EffectMana:
		restored := item.EffectValue
		if p.MP+restored > p.MaxMP {
			restored = p.MaxMP - p.MP
		}
		p.MP += restored
		result.PlayerMessage = fmt.Sprintf("You use %s and restore %d MP", item.Name, restored)
	default:
		return errors.FailedPreconditionf("item %s has no usable effect", item.ID)
	}

	entry.Quantity--
	if _, err := o.inventoryRepo.Save(ctx, inventoryrepo.SaveInput{Entry: entry}); err != nil {
		return err
	}
	return nil
}

// resolveVictory grants scaled rewards, rolls the enemy loot table
// into the inventory, runs the level-up loop, and closes the session
func (o *orchestrator) resolveVictory(ctx context.Context, session *entities.CombatSession, p *entities.Player, result *ResolveActionOutput) (*ResolveActionOutput, error) {
	enemy, err := o.contentRepo.GetEnemy(ctx, session.Enemy.EnemyID)
	if err != nil {
		return nil, err
	}

	p.Coins += session.Enemy.CoinReward
	levelUp := engine.GrantXP(p, session.Enemy.XPReward)

	result.XPGained = levelUp.XPGained
	result.CoinsGained = session.Enemy.CoinReward
	result.LeveledUp = levelUp.LeveledUp
	result.NewLevel = levelUp.NewLevel
	result.EnemyMessage = fmt.Sprintf("The %s is defeated!", session.Enemy.Name)

	for _, hit := range engine.RollLoot(o.roller, enemy.LootTable) {
		drop, err := o.grantLoot(ctx, p.ID, hit)
		if err != nil {
			return nil, err
		}
		result.Loot = append(result.Loot, drop)
	}

	slog.InfoContext(ctx, "combat victory",
		"player_id", p.ID,
		"enemy_id", session.Enemy.EnemyID,
		"xp_gained", result.XPGained,
		"coins_gained", result.CoinsGained,
		"loot_drops", len(result.Loot),
		"leveled_up", result.LeveledUp)

	return o.finishCombat(ctx, session, p, result, entities.OutcomeVictory)
}

// grantLoot merges one loot hit into the player's inventory
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

// finishCombat persists the player and deletes the session for any
// terminal outcome
func (o *orchestrator) finishCombat(ctx context.Context, session *entities.CombatSession, p *entities.Player, result *ResolveActionOutput, outcome entities.CombatOutcome) (*ResolveActionOutput, error) {
	result.Ended = true
	result.Outcome = outcome
	result.PlayerHP = p.HP
	result.EnemyHP = session.Enemy.HP

	if _, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: p}); err != nil {
		return nil, err
	}
	if _, err := o.sessionRepo.Delete(ctx, combatsession.DeleteInput{PlayerID: p.ID}); err != nil {
		return nil, err
	}
	return result, nil
}
