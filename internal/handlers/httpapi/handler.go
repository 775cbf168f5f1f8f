// Package httpapi exposes the game operations as a chi-routed JSON
// API. Handlers stay thin: decode the request, call the orchestrator,
// translate the result. Error responses carry the orchestrator's code,
// message, and metadata so clients can render actionable failures
// (coin costs, level gates) without parsing message text.
package httpapi

import (
	"github.com/go-chi/chi/v5"

	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/character"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/chest"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/combat"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/inventory"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/progression"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/quest"
)

// Config holds the dependencies for the API handler
type Config struct {
	ProgressionService progression.Service
	QuestService       quest.Service
	CharacterService   character.Service
	CombatService      combat.Service
	ChestService       chest.Service
	InventoryService   inventory.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProgressionService == nil {
		vb.RequiredField("ProgressionService")
	}
	if c.QuestService == nil {
		vb.RequiredField("QuestService")
	}
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.CombatService == nil {
		vb.RequiredField("CombatService")
	}
	if c.ChestService == nil {
		vb.RequiredField("ChestService")
	}
	if c.InventoryService == nil {
		vb.RequiredField("InventoryService")
	}

	return vb.Build()
}

// Handler serves the game API
type Handler struct {
	progressionService progression.Service
	questService       quest.Service
	characterService   character.Service
	combatService      combat.Service
	chestService       chest.Service
	inventoryService   inventory.Service
}

// NewHandler creates a new API handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		progressionService: cfg.ProgressionService,
		questService:       cfg.QuestService,
		characterService:   cfg.CharacterService,
		combatService:      cfg.CombatService,
		chestService:       cfg.ChestService,
		inventoryService:   cfg.InventoryService,
	}, nil
}

// Routes builds the API route tree. All player-scoped routes hang off
// /players/{playerID}.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/players", h.createPlayer)

	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/progression", h.getProgression)

		r.Get("/quests", h.getQuestMap)
		r.Get("/quests/{questID}", h.getQuest)
		r.Post("/quests/{questID}/complete", h.completeQuest)

		r.Get("/characters", h.listCharacters)
		r.Post("/characters/{characterID}/select", h.selectCharacter)
		r.Post("/characters/{characterID}/purchase", h.purchaseCharacter)

		r.Post("/combat/start", h.startCombat)
		r.Get("/combat", h.getCombat)
		r.Post("/combat/action", h.resolveAction)

		r.Get("/chests/{chestID}", h.getChest)
		r.Post("/chests/{chestID}/open", h.openChest)

		r.Get("/inventory", h.getInventory)
		r.Post("/inventory/use", h.useItem)
		r.Post("/inventory/equip", h.equipItem)
		r.Post("/inventory/unequip", h.unequipItem)
		r.Post("/inventory/drop", h.dropItem)
	})

	return r
}
