package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/combat"
)

// StartCombatRequest is the body for POST .../combat/start
type StartCombatRequest struct {
	SpawnID string `json:"spawn_id"`
}

// StartCombatResponse is the response for a freshly opened encounter
type StartCombatResponse struct {
	Session  *entities.CombatSession `json:"session"`
	PlayerHP int                     `json:"player_hp"`
	MaxHP    int                     `json:"max_hp"`
}

func (h *Handler) startCombat(w http.ResponseWriter, r *http.Request) {
	var req StartCombatRequest
	if err := readJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.combatService.StartCombat(r.Context(), &combat.StartCombatInput{
		PlayerID: chi.URLParam(r, "playerID"),
		SpawnID:  req.SpawnID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, StartCombatResponse{
		Session:  output.Session,
		PlayerHP: output.PlayerHP,
		MaxHP:    output.MaxHP,
	})
}

// GetCombatResponse is the response for GET .../combat
type GetCombatResponse struct {
	Session *entities.CombatSession `json:"session"`
}

func (h *Handler) getCombat(w http.ResponseWriter, r *http.Request) {
	output, err := h.combatService.GetCombat(r.Context(), &combat.GetCombatInput{
		PlayerID: chi.URLParam(r, "playerID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GetCombatResponse{Session: output.Session})
}

// ResolveActionRequest is the body for POST .../combat/action
type ResolveActionRequest struct {
	Action string `json:"action"`
	ItemID string `json:"item_id,omitempty"`
}

// ResolveActionResponse is the response for one resolved combat turn
type ResolveActionResponse struct {
	PlayerMessage string `json:"player_message"`
	EnemyMessage  string `json:"enemy_message,omitempty"`

	PlayerDamage *entities.DamageInfo `json:"player_damage,omitempty"`
	EnemyDamage  *entities.DamageInfo `json:"enemy_damage,omitempty"`

	PlayerHP int `json:"player_hp"`
	EnemyHP  int `json:"enemy_hp"`

	Ended   bool                   `json:"ended"`
	Outcome entities.CombatOutcome `json:"outcome,omitempty"`

	XPGained    int                  `json:"xp_gained,omitempty"`
	CoinsGained int                  `json:"coins_gained,omitempty"`
	Loot        []*entities.LootDrop `json:"loot,omitempty"`
	LeveledUp   bool                 `json:"leveled_up,omitempty"`
	NewLevel    int                  `json:"new_level,omitempty"`
}

func (h *Handler) resolveAction(w http.ResponseWriter, r *http.Request) {
	var req ResolveActionRequest
	if err := readJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.combatService.ResolveAction(r.Context(), &combat.ResolveActionInput{
		PlayerID: chi.URLParam(r, "playerID"),
		Action:   entities.CombatAction(req.Action),
		ItemID:   req.ItemID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResolveActionResponse{
		PlayerMessage: output.PlayerMessage,
		EnemyMessage:  output.EnemyMessage,
		PlayerDamage:  output.PlayerDamage,
		EnemyDamage:   output.EnemyDamage,
		PlayerHP:      output.PlayerHP,
		EnemyHP:       output.EnemyHP,
		Ended:         output.Ended,
		Outcome:       output.Outcome,
		XPGained:      output.XPGained,
		CoinsGained:   output.CoinsGained,
		Loot:          output.Loot,
		LeveledUp:     output.LeveledUp,
		NewLevel:      output.NewLevel,
	})
}
