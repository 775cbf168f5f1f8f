package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/character"
)

// CharacterView is one character annotated with the player's state
type CharacterView struct {
	Character  *entities.Character `json:"character"`
	Unlocked   bool                `json:"unlocked"`
	LockReason string              `json:"lock_reason,omitempty"`
	Owned      bool                `json:"owned"`
	Selected   bool                `json:"selected"`
}

// ListCharactersResponse is the response for GET .../characters
type ListCharactersResponse struct {
	Characters []CharacterView `json:"characters"`
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	output, err := h.characterService.ListCharacters(r.Context(), &character.ListCharactersInput{
		PlayerID: chi.URLParam(r, "playerID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]CharacterView, 0, len(output.Characters))
	for _, v := range output.Characters {
		views = append(views, CharacterView{
			Character:  v.Character,
			Unlocked:   v.Unlocked,
			LockReason: v.LockReason,
			Owned:      v.Owned,
			Selected:   v.Selected,
		})
	}

	writeJSON(w, http.StatusOK, ListCharactersResponse{Characters: views})
}

// SelectCharacterResponse is the response for a character selection
type SelectCharacterResponse struct {
	Player *entities.Player `json:"player"`
}

func (h *Handler) selectCharacter(w http.ResponseWriter, r *http.Request) {
	output, err := h.characterService.SelectCharacter(r.Context(), &character.SelectCharacterInput{
		PlayerID:    chi.URLParam(r, "playerID"),
		CharacterID: chi.URLParam(r, "characterID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SelectCharacterResponse{Player: output.Player})
}

// PurchaseCharacterResponse is the response for a character purchase
type PurchaseCharacterResponse struct {
	Player     *entities.Player `json:"player"`
	CoinsSpent int              `json:"coins_spent"`
}

func (h *Handler) purchaseCharacter(w http.ResponseWriter, r *http.Request) {
	output, err := h.characterService.PurchaseCharacter(r.Context(), &character.PurchaseCharacterInput{
		PlayerID:    chi.URLParam(r, "playerID"),
		CharacterID: chi.URLParam(r, "characterID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PurchaseCharacterResponse{
		Player:     output.Player,
		CoinsSpent: output.CoinsSpent,
	})
}
