package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/chest"
)

// GetChestResponse is the response for GET .../chests/{chestID}
type GetChestResponse struct {
	Chest         *entities.Chest `json:"chest"`
	AlreadyOpened bool            `json:"already_opened"`
}

func (h *Handler) getChest(w http.ResponseWriter, r *http.Request) {
	output, err := h.chestService.GetChest(r.Context(), &chest.GetChestInput{
		PlayerID: chi.URLParam(r, "playerID"),
		ChestID:  chi.URLParam(r, "chestID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GetChestResponse{
		Chest:         output.Chest,
		AlreadyOpened: output.AlreadyOpened,
	})
}

// OpenChestResponse is the response for POST .../chests/{chestID}/open
type OpenChestResponse struct {
	CoinsGained int                  `json:"coins_gained"`
	Loot        []*entities.LootDrop `json:"loot,omitempty"`
	KeyConsumed string               `json:"key_consumed,omitempty"`
}

func (h *Handler) openChest(w http.ResponseWriter, r *http.Request) {
	output, err := h.chestService.OpenChest(r.Context(), &chest.OpenChestInput{
		PlayerID: chi.URLParam(r, "playerID"),
		ChestID:  chi.URLParam(r, "chestID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OpenChestResponse{
		CoinsGained: output.CoinsGained,
		Loot:        output.Loot,
		KeyConsumed: output.KeyConsumed,
	})
}
