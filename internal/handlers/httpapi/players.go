package httpapi

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/progression"
)

// CreatePlayerRequest is the body for POST /players. The body is
// optional; an empty one lets the server generate the player ID.
type CreatePlayerRequest struct {
	PlayerID string `json:"player_id,omitempty"`
}

// CreatePlayerResponse is the response for POST /players
type CreatePlayerResponse struct {
	Player *entities.Player `json:"player"`
}

func (h *Handler) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.progressionService.CreatePlayer(r.Context(), &progression.CreatePlayerInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatePlayerResponse{Player: output.Player})
}

// ProgressionResponse is the response for GET /players/{playerID}/progression
type ProgressionResponse struct {
	Player        *entities.Player `json:"player"`
	XPToNextLevel int              `json:"xp_to_next_level"`
}

func (h *Handler) getProgression(w http.ResponseWriter, r *http.Request) {
	output, err := h.progressionService.GetProgression(r.Context(), &progression.GetProgressionInput{
		PlayerID: chi.URLParam(r, "playerID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProgressionResponse{
		Player:        output.Player,
		XPToNextLevel: output.XPToNextLevel,
	})
}
