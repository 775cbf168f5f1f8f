package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/quest"
)

// QuestNode is one quest annotated with the player's status
type QuestNode struct {
	Quest    *entities.Quest         `json:"quest"`
	Status   entities.QuestStatus    `json:"status"`
	Progress *entities.QuestProgress `json:"progress,omitempty"`
}

// QuestEdge is one prerequisite edge of the quest graph
type QuestEdge struct {
	FromQuestID string `json:"from_quest_id"`
	ToQuestID   string `json:"to_quest_id"`
}

// QuestMapResponse is the response for GET /players/{playerID}/quests
type QuestMapResponse struct {
	Nodes []QuestNode `json:"nodes"`
	Edges []QuestEdge `json:"edges"`
}

func (h *Handler) getQuestMap(w http.ResponseWriter, r *http.Request) {
	output, err := h.questService.GetQuestMap(r.Context(), &quest.GetQuestMapInput{
		PlayerID: chi.URLParam(r, "playerID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := QuestMapResponse{
		Nodes: make([]QuestNode, 0, len(output.Nodes)),
		Edges: make([]QuestEdge, 0, len(output.Edges)),
	}
	for _, n := range output.Nodes {
		resp.Nodes = append(resp.Nodes, QuestNode{
			Quest:    n.Quest,
			Status:   n.Status,
			Progress: n.Progress,
		})
	}
	for _, e := range output.Edges {
		resp.Edges = append(resp.Edges, QuestEdge{
			FromQuestID: e.FromQuestID,
			ToQuestID:   e.ToQuestID,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getQuest(w http.ResponseWriter, r *http.Request) {
	output, err := h.questService.GetQuest(r.Context(), &quest.GetQuestInput{
		PlayerID: chi.URLParam(r, "playerID"),
		QuestID:  chi.URLParam(r, "questID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QuestNode{
		Quest:    output.Node.Quest,
		Status:   output.Node.Status,
		Progress: output.Node.Progress,
	})
}

// CompleteQuestRequest is the body for POST .../quests/{questID}/complete
type CompleteQuestRequest struct {
	ActionCount    int `json:"action_count"`
	CoinsCollected int `json:"coins_collected,omitempty"`
}

// CompleteQuestResponse is the response for a completed attempt
type CompleteQuestResponse struct {
	StarsEarned       int                     `json:"stars_earned"`
	IsFirstCompletion bool                    `json:"is_first_completion"`
	XPGained          int                     `json:"xp_gained"`
	CoinsGained       int                     `json:"coins_gained"`
	LeveledUp         bool                    `json:"leveled_up"`
	NewLevel          int                     `json:"new_level,omitempty"`
	Player            *entities.Player        `json:"player"`
	Progress          *entities.QuestProgress `json:"progress"`
}

func (h *Handler) completeQuest(w http.ResponseWriter, r *http.Request) {
	var req CompleteQuestRequest
	if err := readJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.questService.CompleteQuest(r.Context(), &quest.CompleteQuestInput{
		PlayerID:       chi.URLParam(r, "playerID"),
		QuestID:        chi.URLParam(r, "questID"),
		ActionCount:    req.ActionCount,
		CoinsCollected: req.CoinsCollected,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CompleteQuestResponse{
		StarsEarned:       output.StarsEarned,
		IsFirstCompletion: output.IsFirstCompletion,
		XPGained:          output.XPGained,
		CoinsGained:       output.CoinsGained,
		LeveledUp:         output.LeveledUp,
		NewLevel:          output.NewLevel,
		Player:            output.Player,
		Progress:          output.Progress,
	})
}
