package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/orchestrators/inventory"
)

// InventoryItem is one stack joined with its item definition
type InventoryItem struct {
	Item     *entities.Item `json:"item"`
	Quantity int            `json:"quantity"`
	Equipped bool           `json:"equipped"`
}

// GetInventoryResponse is the response for GET .../inventory
type GetInventoryResponse struct {
	Items    []InventoryItem               `json:"items"`
	Equipped map[entities.EquipSlot]string `json:"equipped,omitempty"`
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	output, err := h.inventoryService.GetInventory(r.Context(), &inventory.GetInventoryInput{
		PlayerID: chi.URLParam(r, "playerID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]InventoryItem, 0, len(output.Items))
	for _, it := range output.Items {
		items = append(items, InventoryItem{
			Item:     it.Item,
			Quantity: it.Quantity,
			Equipped: it.Equipped,
		})
	}

	writeJSON(w, http.StatusOK, GetInventoryResponse{
		Items:    items,
		Equipped: output.Equipped,
	})
}

// UseItemRequest is the body for POST .../inventory/use
type UseItemRequest struct {
	ItemID string `json:"item_id"`
}

// UseItemResponse is the response for using a consumable
type UseItemResponse struct {
	Player        *entities.Player `json:"player"`
	EffectType    string           `json:"effect_type"`
	EffectApplied int              `json:"effect_applied"`
	Remaining     int              `json:"remaining"`
}

func (h *Handler) useItem(w http.ResponseWriter, r *http.Request) {
	var req UseItemRequest
	if err := readJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.inventoryService.UseItem(r.Context(), &inventory.UseItemInput{
		PlayerID: chi.URLParam(r, "playerID"),
		ItemID:   req.ItemID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UseItemResponse{
		Player:        output.Player,
		EffectType:    output.EffectType,
		EffectApplied: output.EffectApplied,
		Remaining:     output.Remaining,
	})
}

// EquipItemRequest is the body for POST .../inventory/equip
type EquipItemRequest struct {
	ItemID string `json:"item_id"`
}

// EquipItemResponse is the response for equipping an item
type EquipItemResponse struct {
	Player   *entities.Player   `json:"player"`
	Slot     entities.EquipSlot `json:"slot"`
	Replaced string             `json:"replaced,omitempty"`
}

func (h *Handler) equipItem(w http.ResponseWriter, r *http.Request) {
	var req EquipItemRequest
	if err := readJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.inventoryService.EquipItem(r.Context(), &inventory.EquipItemInput{
		PlayerID: chi.URLParam(r, "playerID"),
		ItemID:   req.ItemID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, EquipItemResponse{
		Player:   output.Player,
		Slot:     output.Slot,
		Replaced: output.Replaced,
	})
}

// UnequipItemRequest is the body for POST .../inventory/unequip
type UnequipItemRequest struct {
	Slot string `json:"slot"`
}

// UnequipItemResponse is the response for clearing a slot
type UnequipItemResponse struct {
	Player     *entities.Player `json:"player"`
	Unequipped string           `json:"unequipped"`
}

func (h *Handler) unequipItem(w http.ResponseWriter, r *http.Request) {
	var req UnequipItemRequest
	if err := readJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.inventoryService.UnequipItem(r.Context(), &inventory.UnequipItemInput{
		PlayerID: chi.URLParam(r, "playerID"),
		Slot:     entities.EquipSlot(req.Slot),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UnequipItemResponse{
		Player:     output.Player,
		Unequipped: output.Unequipped,
	})
}

// DropItemRequest is the body for POST .../inventory/drop
type DropItemRequest struct {
	ItemID string `json:"item_id"`

	// Quantity to drop; 0 or below drops the whole stack
	Quantity int `json:"quantity,omitempty"`
}

// DropItemResponse is the response for dropping a stack
type DropItemResponse struct {
	Remaining int `json:"remaining"`
}

func (h *Handler) dropItem(w http.ResponseWriter, r *http.Request) {
	var req DropItemRequest
	if err := readJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	output, err := h.inventoryService.DropItem(r.Context(), &inventory.DropItemInput{
		PlayerID: chi.URLParam(r, "playerID"),
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DropItemResponse{Remaining: output.Remaining})
}
