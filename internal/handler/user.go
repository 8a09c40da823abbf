package handler

import (
	"net/http"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/logger"
	"github.com/caseforge/caseforge/internal/user"
)

// InventoryResponse is the payload of the inventory endpoint
type InventoryResponse struct {
	Inventory []domain.InventoryEntry `json:"inventory"`
}

// HistoryResponse is the payload of the history endpoint
type HistoryResponse struct {
	History []domain.OpeningRecord `json:"history"`
}

// HandleGetProfile returns the user summary
func HandleGetProfile(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgGetProfileFailed, "user_id", userID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleGetInventory returns the user's inventory, newest first
func HandleGetInventory(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		entries, err := svc.GetInventory(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgGetInventoryFailed, "user_id", userID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, InventoryResponse{Inventory: entries})
	}
}

// HandleGetHistory returns the user's most recent openings
func HandleGetHistory(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		records, err := svc.GetHistory(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgGetHistoryFailed, "user_id", userID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, HistoryResponse{History: records})
	}
}
