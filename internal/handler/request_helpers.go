package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/caseforge/caseforge/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it through
// struct tags, and writes the error response itself on failure. If it returns
// a non-nil error the handler should return without writing anything further.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetUserIDParam extracts the user_id query parameter as a positive int64.
// On failure the response has already been written and ok is false.
func GetUserIDParam(r *http.Request, w http.ResponseWriter) (int64, bool) {
	log := logger.FromContext(r.Context())

	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		log.Warn("Missing user_id query parameter")
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "user_id"))
		return 0, false
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		log.Warn("Invalid user_id query parameter", "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserIDParam)
		return 0, false
	}
	return userID, true
}
