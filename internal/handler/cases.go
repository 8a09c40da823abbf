package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caseforge/caseforge/internal/catalog"
	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/logger"
	"github.com/caseforge/caseforge/internal/opening"
)

// CaseListResponse is the payload of the case list endpoint
type CaseListResponse struct {
	Cases []domain.Case `json:"cases"`
}

// CaseEntryView is one case entry with its display drop chance
type CaseEntryView struct {
	Item        domain.Item `json:"item"`
	DropPercent float64     `json:"drop_percent"`
}

// CaseDetailResponse is the payload of the case detail endpoint
type CaseDetailResponse struct {
	Case  domain.Case     `json:"case"`
	Items []CaseEntryView `json:"items"`
}

// OpenCaseRequest is the body of the open endpoint
type OpenCaseRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// HandleListCases returns all active cases
func HandleListCases(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cases, err := svc.ListCases(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgListCasesFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, CaseListResponse{Cases: cases})
	}
}

// HandleGetCase returns one case with its items and drop chances
func HandleGetCase(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		snap, err := svc.GetCase(r.Context(), slug)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgGetCaseFailed, "case", slug, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		var total domain.Weight
		for _, e := range snap.Entries {
			total += e.Weight
		}

		items := make([]CaseEntryView, 0, len(snap.Entries))
		for _, e := range snap.Entries {
			view := CaseEntryView{DropPercent: e.Weight.Percent(total)}
			if e.Item != nil {
				view.Item = *e.Item
			}
			items = append(items, view)
		}

		respondJSON(w, http.StatusOK, CaseDetailResponse{Case: snap.Case, Items: items})
	}
}

// HandleOpenCase runs the opening transaction for the case in the path
func HandleOpenCase(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		var req OpenCaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
			return
		}

		result, err := svc.OpenCase(r.Context(), req.UserID, slug)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgOpenCaseFailed,
				"case", slug, "user_id", req.UserID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
