// internal/handler/affiliation.go
package handler

import (
	"net/http"

	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/service"
)

type AffiliationHandler struct {
	affiliationService *service.AffiliationService
}

func NewAffiliationHandler(affiliationService *service.AffiliationService) *AffiliationHandler {
	return &AffiliationHandler{affiliationService: affiliationService}
}

type LinkResponse struct {
	BaseResponse
	Link *model.AffiliationLink `json:"link"`
}

// RequestJoin handles POST /api/companies/join.
func (h *AffiliationHandler) RequestJoin(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input service.JoinRequestInput
	if !decodeBody(w, r, &input) {
		return
	}

	link, err := h.affiliationService.RequestJoin(r.Context(), actor, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, LinkResponse{BaseResponse: BaseResponse{Ok: true}, Link: link})
}

// Approve handles POST /api/companies/requests/{linkID}/approve.
func (h *AffiliationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	linkID, ok := uuidParam(w, r, "linkID")
	if !ok {
		return
	}

	link, err := h.affiliationService.ApproveRequest(r.Context(), actor, linkID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LinkResponse{BaseResponse: BaseResponse{Ok: true}, Link: link})
}

// Reject handles POST /api/companies/requests/{linkID}/reject.
func (h *AffiliationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	linkID, ok := uuidParam(w, r, "linkID")
	if !ok {
		return
	}

	link, err := h.affiliationService.RejectRequest(r.Context(), actor, linkID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LinkResponse{BaseResponse: BaseResponse{Ok: true}, Link: link})
}

// Revert handles POST /api/companies/requests/{linkID}/revert.
func (h *AffiliationHandler) Revert(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	linkID, ok := uuidParam(w, r, "linkID")
	if !ok {
		return
	}

	link, err := h.affiliationService.RevertApproval(r.Context(), actor, linkID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LinkResponse{BaseResponse: BaseResponse{Ok: true}, Link: link})
}

// Remove handles DELETE /api/companies/requests/{linkID}.
func (h *AffiliationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	linkID, ok := uuidParam(w, r, "linkID")
	if !ok {
		return
	}

	if err := h.affiliationService.RemoveProvider(r.Context(), actor, linkID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// ListRequests handles GET /api/companies/{companyID}/requests?status=pending.
func (h *AffiliationHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	companyID, ok := uuidParam(w, r, "companyID")
	if !ok {
		return
	}

	status := model.LinkStatus(r.URL.Query().Get("status"))
	links, err := h.affiliationService.ListRequests(r.Context(), actor, companyID, status)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "links": links})
}
