// internal/handler/provider.go
package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/service"
)

type ProviderHandler struct {
	providerService *service.ProviderService
}

func NewProviderHandler(providerService *service.ProviderService) *ProviderHandler {
	return &ProviderHandler{providerService: providerService}
}

type ProviderResponse struct {
	BaseResponse
	Provider *model.Provider `json:"provider"`
}

// Onboard handles POST /api/providers/onboard.
func (h *ProviderHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input service.OnboardInput
	if !decodeBody(w, r, &input) {
		return
	}

	provider, err := h.providerService.Onboard(r.Context(), actor, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ProviderResponse{BaseResponse: BaseResponse{Ok: true}, Provider: provider})
}

// Me handles GET /api/providers/me.
func (h *ProviderHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	provider, err := h.providerService.GetOwnProfile(r.Context(), actor)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProviderResponse{BaseResponse: BaseResponse{Ok: true}, Provider: provider})
}

type providerReviewRequest struct {
	CompanyID uuid.UUID `json:"company_id"`
}

// Approve handles POST /api/providers/{providerID}/approve.
func (h *ProviderHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.providerService.Approve)
}

// Reject handles POST /api/providers/{providerID}/reject.
func (h *ProviderHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.providerService.Reject)
}

func (h *ProviderHandler) review(w http.ResponseWriter, r *http.Request, op func(context.Context, model.Actor, uuid.UUID, uuid.UUID) error) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	providerID, ok := uuidParam(w, r, "providerID")
	if !ok {
		return
	}

	var req providerReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := op(r.Context(), actor, providerID, req.CompanyID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
