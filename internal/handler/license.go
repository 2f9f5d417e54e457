// internal/handler/license.go
package handler

import (
	"net/http"

	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/service"
)

type LicenseHandler struct {
	licenseService *service.LicenseService
}

func NewLicenseHandler(licenseService *service.LicenseService) *LicenseHandler {
	return &LicenseHandler{licenseService: licenseService}
}

type LicenseResponse struct {
	BaseResponse
	License *model.License `json:"license"`
}

// Add handles POST /api/licenses.
func (h *LicenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input service.AddLicenseInput
	if !decodeBody(w, r, &input) {
		return
	}

	license, err := h.licenseService.AddLicense(r.Context(), actor, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, LicenseResponse{BaseResponse: BaseResponse{Ok: true}, License: license})
}

// ListOwn handles GET /api/licenses.
func (h *LicenseHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	licenses, err := h.licenseService.ListOwn(r.Context(), actor)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "licenses": licenses})
}

type VerifyResponse struct {
	BaseResponse
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

// Verify handles POST /api/licenses/{licenseID}/verify.
func (h *LicenseHandler) Verify(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	licenseID, ok := uuidParam(w, r, "licenseID")
	if !ok {
		return
	}

	result, err := h.licenseService.Verify(r.Context(), actor, licenseID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, VerifyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Verified:     result.Verified,
		Message:      result.Message,
	})
}

// Revert handles POST /api/licenses/{licenseID}/revert.
func (h *LicenseHandler) Revert(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	licenseID, ok := uuidParam(w, r, "licenseID")
	if !ok {
		return
	}

	if err := h.licenseService.Revert(r.Context(), actor, licenseID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
