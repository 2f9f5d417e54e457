// internal/handler/company.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/service"
)

type CompanyHandler struct {
	companyService *service.CompanyService
}

func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

type CompanyResponse struct {
	BaseResponse
	Company *model.Company `json:"company"`
}

// Create handles POST /api/companies.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input service.CreateCompanyInput
	if !decodeBody(w, r, &input) {
		return
	}

	company, err := h.companyService.CreateCompany(r.Context(), actor, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CompanyResponse{BaseResponse: BaseResponse{Ok: true}, Company: company})
}

type ActionLogResponse struct {
	BaseResponse
	Actions []*model.AdminActionLog `json:"actions"`
	Total   int64                   `json:"total"`
}

// Actions handles GET /api/companies/{companyID}/actions.
func (h *CompanyHandler) Actions(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	companyID, ok := uuidParam(w, r, "companyID")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	actions, total, err := h.companyService.ListActions(r.Context(), actor, companyID, limit, offset)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ActionLogResponse{BaseResponse: BaseResponse{Ok: true}, Actions: actions, Total: total})
}

// ListOwn handles GET /api/companies.
func (h *CompanyHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companies, err := h.companyService.ListOwnCompanies(r.Context(), actor)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "companies": companies})
}
