// internal/handler/document.go
package handler

import (
	"net/http"

	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/service"
)

type DocumentHandler struct {
	documentService *service.DocumentService
}

func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

type DocumentResponse struct {
	BaseResponse
	Document *model.Document `json:"document"`
}

// Upload handles POST /api/documents.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input service.UploadDocumentInput
	if !decodeBody(w, r, &input) {
		return
	}

	document, err := h.documentService.Upload(r.Context(), actor, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, DocumentResponse{BaseResponse: BaseResponse{Ok: true}, Document: document})
}

// ListOwn handles GET /api/documents.
func (h *DocumentHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	documents, err := h.documentService.ListOwn(r.Context(), actor)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "documents": documents})
}

// Approve handles POST /api/documents/{documentID}/approve.
func (h *DocumentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, "documentID")
	if !ok {
		return
	}

	if err := h.documentService.Approve(r.Context(), actor, documentID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type rejectDocumentRequest struct {
	Notes string `json:"notes"`
}

// Reject handles POST /api/documents/{documentID}/reject.
func (h *DocumentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, "documentID")
	if !ok {
		return
	}

	var req rejectDocumentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.documentService.Reject(r.Context(), actor, documentID, req.Notes); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Revert handles POST /api/documents/{documentID}/revert.
func (h *DocumentHandler) Revert(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, "documentID")
	if !ok {
		return
	}

	if err := h.documentService.Revert(r.Context(), actor, documentID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
