// internal/handler/common.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/middleware"
	"github.com/verifield/credplane/internal/model"
)

type BaseResponse struct {
	Ok bool `json:"ok"`
}

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
	Code  string `json:"error_code,omitempty"`
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithError sends an error response with a message and kind
func respondWithError(w http.ResponseWriter, code int, message string, kind domain.Kind) {
	respondWithJSON(w, code, ErrorResponse{Error: message, Code: string(kind)})
}

// respondWithDomainError classifies err through the error taxonomy and sends
// the matching status. Storage failures get a generic message; everything
// else in the taxonomy is safe to show verbatim.
func respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	message := err.Error()
	if kind == domain.KindStorageError {
		slog.ErrorContext(r.Context(), "request failed", "error", err, "requestID", chimw.GetReqID(r.Context()))
		message = "An unexpected error occurred"
	}
	respondWithError(w, kind.HTTPStatus(), message, kind)
}

// requireActor pulls the authenticated actor out of the request context.
func requireActor(w http.ResponseWriter, r *http.Request) (model.Actor, bool) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No valid actor identity", domain.KindUnauthorized)
		return model.Actor{}, false
	}
	return actor, true
}

// uuidParam parses a uuid path parameter.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name, domain.KindInvalidFormat)
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody parses the JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload", domain.KindInvalidFormat)
		return false
	}
	return true
}
