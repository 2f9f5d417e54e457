// internal/handler/alerts.go
package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/service"
)

type AlertHandler struct {
	alertService *service.AlertService
	cronSecret   string
}

func NewAlertHandler(alertService *service.AlertService, cronSecret string) *AlertHandler {
	return &AlertHandler{alertService: alertService, cronSecret: cronSecret}
}

type AlertsResponse struct {
	BaseResponse
	Alerts []service.Alert `json:"alerts"`
}

// ExpiringLicenses handles GET /api/alerts/expiring-licenses.
func (h *AlertHandler) ExpiringLicenses(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	alerts, err := h.alertService.ExpiringLicenses(r.Context(), actor, time.Now().UTC())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AlertsResponse{BaseResponse: BaseResponse{Ok: true}, Alerts: alerts})
}

type SweepResponse struct {
	BaseResponse
	*service.SweepResult
}

// RunSweep handles GET /api/cron/check-expirations. The scheduler
// authenticates with the shared cron secret, not the interactive token path;
// the comparison is constant-time.
func (h *AlertHandler) RunSweep(w http.ResponseWriter, r *http.Request) {
	provided := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if h.cronSecret == "" ||
		subtle.ConstantTimeCompare([]byte(provided), []byte(h.cronSecret)) != 1 {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", domain.KindUnauthorized)
		return
	}

	result, err := h.alertService.RunSweep(r.Context(), time.Now().UTC())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SweepResponse{BaseResponse: BaseResponse{Ok: true}, SweepResult: result})
}
