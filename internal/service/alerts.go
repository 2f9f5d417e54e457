// internal/service/alerts.go
package service

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/event"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/notify"
	"github.com/verifield/credplane/internal/repository"
)

type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

// Alert horizon and severity boundaries, in whole days until expiration.
const (
	alertHorizonDays = 90
	warningFloorDays = 30
	infoFloorDays    = 60
)

// Alert is one dashboard row for a license approaching expiration.
type Alert struct {
	LicenseID           uuid.UUID     `json:"license_id"`
	LicenseNumber       string        `json:"license_number"`
	LicenseType         string        `json:"license_type"`
	ExpirationDate      time.Time     `json:"expiration_date"`
	DaysUntilExpiration int           `json:"days_until_expiration"`
	ProviderName        string        `json:"provider_name"`
	ProviderEmail       string        `json:"provider_email"`
	Severity            AlertSeverity `json:"severity"`
}

// DaysUntilExpiration is whole-day truncation toward negative infinity, so a
// license 90 days and one second out still counts as 90 days, and one that
// expired an hour ago counts as -1.
func DaysUntilExpiration(expiration, asOf time.Time) int {
	return int(math.Floor(expiration.Sub(asOf).Hours() / 24))
}

// ComputeAlerts derives the dashboard alert set from the given licenses:
// strictly-future expirations within the 90-day horizon, classified critical
// within 30 days, warning within 60, info within 90, soonest first.
// Already-expired licenses are excluded; the sweep's status transition covers
// them.
func ComputeAlerts(licenses []*model.License, asOf time.Time) []Alert {
	var alerts []Alert
	for _, license := range licenses {
		days := DaysUntilExpiration(license.ExpirationDate, asOf)
		if days <= 0 || days > alertHorizonDays {
			continue
		}
		alerts = append(alerts, Alert{
			LicenseID:           license.ID,
			LicenseNumber:       license.LicenseNumber,
			LicenseType:         license.LicenseType,
			ExpirationDate:      license.ExpirationDate,
			DaysUntilExpiration: days,
			ProviderName:        license.Provider.User.FullName,
			ProviderEmail:       license.Provider.User.Email,
			Severity:            classifySeverity(days),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysUntilExpiration < alerts[j].DaysUntilExpiration
	})
	return alerts
}

func classifySeverity(days int) AlertSeverity {
	switch {
	case days <= warningFloorDays:
		return SeverityCritical
	case days <= infoFloorDays:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// BoundaryNotices picks the licenses sitting exactly on a 90-, 60-, or
// 30-day boundary. This is the one-shot notification trigger, a different
// rule from the dashboard's continuous window, and the two are kept separate
// on purpose.
func BoundaryNotices(licenses []*model.License, asOf time.Time) []notify.ExpirationNotice {
	var notices []notify.ExpirationNotice
	for _, license := range licenses {
		days := DaysUntilExpiration(license.ExpirationDate, asOf)
		if days != 90 && days != 60 && days != 30 {
			continue
		}
		notices = append(notices, notify.ExpirationNotice{
			LicenseID:           license.ID,
			LicenseNumber:       license.LicenseNumber,
			LicenseType:         license.LicenseType,
			ExpirationDate:      license.ExpirationDate,
			DaysUntilExpiration: days,
			ProviderEmail:       license.Provider.User.Email,
			ProviderName:        license.Provider.User.FullName,
		})
	}
	return notices
}

// AlertService serves the expiration dashboard and runs the scheduled sweep.
type AlertService struct {
	licenseRepo repository.LicenseRepositoryIface
	notifier    notify.Notifier
	emitter     event.Emitter
	logger      *slog.Logger
}

func NewAlertService(licenseRepo repository.LicenseRepositoryIface, notifier notify.Notifier, emitter event.Emitter, logger *slog.Logger) *AlertService {
	return &AlertService{
		licenseRepo: licenseRepo,
		notifier:    notifier,
		emitter:     emitter,
		logger:      logger,
	}
}

// ExpiringLicenses computes the dashboard alert set across all licenses.
// Admin-only.
func (s *AlertService) ExpiringLicenses(ctx context.Context, actor model.Actor, asOf time.Time) ([]Alert, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	licenses, err := s.licenseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeAlerts(licenses, asOf), nil
}

// SweepResult summarizes one sweep run.
type SweepResult struct {
	Checked           int                       `json:"checked"`
	Expired           int                       `json:"expired"`
	NotificationsSent int                       `json:"notifications_sent"`
	Notifications     []notify.ExpirationNotice `json:"notifications"`
}

// RunSweep scans every license: active ones past their expiration date are
// transitioned to expired, and licenses exactly on a 90/60/30-day boundary
// produce a notification. The expire transition is a compare-and-set, so
// re-running the sweep is harmless; notices are at-least-once by design.
// Callers authenticate out of band (cron shared secret or the CLI), not via
// the interactive actor.
func (s *AlertService) RunSweep(ctx context.Context, asOf time.Time) (*SweepResult, error) {
	licenses, err := s.licenseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Checked: len(licenses)}

	for _, license := range licenses {
		days := DaysUntilExpiration(license.ExpirationDate, asOf)
		if days >= 0 || license.Status != model.LicenseActive {
			continue
		}
		expired, err := s.licenseRepo.MarkExpired(ctx, license.ID)
		if err != nil {
			return nil, err
		}
		if expired {
			result.Expired++
			s.emitter.Emit(ctx, event.Event{Type: event.LicenseExpired, EntityID: license.ID, At: asOf})
		}
	}

	for _, notice := range BoundaryNotices(licenses, asOf) {
		result.Notifications = append(result.Notifications, notice)
		if err := s.notifier.SendExpirationNotice(ctx, notice); err != nil {
			s.logger.ErrorContext(ctx, "expiration notice delivery failed",
				"license_id", notice.LicenseID, "error", err)
			continue
		}
		result.NotificationsSent++
	}

	return result, nil
}
