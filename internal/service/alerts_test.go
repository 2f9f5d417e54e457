package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/event"
	"github.com/verifield/credplane/internal/mocks"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/notify"
	"github.com/verifield/credplane/internal/service"
)

type notifierFunc func(ctx context.Context, notice notify.ExpirationNotice) error

func (f notifierFunc) SendExpirationNotice(ctx context.Context, notice notify.ExpirationNotice) error {
	return f(ctx, notice)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// licenseExpiringIn builds an active, verifiable license whose expiration
// sits the given number of whole days past asOf.
func licenseExpiringIn(asOf time.Time, days int) *model.License {
	return &model.License{
		ID:             uuid.New(),
		ProviderID:     uuid.New(),
		LicenseNumber:  "MD123456",
		LicenseType:    "MD",
		ExpirationDate: asOf.AddDate(0, 0, days),
		Status:         model.LicenseActive,
		Provider: model.Provider{
			User: model.User{FullName: "Dana Reyes", Email: "dana@example.com"},
		},
	}
}

func TestDaysUntilExpiration(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 90, service.DaysUntilExpiration(asOf.AddDate(0, 0, 90), asOf))
	assert.Equal(t, 90, service.DaysUntilExpiration(asOf.AddDate(0, 0, 90).Add(time.Hour), asOf))
	assert.Equal(t, 89, service.DaysUntilExpiration(asOf.AddDate(0, 0, 90).Add(-time.Hour), asOf))
	assert.Equal(t, 0, service.DaysUntilExpiration(asOf, asOf))
	assert.Equal(t, 0, service.DaysUntilExpiration(asOf.Add(time.Hour), asOf))
	assert.Equal(t, -1, service.DaysUntilExpiration(asOf.Add(-time.Hour), asOf))
	assert.Equal(t, -3, service.DaysUntilExpiration(asOf.AddDate(0, 0, -3), asOf))
}

func TestComputeAlerts(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("window is strictly future and capped at ninety days", func(t *testing.T) {
		licenses := []*model.License{
			licenseExpiringIn(asOf, 91),
			licenseExpiringIn(asOf, 90),
			licenseExpiringIn(asOf, 1),
			licenseExpiringIn(asOf, 0),
			licenseExpiringIn(asOf, -1),
		}

		alerts := service.ComputeAlerts(licenses, asOf)

		assert.Len(t, alerts, 2)
		assert.Equal(t, 1, alerts[0].DaysUntilExpiration)
		assert.Equal(t, 90, alerts[1].DaysUntilExpiration)
	})

	t.Run("severity boundaries", func(t *testing.T) {
		cases := []struct {
			days int
			want service.AlertSeverity
		}{
			{1, service.SeverityCritical},
			{30, service.SeverityCritical},
			{31, service.SeverityWarning},
			{60, service.SeverityWarning},
			{61, service.SeverityInfo},
			{90, service.SeverityInfo},
		}
		for _, tc := range cases {
			alerts := service.ComputeAlerts([]*model.License{licenseExpiringIn(asOf, tc.days)}, asOf)
			assert.Len(t, alerts, 1)
			assert.Equal(t, tc.want, alerts[0].Severity, "days=%d", tc.days)
		}
	})

	t.Run("sorted by days ascending", func(t *testing.T) {
		licenses := []*model.License{
			licenseExpiringIn(asOf, 75),
			licenseExpiringIn(asOf, 5),
			licenseExpiringIn(asOf, 40),
		}

		alerts := service.ComputeAlerts(licenses, asOf)

		assert.Equal(t, []int{5, 40, 75}, []int{
			alerts[0].DaysUntilExpiration,
			alerts[1].DaysUntilExpiration,
			alerts[2].DaysUntilExpiration,
		})
	})

	t.Run("carries provider contact details", func(t *testing.T) {
		alerts := service.ComputeAlerts([]*model.License{licenseExpiringIn(asOf, 10)}, asOf)

		assert.Equal(t, "Dana Reyes", alerts[0].ProviderName)
		assert.Equal(t, "dana@example.com", alerts[0].ProviderEmail)
		assert.Equal(t, "MD123456", alerts[0].LicenseNumber)
	})
}

func TestBoundaryNotices(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	licenses := []*model.License{
		licenseExpiringIn(asOf, 90),
		licenseExpiringIn(asOf, 89),
		licenseExpiringIn(asOf, 60),
		licenseExpiringIn(asOf, 31),
		licenseExpiringIn(asOf, 30),
		licenseExpiringIn(asOf, 29),
	}

	notices := service.BoundaryNotices(licenses, asOf)

	assert.Len(t, notices, 3)
	days := []int{notices[0].DaysUntilExpiration, notices[1].DaysUntilExpiration, notices[2].DaysUntilExpiration}
	assert.ElementsMatch(t, []int{90, 60, 30}, days)
	for _, n := range notices {
		assert.Equal(t, "dana@example.com", n.ProviderEmail)
	}
}

func TestExpiringLicenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("admin only", func(t *testing.T) {
		svc := service.NewAlertService(nil, nil, event.NoOpEmitter{}, discardLogger())
		_, err := svc.ExpiringLicenses(context.Background(), model.Actor{UserID: uuid.New(), Role: model.RoleProvider}, asOf)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("computes across all licenses", func(t *testing.T) {
		licenseRepo := mocks.NewMockLicenseRepositoryIface(ctrl)
		licenseRepo.EXPECT().FindAll(gomock.Any()).Return([]*model.License{
			licenseExpiringIn(asOf, 45),
			licenseExpiringIn(asOf, 120),
		}, nil)

		svc := service.NewAlertService(licenseRepo, nil, event.NoOpEmitter{}, discardLogger())
		alerts, err := svc.ExpiringLicenses(context.Background(), model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}, asOf)

		assert.NoError(t, err)
		assert.Len(t, alerts, 1)
		assert.Equal(t, 45, alerts[0].DaysUntilExpiration)
	})
}

func TestRunSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	noNotices := notifierFunc(func(ctx context.Context, notice notify.ExpirationNotice) error {
		t.Fatalf("unexpected notice for license %s", notice.LicenseID)
		return nil
	})

	t.Run("expires active licenses past their date", func(t *testing.T) {
		overdue := licenseExpiringIn(asOf, -2)
		healthy := licenseExpiringIn(asOf, 45)

		licenseRepo := mocks.NewMockLicenseRepositoryIface(ctrl)
		licenseRepo.EXPECT().FindAll(gomock.Any()).Return([]*model.License{overdue, healthy}, nil)
		licenseRepo.EXPECT().MarkExpired(gomock.Any(), overdue.ID).Return(true, nil)

		svc := service.NewAlertService(licenseRepo, noNotices, event.NoOpEmitter{}, discardLogger())
		result, err := svc.RunSweep(context.Background(), asOf)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Checked)
		assert.Equal(t, 1, result.Expired)
		assert.Equal(t, 0, result.NotificationsSent)
	})

	t.Run("a re-run is harmless", func(t *testing.T) {
		overdue := licenseExpiringIn(asOf, -2)
		overdue.Status = model.LicenseExpired

		alsoOverdue := licenseExpiringIn(asOf, -1)

		licenseRepo := mocks.NewMockLicenseRepositoryIface(ctrl)
		licenseRepo.EXPECT().FindAll(gomock.Any()).Return([]*model.License{overdue, alsoOverdue}, nil)
		// Lost the compare-and-set: something else expired it first.
		licenseRepo.EXPECT().MarkExpired(gomock.Any(), alsoOverdue.ID).Return(false, nil)

		svc := service.NewAlertService(licenseRepo, noNotices, event.NoOpEmitter{}, discardLogger())
		result, err := svc.RunSweep(context.Background(), asOf)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Expired)
	})

	t.Run("sends boundary notifications", func(t *testing.T) {
		atBoundary := licenseExpiringIn(asOf, 30)
		offBoundary := licenseExpiringIn(asOf, 29)

		licenseRepo := mocks.NewMockLicenseRepositoryIface(ctrl)
		licenseRepo.EXPECT().FindAll(gomock.Any()).Return([]*model.License{atBoundary, offBoundary}, nil)

		var sent []notify.ExpirationNotice
		notifier := notifierFunc(func(ctx context.Context, notice notify.ExpirationNotice) error {
			sent = append(sent, notice)
			return nil
		})

		svc := service.NewAlertService(licenseRepo, notifier, event.NoOpEmitter{}, discardLogger())
		result, err := svc.RunSweep(context.Background(), asOf)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.NotificationsSent)
		assert.Len(t, sent, 1)
		assert.Equal(t, atBoundary.ID, sent[0].LicenseID)
		assert.Equal(t, 30, sent[0].DaysUntilExpiration)
	})

	t.Run("delivery failure does not stop the sweep", func(t *testing.T) {
		atBoundary := licenseExpiringIn(asOf, 60)
		overdue := licenseExpiringIn(asOf, -1)

		licenseRepo := mocks.NewMockLicenseRepositoryIface(ctrl)
		licenseRepo.EXPECT().FindAll(gomock.Any()).Return([]*model.License{atBoundary, overdue}, nil)
		licenseRepo.EXPECT().MarkExpired(gomock.Any(), overdue.ID).Return(true, nil)

		notifier := notifierFunc(func(ctx context.Context, notice notify.ExpirationNotice) error {
			return errors.New("smtp: connection refused")
		})

		svc := service.NewAlertService(licenseRepo, notifier, event.NoOpEmitter{}, discardLogger())
		result, err := svc.RunSweep(context.Background(), asOf)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Expired)
		assert.Equal(t, 0, result.NotificationsSent)
		assert.Len(t, result.Notifications, 1)
	})
}
