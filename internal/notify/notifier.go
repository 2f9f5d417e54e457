// internal/notify/notifier.go
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ExpirationNotice is the payload for one license crossing a 90/60/30-day
// expiration boundary. Delivery is at-least-once: a sweep re-run on the same
// day re-sends.
type ExpirationNotice struct {
	LicenseID           uuid.UUID `json:"license_id"`
	LicenseNumber       string    `json:"license_number"`
	LicenseType         string    `json:"license_type"`
	ExpirationDate      time.Time `json:"expiration_date"`
	DaysUntilExpiration int       `json:"days_until_expiration"`
	ProviderEmail       string    `json:"provider_email"`
	ProviderName        string    `json:"provider_name"`
}

// Notifier delivers expiration notices. The sweep treats delivery failures
// as log-and-continue; a dead mail provider must not stop licenses from
// being expired.
type Notifier interface {
	SendExpirationNotice(ctx context.Context, notice ExpirationNotice) error
}

// LogNotifier writes notices to the structured log instead of delivering
// them. Used by the sweep CLI in dry-run mode and in tests.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) SendExpirationNotice(ctx context.Context, notice ExpirationNotice) error {
	n.Logger.InfoContext(ctx, "license expiration notice",
		"license_id", notice.LicenseID,
		"license_number", notice.LicenseNumber,
		"days_until_expiration", notice.DaysUntilExpiration,
		"provider_email", notice.ProviderEmail,
	)
	return nil
}
