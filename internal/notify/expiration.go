// internal/notify/expiration.go
package notify

import (
	"context"
	"fmt"
)

// expirationTemplateData feeds the license_expiring template pair.
type expirationTemplateData struct {
	ProviderName        string
	LicenseNumber       string
	LicenseType         string
	ExpirationDate      string
	DaysUntilExpiration int
}

// EmailNotifier delivers expiration notices through the email service.
type EmailNotifier struct {
	service  *Service
	fromName string
}

func NewEmailNotifier(service *Service, fromName string) *EmailNotifier {
	return &EmailNotifier{service: service, fromName: fromName}
}

func (n *EmailNotifier) SendExpirationNotice(ctx context.Context, notice ExpirationNotice) error {
	if notice.ProviderEmail == "" {
		return fmt.Errorf("notice for license %s has no provider email", notice.LicenseID)
	}

	data := EmailData{
		To:           notice.ProviderEmail,
		FromName:     n.fromName,
		Subject:      fmt.Sprintf("License %s expires in %d days", notice.LicenseNumber, notice.DaysUntilExpiration),
		TemplateName: "license_expiring",
		TemplateData: expirationTemplateData{
			ProviderName:        notice.ProviderName,
			LicenseNumber:       notice.LicenseNumber,
			LicenseType:         notice.LicenseType,
			ExpirationDate:      notice.ExpirationDate.Format("January 2, 2006"),
			DaysUntilExpiration: notice.DaysUntilExpiration,
		},
	}

	return n.service.SendEmail(data)
}
