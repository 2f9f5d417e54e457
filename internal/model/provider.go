// internal/model/provider.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProviderStatus string

const (
	ProviderPending   ProviderStatus = "pending"
	ProviderActive    ProviderStatus = "active"
	ProviderInactive  ProviderStatus = "inactive"
	ProviderSuspended ProviderStatus = "suspended"
)

// Provider is a clinical provider profile. One per user account; created
// during onboarding in pending status and promoted only by admin action or
// as a side effect of an affiliation approval.
type Provider struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	NPI       string         `gorm:"type:text;not null" json:"npi"`
	Specialty string         `gorm:"type:text;not null" json:"specialty"`
	Phone     string         `gorm:"type:text" json:"phone,omitempty"`
	Address   string         `gorm:"type:text" json:"address,omitempty"`
	Status    ProviderStatus `gorm:"type:provider_status;not null;default:'pending'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
