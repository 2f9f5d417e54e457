// internal/model/license.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LicenseStatus string

const (
	LicenseActive    LicenseStatus = "active"
	LicenseExpired   LicenseStatus = "expired"
	LicenseSuspended LicenseStatus = "suspended"
	LicenseRevoked   LicenseStatus = "revoked"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationFailed   VerificationStatus = "failed"
)

// License tracks one clinical license. Status and VerificationStatus are
// independent: Status is derived from the expiration date (active licenses
// past their expiration are expired lazily, by the sweep or a manual check),
// VerificationStatus records the outcome of the latest board check.
type License struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"provider_id"`
	CompanyID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"company_id"`
	LicenseNumber      string             `gorm:"type:text;not null" json:"license_number"`
	LicenseType        string             `gorm:"type:text;not null" json:"license_type"`
	IssuingState       string             `gorm:"type:text;not null" json:"issuing_state"`
	IssueDate          time.Time          `gorm:"not null" json:"issue_date"`
	ExpirationDate     time.Time          `gorm:"not null" json:"expiration_date"`
	Status             LicenseStatus      `gorm:"type:license_status;not null;default:'active'" json:"status"`
	VerificationStatus VerificationStatus `gorm:"type:verification_status;not null;default:'pending'" json:"verification_status"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
	VerifiedBy         *uuid.UUID         `gorm:"type:uuid" json:"verified_by,omitempty"`
	LastVerifiedAt     *time.Time         `json:"last_verified_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	Provider Provider `gorm:"foreignKey:ProviderID" json:"-"`
}
