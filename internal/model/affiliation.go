// internal/model/affiliation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LinkStatus string

const (
	LinkPending  LinkStatus = "pending"
	LinkApproved LinkStatus = "approved"
	LinkRejected LinkStatus = "rejected"
)

// AffiliationLink relates one provider to one company. A unique index on
// (provider_id, company_id) backs the duplicate-request invariant: the
// check-then-insert in the service is a fast path, the constraint is the
// guarantee.
type AffiliationLink struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_provider_company" json:"provider_id"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_provider_company" json:"company_id"`
	Status      LinkStatus `gorm:"type:link_status;not null;default:'pending'" json:"status"`
	RequestNote string     `gorm:"type:text" json:"request_note,omitempty"`
	RequestedAt time.Time  `gorm:"not null" json:"requested_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	ApprovedBy  *uuid.UUID `gorm:"type:uuid" json:"approved_by,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`
	RejectedBy  *uuid.UUID `gorm:"type:uuid" json:"rejected_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Provider Provider `gorm:"foreignKey:ProviderID" json:"-"`
	Company  Company  `gorm:"foreignKey:CompanyID" json:"-"`
}

func (AffiliationLink) TableName() string {
	return "provider_company_links"
}
