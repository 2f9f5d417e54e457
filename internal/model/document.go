// internal/model/document.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
	DocumentExpired  DocumentStatus = "expired"
)

// Document is an uploaded credential file awaiting review. Providers create
// them in pending status; only admins move them out of it. Documents do not
// expire on their own, only licenses do.
type Document struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"provider_id"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	DocumentType string         `gorm:"type:text;not null" json:"document_type"`
	FileName     string         `gorm:"type:text;not null" json:"file_name"`
	FilePath     string         `gorm:"type:text;not null" json:"file_path"`
	FileSize     int64          `gorm:"not null" json:"file_size"`
	MimeType     string         `gorm:"type:text;not null" json:"mime_type"`
	Status       DocumentStatus `gorm:"type:document_status;not null;default:'pending'" json:"status"`
	UploadedAt   time.Time      `gorm:"not null" json:"uploaded_at"`
	ReviewedAt   *time.Time     `json:"reviewed_at,omitempty"`
	ReviewedBy   *uuid.UUID     `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	Notes        string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	Provider Provider `gorm:"foreignKey:ProviderID" json:"-"`
}
