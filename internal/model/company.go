// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentCodeLength is the fixed length of a company enrollment code.
// The code is the only token providers hold when requesting affiliation,
// so it is generated once at company creation and never reused.
const EnrollmentCodeLength = 8

type Company struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	EnrollmentCode string    `gorm:"type:citext;uniqueIndex;not null" json:"enrollment_code"`
	AdminID        uuid.UUID `gorm:"type:uuid;not null" json:"admin_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Admin User `gorm:"foreignKey:AdminID" json:"-"`
}
