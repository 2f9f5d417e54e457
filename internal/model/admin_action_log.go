// internal/model/admin_action_log.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminActionLog is the append-only audit trail of privileged actions.
// Rows are only ever inserted; nothing in the codebase updates or deletes them.
type AdminActionLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AdminID    uuid.UUID `gorm:"type:uuid;not null;index" json:"admin_id"`
	ActionType string    `gorm:"type:text;not null" json:"action_type"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null" json:"target_id"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AdminActionLog) TableName() string {
	return "admin_action_logs"
}

// Action types recorded by the workflow services.
const (
	ActionApproveRequest  = "approve_request"
	ActionRejectRequest   = "reject_request"
	ActionRevertApproval  = "revert_approval"
	ActionRemoveProvider  = "remove_provider"
	ActionApproveProvider = "approve_provider"
	ActionRejectProvider  = "reject_provider"
	ActionApproveDocument = "approve_document"
	ActionRejectDocument  = "reject_document"
	ActionRevertDocument  = "revert_document"
	ActionVerifyLicense   = "verify_license"
	ActionRevertLicense   = "revert_license"
)
