// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleProvider Role = "provider"
)

// User is an account in the identity layer. Role decides which side of the
// credentialing workflow the account drives: admins own companies and review
// credentials, providers submit them.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FullName     string    `gorm:"type:text;not null" json:"full_name"`
	Role         Role      `gorm:"type:user_role;not null;default:'provider'" json:"role"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the resolved identity a request acts as. Core operations take it
// explicitly; nothing below the handler layer reads ambient session state.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
