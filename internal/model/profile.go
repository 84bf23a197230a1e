package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleUser is the role given to profiles created on first access.
const RoleUser = "user"

// Profile extends an auth identity with display and role attributes.
// One row per identity, keyed by UserID.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:64;uniqueIndex;not null"`
	Email     *string   `json:"email" gorm:"size:255"`
	FullName  *string   `json:"full_name" gorm:"size:255"`
	FirstName *string   `json:"first_name" gorm:"size:255"`
	LastName  *string   `json:"last_name" gorm:"size:255"`
	Role      string    `json:"role" gorm:"size:50;not null;default:'user'"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name used by the hosted database.
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// NewProfileFor returns the default profile for an identity seen for the first time.
func NewProfileFor(identity *Identity) *Profile {
	return &Profile{
		UserID:    identity.ID,
		Email:     optional(identity.Email),
		FullName:  optional(identity.MetadataString("full_name")),
		FirstName: optional(identity.MetadataString("first_name")),
		LastName:  optional(identity.MetadataString("last_name")),
		Role:      RoleUser,
		IsActive:  true,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
