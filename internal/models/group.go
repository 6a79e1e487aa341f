package models

import "time"

// Group is a community created by a user. The owner is always the group's
// moderator, recorded as a UserGroup row with IsMod set.
type Group struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:1000" json:"description,omitempty"`
	// No gorm default here: gorm skips zero values on insert when a default exists,
	// which would turn every private group public.
	IsPublic bool `gorm:"not null" json:"isPublic"`
	OwnerID  uint `gorm:"not null;index" json:"ownerId"`

	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT" json:"-"`
}
