package models

import "time"

// UserGroup is the membership of a user in a group.
// Exactly one row per (user_id, group_id).
type UserGroup struct {
	UserID   uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	GroupID  uint      `gorm:"primaryKey;autoIncrement:false;index" json:"groupId"`
	IsMod    bool      `gorm:"not null" json:"isMod"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Group Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName pins the join table name used by raw queries and migrations.
func (UserGroup) TableName() string {
	return "user_groups"
}
