package models

import "time"

type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID       uint   `gorm:"not null;index" json:"userId"`
	Description  string `gorm:"type:text;not null" json:"description"`
	Img          string `json:"img,omitempty"`
	ConnectionID string `json:"connectionId,omitempty"`
	IsPrivate    bool   `gorm:"not null" json:"isPrivate"`
	Status       string `gorm:"not null" json:"status"`
	Banner       string `json:"banner,omitempty"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
