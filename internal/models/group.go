package models

import (
	"time"

	"gorm.io/gorm"
)

type Group struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:varchar(200)" json:"description"`
	CreatorID   uint64         `gorm:"not null" json:"creator_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator User          `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Members []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Posts   []Post        `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
}
