package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"type:varchar(256);not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedGroups []Group       `gorm:"foreignKey:CreatorID" json:"-"`
	CreatedPosts  []Post        `gorm:"foreignKey:CreatorID" json:"-"`
	Memberships   []GroupMember `gorm:"foreignKey:UserID" json:"-"`
}
