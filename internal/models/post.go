package models

import (
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	PostStatusInProgress PostStatus = "in progress"
	PostStatusCompleted  PostStatus = "completed"
	PostStatusOverdue    PostStatus = "overdue"
)

// ValidPostStatus reports whether s is one of the known status values.
func ValidPostStatus(s PostStatus) bool {
	switch s {
	case PostStatusInProgress, PostStatusCompleted, PostStatusOverdue:
		return true
	}
	return false
}

type Post struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(80);not null" json:"name"`
	Description string         `gorm:"type:varchar(200)" json:"description"`
	TimePosted  time.Time      `gorm:"not null" json:"time_posted"`
	Deadline    time.Time      `gorm:"not null" json:"deadline"`
	Status      PostStatus     `gorm:"type:varchar(20);not null;default:'in progress'" json:"status"`
	CreatorID   uint64         `gorm:"not null" json:"creator_id"`
	GroupID     uint64         `gorm:"not null" json:"group_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator User  `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Group   Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}
