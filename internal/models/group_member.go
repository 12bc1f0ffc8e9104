package models

import "time"

// GroupMember links a user to a group. The composite primary key is the
// uniqueness guard for joins: a second insert for the same (user, group)
// pair fails at the constraint, so concurrent joins cannot both succeed.
type GroupMember struct {
	UserID   uint64    `gorm:"primarykey" json:"user_id"`
	GroupID  uint64    `gorm:"primarykey" json:"group_id"`
	JoinedAt time.Time `json:"joined_at"`

	// Relations
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Group Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
}
