package dto

import (
	"github.com/Carr-Ethan/cse108-Final/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// MemberDTO represents a group member in the members listing
type MemberDTO struct {
	Username string `json:"username"`
}

// ToMemberDTOs converts membership rows (users preloaded) to MemberDTOs
func ToMemberDTOs(members []models.GroupMember) []MemberDTO {
	dtos := make([]MemberDTO, len(members))
	for i, m := range members {
		dtos[i] = MemberDTO{Username: m.User.Username}
	}
	return dtos
}
