package dto

import (
	"github.com/Carr-Ethan/cse108-Final/internal/models"
)

// GroupDTO represents a group in listing responses. The creator_name key is
// what the frontend reads, keep it.
type GroupDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatorName string `json:"creator_name"`
}

// ToGroupDTO converts a Group model (creator preloaded) to GroupDTO
func ToGroupDTO(group models.Group) GroupDTO {
	return GroupDTO{
		Name:        group.Name,
		Description: group.Description,
		CreatorName: group.Creator.Username,
	}
}

// ToGroupDTOs converts a slice of groups to GroupDTOs
func ToGroupDTOs(groups []models.Group) []GroupDTO {
	dtos := make([]GroupDTO, len(groups))
	for i, g := range groups {
		dtos[i] = ToGroupDTO(g)
	}
	return dtos
}

// MembershipsToGroupDTOs converts membership rows (groups and their creators
// preloaded) to GroupDTOs
func MembershipsToGroupDTOs(memberships []models.GroupMember) []GroupDTO {
	dtos := make([]GroupDTO, len(memberships))
	for i, m := range memberships {
		dtos[i] = ToGroupDTO(m.Group)
	}
	return dtos
}
