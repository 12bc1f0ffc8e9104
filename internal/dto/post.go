package dto

import (
	"github.com/Carr-Ethan/cse108-Final/internal/constants"
	"github.com/Carr-Ethan/cse108-Final/internal/models"
)

// PostDTO represents a post in API responses. Timestamps go out in the same
// layout the deadline comes in with.
type PostDTO struct {
	ID          uint64            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	TimePosted  string            `json:"time_posted"`
	Deadline    string            `json:"deadline"`
	Status      models.PostStatus `json:"status"`
}

// ToPostDTO converts a Post model to PostDTO
func ToPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:          post.ID,
		Name:        post.Name,
		Description: post.Description,
		TimePosted:  post.TimePosted.Format(constants.DeadlineTimeFormat),
		Deadline:    post.Deadline.Format(constants.DeadlineTimeFormat),
		Status:      post.Status,
	}
}

// ToPostDTOs converts a slice of posts to PostDTOs
func ToPostDTOs(posts []models.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, p := range posts {
		dtos[i] = ToPostDTO(p)
	}
	return dtos
}
