package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Carr-Ethan/cse108-Final/internal/constants"
	"github.com/Carr-Ethan/cse108-Final/internal/models"
	"github.com/Carr-Ethan/cse108-Final/internal/repository"
)

var (
	ErrPostNameRequired  = errors.New("post name is required")
	ErrDeadlineRequired  = errors.New("deadline is required")
	ErrInvalidDeadline   = errors.New("invalid deadline format")
	ErrPostNotFound      = errors.New("post not found")
	ErrInvalidPostStatus = errors.New("invalid post status")
	ErrNotGroupMember    = errors.New("not a member of this group")
)

// PostService provides business logic for deadline-bound posts.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

// CreatePostInput represents input for creating a post.
type CreatePostInput struct {
	Name        string
	Description string
	Deadline    string
	GroupName   string
	CreatorID   uint64
}

// CreatePost creates a post in the named group. Membership in the group is
// not required to post into it.
func (s *PostService) CreatePost(input CreatePostInput) (*models.Post, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPostNameRequired
	}
	if input.Deadline == "" {
		return nil, ErrDeadlineRequired
	}

	deadline, err := time.ParseInLocation(constants.DeadlineTimeFormat, input.Deadline, time.Local)
	if err != nil {
		return nil, ErrInvalidDeadline
	}

	group, err := s.groupRepo.FindByName(input.GroupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	post := &models.Post{
		Name:        name,
		Description: input.Description,
		TimePosted:  time.Now(),
		Deadline:    deadline,
		Status:      models.PostStatusInProgress,
		CreatorID:   input.CreatorID,
		GroupID:     group.ID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// ListPostsForUser returns posts from every group the user is a member of.
func (s *PostService) ListPostsForUser(userID uint64) ([]models.Post, error) {
	memberships, err := s.groupRepo.ListMembershipsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	groupIDs := make([]uint64, 0, len(memberships))
	for _, m := range memberships {
		groupIDs = append(groupIDs, m.GroupID)
	}

	posts, err := s.postRepo.ListByGroupIDs(groupIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// ListGroupPosts returns all posts of the group named groupName.
func (s *PostService) ListGroupPosts(groupName string) ([]models.Post, error) {
	group, err := s.groupRepo.FindByName(groupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	posts, err := s.postRepo.ListByGroupID(group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// UpdateStatus sets the status of a post. Only members of the post's group
// may change it.
func (s *PostService) UpdateStatus(postID, actorID uint64, status models.PostStatus) (*models.Post, error) {
	if !models.ValidPostStatus(status) {
		return nil, ErrInvalidPostStatus
	}

	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	if _, err := s.groupRepo.FindMember(post.GroupID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotGroupMember
		}
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	post.Status = status
	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}
