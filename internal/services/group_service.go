package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Carr-Ethan/cse108-Final/internal/models"
	"github.com/Carr-Ethan/cse108-Final/internal/repository"
)

var (
	ErrGroupNameRequired  = errors.New("group name is required")
	ErrGroupNameTaken     = errors.New("group name is taken")
	ErrGroupNotFound      = errors.New("group not found")
	ErrAlreadyGroupMember = errors.New("already a member of this group")
)

// GroupService provides business logic for groups and membership.
type GroupService struct {
	groupRepo repository.GroupRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
	}
}

// CreateGroupInput represents parameters to create a new group.
type CreateGroupInput struct {
	Name        string
	Description string
	CreatorID   uint64
}

// CreateGroup creates a new group. The creator becomes a member in the same
// transaction, so created groups show up under the creator's own groups.
func (s *GroupService) CreateGroup(input CreateGroupInput) (*models.Group, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrGroupNameRequired
	}

	if _, err := s.groupRepo.FindByName(name); err == nil {
		return nil, ErrGroupNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check group name: %w", err)
	}

	group := &models.Group{
		Name:        name,
		Description: input.Description,
		CreatorID:   input.CreatorID,
	}
	member := &models.GroupMember{
		JoinedAt: time.Now(),
	}

	if err := s.groupRepo.CreateWithCreatorMembership(group, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrGroupNameTaken
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// ListGroups returns all groups with creators resolved.
func (s *GroupService) ListGroups() ([]models.Group, error) {
	groups, err := s.groupRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// ListGroupsForUser returns the memberships of a user, groups preloaded.
func (s *GroupService) ListGroupsForUser(userID uint64) ([]models.GroupMember, error) {
	memberships, err := s.groupRepo.ListMembershipsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// JoinGroup adds the user to the group named groupName.
func (s *GroupService) JoinGroup(userID uint64, groupName string) (*models.Group, error) {
	group, err := s.groupRepo.FindByName(groupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	if _, err := s.groupRepo.FindMember(group.ID, userID); err == nil {
		return nil, ErrAlreadyGroupMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	member := &models.GroupMember{
		GroupID:  group.ID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}

	if err := s.groupRepo.AddMember(member); err != nil {
		// Composite primary key on (user_id, group_id); a concurrent join
		// that won the race surfaces here as a duplicate key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyGroupMember
		}
		return nil, fmt.Errorf("failed to join group: %w", err)
	}

	return group, nil
}

// ListMembers returns all members of the group named groupName.
func (s *GroupService) ListMembers(groupName string) ([]models.GroupMember, error) {
	group, err := s.groupRepo.FindByName(groupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	members, err := s.groupRepo.ListMembers(group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}
