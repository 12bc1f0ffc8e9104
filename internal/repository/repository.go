package repository

import (
	"github.com/Carr-Ethan/cse108-Final/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// GroupRepository defines the interface for group and membership data access
type GroupRepository interface {
	// CreateWithCreatorMembership creates a group and the creator's
	// membership row within a single transaction.
	CreateWithCreatorMembership(group *models.Group, member *models.GroupMember) error

	// FindByName finds a group by its unique name
	FindByName(name string) (*models.Group, error)

	// List returns all groups with their creators preloaded
	List() ([]models.Group, error)

	// AddMember inserts a membership row
	AddMember(member *models.GroupMember) error

	// FindMember finds a specific membership row
	FindMember(groupID, userID uint64) (*models.GroupMember, error)

	// ListMembershipsByUserID lists all memberships of a user with groups preloaded
	ListMembershipsByUserID(userID uint64) ([]models.GroupMember, error)

	// ListMembers lists all members of a group with users preloaded
	ListMembers(groupID uint64) ([]models.GroupMember, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds a post by ID
	FindByID(id uint64) (*models.Post, error)

	// ListByGroupID lists all posts of a single group
	ListByGroupID(groupID uint64) ([]models.Post, error)

	// ListByGroupIDs lists all posts across the given groups
	ListByGroupIDs(groupIDs []uint64) ([]models.Post, error)

	// Update updates a post
	Update(post *models.Post) error
}
