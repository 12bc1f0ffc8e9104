package repository

import (
	"gorm.io/gorm"

	"github.com/Carr-Ethan/cse108-Final/internal/models"
)

// GormGroupRepository is a GORM implementation of GroupRepository
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GormGroupRepository{db: db}
}

// CreateWithCreatorMembership creates the group and the creator's membership
// atomically, so a failed membership insert leaves no orphaned group.
func (r *GormGroupRepository) CreateWithCreatorMembership(group *models.Group, member *models.GroupMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		member.GroupID = group.ID
		member.UserID = group.CreatorID

		return tx.Create(member).Error
	})
}

// FindByName finds a group by its unique name
func (r *GormGroupRepository) FindByName(name string) (*models.Group, error) {
	var group models.Group
	if err := r.db.Where("name = ?", name).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// List returns all groups with their creators preloaded
func (r *GormGroupRepository) List() ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Preload("Creator").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// AddMember inserts a membership row
func (r *GormGroupRepository) AddMember(member *models.GroupMember) error {
	return r.db.Create(member).Error
}

// FindMember finds a specific membership row
func (r *GormGroupRepository) FindMember(groupID, userID uint64) (*models.GroupMember, error) {
	var member models.GroupMember
	if err := r.db.Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembershipsByUserID lists all memberships of a user with groups preloaded
func (r *GormGroupRepository) ListMembershipsByUserID(userID uint64) ([]models.GroupMember, error) {
	var memberships []models.GroupMember
	if err := r.db.Preload("Group").Preload("Group.Creator").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListMembers lists all members of a group with users preloaded
func (r *GormGroupRepository) ListMembers(groupID uint64) ([]models.GroupMember, error) {
	var members []models.GroupMember
	if err := r.db.Preload("User").
		Where("group_id = ?", groupID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
