package repository

import (
	"gorm.io/gorm"

	"github.com/Carr-Ethan/cse108-Final/internal/models"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByGroupID lists all posts of a single group
func (r *GormPostRepository) ListByGroupID(groupID uint64) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("group_id = ?", groupID).
		Order("time_posted DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByGroupIDs lists all posts across the given groups
func (r *GormPostRepository) ListByGroupIDs(groupIDs []uint64) ([]models.Post, error) {
	if len(groupIDs) == 0 {
		return []models.Post{}, nil
	}

	var posts []models.Post
	if err := r.db.Where("group_id IN ?", groupIDs).
		Order("time_posted DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update updates a post
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}
