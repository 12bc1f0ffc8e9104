package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Carr-Ethan/cse108-Final/internal/constants"
	"github.com/Carr-Ethan/cse108-Final/internal/dto"
	apierrors "github.com/Carr-Ethan/cse108-Final/internal/errors"
	"github.com/Carr-Ethan/cse108-Final/internal/middleware"
	"github.com/Carr-Ethan/cse108-Final/internal/models"
	"github.com/Carr-Ethan/cse108-Final/internal/services"
)

// PostHandler coordinates post HTTP handlers.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost creates a deadline-bound post in the named group.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreatePostRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Deadline    string `json:"deadline" binding:"required"`
		GroupName   string `json:"group_name" binding:"required"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid input")
		return
	}

	post, err := h.postService.CreatePost(services.CreatePostInput{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
		GroupName:   req.GroupName,
		CreatorID:   userID,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	log.Info().Str("post", post.Name).Uint64("group_id", post.GroupID).Msg("post created")
	c.JSON(http.StatusOK, gin.H{
		"message": "Post Created",
	})
}

// ListMyPosts returns posts from every group the caller belongs to.
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	posts, err := h.postService.ListPostsForUser(userID)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTOs(posts))
}

// ListGroupPosts returns all posts of the group named in the path.
func (h *PostHandler) ListGroupPosts(c *gin.Context) {
	groupName := c.Param("groupName")

	posts, err := h.postService.ListGroupPosts(groupName)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTOs(posts))
}

// UpdatePostStatus sets a post's status. Restricted to members of the
// post's group.
func (h *PostHandler) UpdatePostStatus(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid post ID")
		return
	}

	type UpdateStatusRequest struct {
		Status models.PostStatus `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.UpdateStatus(postID, userID, req.Status)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNameRequired),
		errors.Is(err, services.ErrDeadlineRequired):
		apierrors.BadRequest(c, "Invalid input")
	case errors.Is(err, services.ErrInvalidDeadline):
		apierrors.BadRequest(c, fmt.Sprintf("Invalid deadline format. Expected format: %s", constants.DeadlineTimeFormat))
	case errors.Is(err, services.ErrInvalidPostStatus):
		apierrors.BadRequest(c, "Invalid post status")
	case errors.Is(err, services.ErrGroupNotFound):
		apierrors.NotFound(c, "Not a valid group")
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrNotGroupMember):
		// Non-members get the same answer as for a missing post, so the
		// response does not leak which posts exist.
		apierrors.NotFound(c, "Post not found")
	default:
		log.Error().Err(err).Msg("post handler error")
		apierrors.InternalError(c, "")
	}
}
