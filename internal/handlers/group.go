package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Carr-Ethan/cse108-Final/internal/dto"
	apierrors "github.com/Carr-Ethan/cse108-Final/internal/errors"
	"github.com/Carr-Ethan/cse108-Final/internal/middleware"
	"github.com/Carr-Ethan/cse108-Final/internal/services"
)

// GroupHandler coordinates group and membership HTTP handlers.
type GroupHandler struct {
	groupService *services.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// CreateGroup creates a new group owned by the caller.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateGroupRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	group, err := h.groupService.CreateGroup(services.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   userID,
	})
	if err != nil {
		respondGroupError(c, err)
		return
	}

	log.Info().Str("group", group.Name).Uint64("creator_id", userID).Msg("group created")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Group is successfully created",
	})
}

// ListGroups returns every group with its creator's username.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups()
	if err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupDTOs(groups))
}

// ListMyGroups returns the groups the caller is a member of.
func (h *GroupHandler) ListMyGroups(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	memberships, err := h.groupService.ListGroupsForUser(userID)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MembershipsToGroupDTOs(memberships))
}

// JoinGroup adds the caller to the group named in the path.
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	groupName := c.Param("name")

	if _, err := h.groupService.JoinGroup(userID, groupName); err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully joined the group",
	})
}

// ListMembers returns the usernames of everyone in the named group.
func (h *GroupHandler) ListMembers(c *gin.Context) {
	groupName := c.Param("name")

	members, err := h.groupService.ListMembers(groupName)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTOs(members))
}

func respondGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGroupNameRequired):
		apierrors.BadRequest(c, "Invalid input")
	case errors.Is(err, services.ErrGroupNameTaken):
		apierrors.Taken(c, "Name is taken")
	case errors.Is(err, services.ErrGroupNotFound):
		apierrors.NotFound(c, "Not a valid group")
	case errors.Is(err, services.ErrAlreadyGroupMember):
		apierrors.Conflict(c, "Already a member of this group")
	default:
		log.Error().Err(err).Msg("group handler error")
		apierrors.InternalError(c, "")
	}
}
