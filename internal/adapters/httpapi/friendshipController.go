package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type FriendshipController struct{ fc FriendshipUseCase }

func NewFriendshipController(fc FriendshipUseCase) *FriendshipController {
	return &FriendshipController{fc: fc}
}

func (ctl *FriendshipController) Follow(c *gin.Context) {
	var req struct {
		TargetID string `json:"target_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if _, err := uuid.FromString(req.TargetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target_id"})
		return
	}

	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}

	created, err := ctl.fc.Follow(c.Request.Context(), accountID.(string), req.TargetID)
	if err != nil {
		respondError(c, err)
		return
	}
	// re-following is a success, just not a new edge
	if !created {
		c.JSON(http.StatusOK, gin.H{"status": "already_following"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "following"})
}

func (ctl *FriendshipController) Unfollow(c *gin.Context) {
	var req struct {
		TargetID string `json:"target_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if _, err := uuid.FromString(req.TargetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target_id"})
		return
	}

	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}

	if err := ctl.fc.Unfollow(c.Request.Context(), accountID.(string), req.TargetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "not_following"})
}

func (ctl *FriendshipController) ListFollowers(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}
	followers, err := ctl.fc.ListFollowers(c.Request.Context(), accountID.(string))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"followers": followers})
}

func (ctl *FriendshipController) ListFollowing(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}
	following, err := ctl.fc.ListFollowing(c.Request.Context(), accountID.(string))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}
