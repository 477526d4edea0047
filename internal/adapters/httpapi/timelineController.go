package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TimelineController struct {
	tc TimelineUseCase
	ac AccountUseCase
}

func NewTimelineController(tc TimelineUseCase, ac AccountUseCase) *TimelineController {
	return &TimelineController{tc: tc, ac: ac}
}

// Home renders the feed: all posts newest first plus the ids of the posts
// the viewer has liked.
func (ctl *TimelineController) Home(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}
	feed, err := ctl.tc.Home(c.Request.Context(), accountID.(string))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// Profile renders another account's page, viewer-relative. The URL uses
// the username; the profile projection works on ids.
func (ctl *TimelineController) Profile(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}
	target, err := ctl.ac.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	profile, err := ctl.tc.Profile(c.Request.Context(), target.ID, accountID.(string))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *TimelineController) PostDetail(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}
	detail, err := ctl.tc.PostDetail(c.Request.Context(), c.Param("id"), accountID.(string))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
