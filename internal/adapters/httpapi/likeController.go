package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LikeController struct{ lc LikeUseCase }

func NewLikeController(lc LikeUseCase) *LikeController { return &LikeController{lc: lc} }

func (ctl *LikeController) Like(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}
	postID := c.Param("id")
	if err := ctl.lc.Like(c.Request.Context(), accountID.(string), postID); err != nil {
		respondError(c, err)
		return
	}

	count, err := ctl.lc.Count(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post_id": postID, "is_liked": true, "like_count": count})
}

func (ctl *LikeController) Unlike(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}
	postID := c.Param("id")
	if err := ctl.lc.Unlike(c.Request.Context(), accountID.(string), postID); err != nil {
		respondError(c, err)
		return
	}

	count, err := ctl.lc.Count(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post_id": postID, "is_liked": false, "like_count": count})
}
