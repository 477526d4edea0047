package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) Create(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}
	res, err := ctl.pc.Create(c.Request.Context(), req.Content, accountID.(string))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) Delete(c *gin.Context) {
	accountID, exists := c.Get("accountID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found in context"})
		return
	}
	if err := ctl.pc.Delete(c.Request.Context(), c.Param("id"), accountID.(string)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
