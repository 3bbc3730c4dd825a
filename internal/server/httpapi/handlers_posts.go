package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"postboard/internal/common"
	"postboard/internal/server/auth"
	"postboard/internal/server/posts"
)

type postRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type postResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPostResponse(p *posts.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (s *Server) handleListPosts(c *gin.Context) {
	list, err := s.posts.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing posts failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL",
			"message": "internal error",
		})
		return
	}

	result := make([]postResponse, 0, len(list))
	for _, p := range list {
		result = append(result, toPostResponse(p))
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetPost(c *gin.Context) {
	post, err := s.posts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    "NOT_FOUND",
				"message": "post not found",
			})
			return
		}
		s.logger.Error(c.Request.Context(), "reading post failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL",
			"message": "internal error",
		})
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

func (s *Server) handleCreatePost(c *gin.Context) {
	identity, _ := auth.IdentityFromContext(c)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": "title is required",
		})
		return
	}

	post, err := s.posts.Create(c.Request.Context(), identity, req.Title, req.Content)
	if err != nil {
		s.writePostError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPostResponse(post))
}

func (s *Server) handleUpdatePost(c *gin.Context) {
	identity, _ := auth.IdentityFromContext(c)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": "title is required",
		})
		return
	}

	post, err := s.posts.Update(c.Request.Context(), identity, c.Param("id"), req.Title, req.Content)
	if err != nil {
		s.writePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

func (s *Server) handleDeletePost(c *gin.Context) {
	identity, _ := auth.IdentityFromContext(c)

	if err := s.posts.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		s.writePostError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) writePostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": err.Error(),
		})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    "UNAUTHENTICATED",
			"message": "authentication required",
		})
	case errors.Is(err, common.ErrorForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"code":    "FORBIDDEN",
			"message": "only the owner may modify this post",
		})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"code":    "NOT_FOUND",
			"message": "post not found",
		})
	default:
		s.logger.Error(c.Request.Context(), "post operation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL",
			"message": "internal error",
		})
	}
}
