package api

import (
	"net/http"

	"github.com/authormark-api/internal/config"
	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// SubmitComment handles POST /v1/comments
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.StoreTimeout)
	defer cancel()

	var req models.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"kind": "validation", "message": "invalid JSON body"},
		})
		return
	}

	resp, err := h.services.Comment.Submit(ctx, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListComments handles GET /v1/articles/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.StoreTimeout)
	defer cancel()

	comments, err := h.services.Comment.ListByArticle(ctx, c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}
