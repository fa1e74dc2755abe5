package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/authormark-api/internal/config"
	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// SubmitArticle handles POST /v1/articles.
// Accepts a JSON body with title and content, or a multipart upload with a
// title field and a content file.
func (h *ArticleHandler) SubmitArticle(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.StoreTimeout)
	defer cancel()

	var req models.SubmitArticleRequest

	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()

		if header.Size > h.cfg.Upload.MaxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"kind":    "validation",
					"message": fmt.Sprintf("file too large, max size is %d MB", h.cfg.Upload.MaxUploadSize/(1024*1024)),
				},
			})
			return
		}

		content, err := io.ReadAll(io.LimitReader(file, h.cfg.Upload.MaxUploadSize))
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to read uploaded file")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"kind": "internal", "message": "failed to read uploaded file"},
			})
			return
		}

		req.Title = c.PostForm("title")
		req.Content = string(content)
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"kind": "validation", "message": "file upload or JSON body with title and content is required"},
			})
			return
		}
	}

	resp, err := h.services.Article.Submit(ctx, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListArticles handles GET /v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.StoreTimeout)
	defer cancel()

	articles, err := h.services.Article.List(ctx)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// GetArticle handles GET /v1/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.StoreTimeout)
	defer cancel()

	article, err := h.services.Article.GetByID(ctx, c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, article)
}
