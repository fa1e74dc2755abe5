package service

import (
	"context"
	"time"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/fingerprint"
	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/repository"
	"github.com/authormark-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newArticleService(repos *repository.Repositories, log zerolog.Logger) ArticleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// Submit publishes an article. The fingerprint covers the content bytes
// alone and is computed exactly once, here; it is never recomputed or
// reassigned. A duplicate fingerprint surfaces as a conflict.
func (s *articleService) Submit(ctx context.Context, req *models.SubmitArticleRequest) (*models.SubmitArticleResponse, error) {
	if err := validation.ArticleSubmission(req.Title, req.Content); err != nil {
		return nil, err
	}

	article := &models.Article{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Content:     req.Content,
		Fingerprint: fingerprint.Sum([]byte(req.Content)),
		Points:      0,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repos.Article.Create(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("fingerprint", article.Fingerprint).
		Msg("Article published")

	return &models.SubmitArticleResponse{
		ArticleID:   article.ID,
		Fingerprint: article.Fingerprint,
	}, nil
}

// GetByID retrieves an article, reporting a miss as not_found
func (s *articleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if id == "" {
		return nil, apperr.Validation("article.get", "article id is required")
	}
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.New("article.get", apperr.KindNotFound, "article not found")
	}
	return article, nil
}

// List retrieves all articles, newest first
func (s *articleService) List(ctx context.Context) ([]*models.Article, error) {
	return s.repos.Article.List(ctx)
}

// Count returns the number of published articles
func (s *articleService) Count(ctx context.Context) (int, error) {
	return s.repos.Article.Count(ctx)
}
