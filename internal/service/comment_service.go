package service

import (
	"context"
	"time"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/repository"
	"github.com/authormark-api/internal/scoring"
	"github.com/authormark-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newCommentService(repos *repository.Repositories, log zerolog.Logger) CommentService {
	return &commentService{
		repos: repos,
		log:   log.With().Str("service", "comment").Logger(),
	}
}

// Submit stores a comment, scores it, and folds the score plus any spend
// adjustment into the article's running total.
//
// Ordering matters: the spend's balance deduction happens before the
// comment insert so an insufficient balance leaves nothing mutated. The
// comment insert is the source of truth; if the total update afterwards
// fails, the comment still stands and the failure is only logged.
func (s *commentService) Submit(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmitCommentResponse, error) {
	if err := validation.CommentSubmission(req); err != nil {
		return nil, err
	}

	article, err := s.repos.Article.GetByID(ctx, req.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.New("comment.submit", apperr.KindNotFound, "article not found")
	}

	spendDelta, err := s.settleSpend(ctx, req.Spend)
	if err != nil {
		return nil, err
	}

	authorName := req.AuthorName
	if authorName == "" {
		authorName = models.AnonymousAuthor
	}
	citations := req.CitationCount
	if citations < 0 {
		citations = 0
	}

	comment := &models.Comment{
		ID:                uuid.New().String(),
		ArticleID:         article.ID,
		AuthorName:        authorName,
		Body:              req.Body,
		CitationCount:     citations,
		DisclosesIdentity: req.DisclosesIdentity,
		Score:             scoring.CommentScore(len(req.Body), citations, req.DisclosesIdentity),
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, err
	}

	newTotal, err := s.repos.Article.AddPoints(ctx, article.ID, comment.Score+spendDelta)
	if err != nil {
		// Non-fatal: the stored comment is authoritative, the aggregate is
		// best-effort and can drift behind it.
		s.log.Warn().Err(err).
			Str("article_id", article.ID).
			Str("comment_id", comment.ID).
			Msg("Comment stored but article total update failed")
		newTotal = article.Points
	}

	return &models.SubmitCommentResponse{
		Score:         comment.Score,
		Comment:       comment,
		ArticlePoints: newTotal,
	}, nil
}

// settleSpend verifies and deducts the spender's balance when an identity
// is supplied, and returns the signed delta to apply to the article total.
// A spend without a member identity is applied unbacked; the running total
// is not a trustworthy ledger without identity enforcement.
func (s *commentService) settleSpend(ctx context.Context, spend *models.SpendRequest) (float64, error) {
	const op = "comment.spend"

	if spend == nil {
		return 0, nil
	}

	if spend.MemberID != "" {
		member, err := s.repos.Member.GetByID(ctx, spend.MemberID)
		if err != nil {
			return 0, err
		}
		if member == nil {
			return 0, apperr.New(op, apperr.KindNotFound, "member not found")
		}
		ok, err := s.repos.Member.DeductBalance(ctx, spend.MemberID, spend.Amount)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, apperr.New(op, apperr.KindInsufficientBalance, "balance does not cover spend amount")
		}
	}

	if spend.Direction == models.SpendDown {
		return -spend.Amount, nil
	}
	return spend.Amount, nil
}

// ListByArticle retrieves an article's comments, oldest first
func (s *commentService) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.New("comment.list", apperr.KindNotFound, "article not found")
	}
	return s.repos.Comment.ListByArticle(ctx, articleID)
}

// Count returns the number of stored comments
func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.repos.Comment.Count(ctx)
}
