package repository

import (
	"context"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/database"
	"github.com/authormark-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, article_id, author_name, body, citation_count, discloses_identity, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ArticleID, comment.AuthorName, comment.Body,
		comment.CitationCount, comment.DisclosesIdentity, comment.Score,
		comment.CreatedAt,
	)
	if err != nil {
		return apperr.StoreUnavailable("comment.create", err)
	}
	return nil
}

// ListByArticle retrieves all comments for an article, oldest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	query := `
		SELECT id, article_id, author_name, body, citation_count, discloses_identity, score, created_at
		FROM comments WHERE article_id = $1 ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, apperr.StoreUnavailable("comment.list_by_article", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.ArticleID, &comment.AuthorName, &comment.Body,
			&comment.CitationCount, &comment.DisclosesIdentity, &comment.Score,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, apperr.StoreUnavailable("comment.list_by_article", err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.StoreUnavailable("comment.list_by_article", err)
	}
	return comments, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	if err != nil {
		return 0, apperr.StoreUnavailable("comment.count", err)
	}
	return count, nil
}
