package repository

import (
	"context"

	"github.com/authormark-api/internal/database"
	"github.com/authormark-api/internal/models"
)

// ArticleRepository defines the interface for article data operations.
// The update primitives are conditional/atomic at the store boundary so
// concurrent requests cannot lose increments or double-allocate a
// certificate identifier.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetByFingerprint(ctx context.Context, fp string) (*models.Article, error)
	List(ctx context.Context) ([]*models.Article, error)
	// SetCertificateID writes certID only while the article has none.
	// Returns false when another request already allocated one.
	SetCertificateID(ctx context.Context, id, certID string) (bool, error)
	// AddPoints atomically folds delta into the running total, rounded to
	// two decimals and clamped at zero, and returns the new total.
	AddPoints(ctx context.Context, id string, delta float64) (float64, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// MemberRepository defines the interface for member data operations
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id string) (*models.Member, error)
	// DeductBalance subtracts amount only while the balance covers it.
	// Returns false when the balance was insufficient; nothing is written
	// in that case.
	DeductBalance(ctx context.Context, id string, amount float64) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	Comment CommentRepository
	Member  MemberRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Member:  NewMemberRepo(db),
	}
}
