package service

import (
	"context"

	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	Submit(ctx context.Context, req *models.SubmitArticleRequest) (*models.SubmitArticleResponse, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	List(ctx context.Context) ([]*models.Article, error)
	Count(ctx context.Context) (int, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	Submit(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmitCommentResponse, error)
	ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// CertificateService defines the interface for certificate verification
// and rendering
type CertificateService interface {
	Verify(ctx context.Context, fp string) (*models.Certificate, error)
	VerifyAndRender(ctx context.Context, fp string) (doc []byte, filename, mediaType string, err error)
}

// MemberService defines the interface for member operations
type MemberService interface {
	Create(ctx context.Context, req *models.CreateMemberRequest) (*models.Member, error)
	GetByID(ctx context.Context, id string) (*models.Member, error)
}

// Services holds all service interfaces
type Services struct {
	Article     ArticleService
	Comment     CommentService
	Certificate CertificateService
	Member      MemberService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Article:     newArticleService(repos, log),
		Comment:     newCommentService(repos, log),
		Certificate: newCertificateService(repos, log),
		Member:      newMemberService(repos, log),
	}
}
