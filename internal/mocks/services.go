package mocks

import (
	"context"

	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	SubmitFunc  func(ctx context.Context, req *models.SubmitArticleRequest) (*models.SubmitArticleResponse, error)
	GetByIDFunc func(ctx context.Context, id string) (*models.Article, error)
	ListFunc    func(ctx context.Context) ([]*models.Article, error)
	CountValue  int
	Submitted   []*models.SubmitArticleRequest
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{
		Submitted: make([]*models.SubmitArticleRequest, 0),
	}
}

func (m *MockArticleService) Submit(ctx context.Context, req *models.SubmitArticleRequest) (*models.SubmitArticleResponse, error) {
	m.Submitted = append(m.Submitted, req)
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	return &models.SubmitArticleResponse{ArticleID: "test-article-id", Fingerprint: "test-fingerprint"}, nil
}

func (m *MockArticleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Article{ID: id}, nil
}

func (m *MockArticleService) List(ctx context.Context) ([]*models.Article, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockArticleService) Count(ctx context.Context) (int, error) {
	return m.CountValue, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	SubmitFunc        func(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmitCommentResponse, error)
	ListByArticleFunc func(ctx context.Context, articleID string) ([]*models.Comment, error)
	CountValue        int
	Submitted         []*models.SubmitCommentRequest
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{
		Submitted: make([]*models.SubmitCommentRequest, 0),
	}
}

func (m *MockCommentService) Submit(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmitCommentResponse, error) {
	m.Submitted = append(m.Submitted, req)
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	return &models.SubmitCommentResponse{
		Score:   1.0,
		Comment: &models.Comment{ID: "test-comment-id", ArticleID: req.ArticleID},
	}, nil
}

func (m *MockCommentService) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	if m.ListByArticleFunc != nil {
		return m.ListByArticleFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *MockCommentService) Count(ctx context.Context) (int, error) {
	return m.CountValue, nil
}

// MockCertificateService is a mock implementation of CertificateService
type MockCertificateService struct {
	VerifyFunc func(ctx context.Context, fp string) (*models.Certificate, error)
	RenderFunc func(ctx context.Context, fp string) ([]byte, string, string, error)
}

// Verify interface compliance
var _ service.CertificateService = (*MockCertificateService)(nil)

func NewMockCertificateService() *MockCertificateService {
	return &MockCertificateService{}
}

func (m *MockCertificateService) Verify(ctx context.Context, fp string) (*models.Certificate, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, fp)
	}
	return &models.Certificate{CertificateID: "test-certificate-id"}, nil
}

func (m *MockCertificateService) VerifyAndRender(ctx context.Context, fp string) ([]byte, string, string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, fp)
	}
	return []byte("%PDF-"), "certificate_test.pdf", "application/pdf", nil
}

// MockMemberService is a mock implementation of MemberService
type MockMemberService struct {
	CreateFunc func(ctx context.Context, req *models.CreateMemberRequest) (*models.Member, error)
	GetFunc    func(ctx context.Context, id string) (*models.Member, error)
}

// Verify interface compliance
var _ service.MemberService = (*MockMemberService)(nil)

func NewMockMemberService() *MockMemberService {
	return &MockMemberService{}
}

func (m *MockMemberService) Create(ctx context.Context, req *models.CreateMemberRequest) (*models.Member, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &models.Member{ID: "test-member-id", Name: req.Name, Balance: req.Balance}, nil
}

func (m *MockMemberService) GetByID(ctx context.Context, id string) (*models.Member, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.Member{ID: id}, nil
}
