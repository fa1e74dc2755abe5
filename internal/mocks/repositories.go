package mocks

import (
	"context"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/repository"
	"github.com/authormark-api/internal/scoring"
)

// MockArticleRepository is a mock implementation of ArticleRepository.
// It emulates the store's conditional-write semantics: certificate
// identifiers only land while unset, and point totals fold atomically.
type MockArticleRepository struct {
	Articles            map[string]*models.Article
	ByFingerprint       map[string]*models.Article
	CreateError         error
	GetError            error
	AddPointsError      error
	SetCertError        error
	SetCertFunc         func(ctx context.Context, id, certID string) (bool, error)
	CreateCalls         int
	SetCertificateCalls int
	AddPointsCalls      int
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:      make(map[string]*models.Article),
		ByFingerprint: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, exists := m.ByFingerprint[article.Fingerprint]; exists {
		return apperr.New("article.create", apperr.KindConflict, "identical content was already published")
	}
	m.Articles[article.ID] = article
	m.ByFingerprint[article.Fingerprint] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetByFingerprint(ctx context.Context, fp string) (*models.Article, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.ByFingerprint[fp], nil
}

func (m *MockArticleRepository) List(ctx context.Context) ([]*models.Article, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	articles := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		articles = append(articles, a)
	}
	return articles, nil
}

func (m *MockArticleRepository) SetCertificateID(ctx context.Context, id, certID string) (bool, error) {
	m.SetCertificateCalls++
	if m.SetCertError != nil {
		return false, m.SetCertError
	}
	if m.SetCertFunc != nil {
		return m.SetCertFunc(ctx, id, certID)
	}
	article, exists := m.Articles[id]
	if !exists || article.Certified() {
		return false, nil
	}
	article.CertificateID = &certID
	return true, nil
}

func (m *MockArticleRepository) AddPoints(ctx context.Context, id string, delta float64) (float64, error) {
	m.AddPointsCalls++
	if m.AddPointsError != nil {
		return 0, m.AddPointsError
	}
	article, exists := m.Articles[id]
	if !exists {
		return 0, apperr.New("article.add_points", apperr.KindNotFound, "article not found")
	}
	total := scoring.Round2(article.Points + delta)
	if total < 0 {
		total = 0
	}
	article.Points = total
	return total, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    []*models.Comment
	CreateError error
	CreateCalls int
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make([]*models.Comment, 0),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Comments = append(m.Comments, comment)
	return nil
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

// MockMemberRepository is a mock implementation of MemberRepository with
// the same conditional deduction semantics as the real store
type MockMemberRepository struct {
	Members     map[string]*models.Member
	CreateError error
	GetError    error
	DeductError error
	DeductCalls int
}

// Verify interface compliance
var _ repository.MemberRepository = (*MockMemberRepository)(nil)

func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{
		Members: make(map[string]*models.Member),
	}
}

func (m *MockMemberRepository) Create(ctx context.Context, member *models.Member) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Members[member.ID] = member
	return nil
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.Members[id], nil
}

func (m *MockMemberRepository) DeductBalance(ctx context.Context, id string, amount float64) (bool, error) {
	m.DeductCalls++
	if m.DeductError != nil {
		return false, m.DeductError
	}
	member, exists := m.Members[id]
	if !exists || member.Balance < amount {
		return false, nil
	}
	member.Balance = scoring.Round2(member.Balance - amount)
	return true, nil
}

// NewMockRepositories bundles fresh mocks into a Repositories value for
// service tests
func NewMockRepositories() (*repository.Repositories, *MockArticleRepository, *MockCommentRepository, *MockMemberRepository) {
	articleRepo := NewMockArticleRepository()
	commentRepo := NewMockCommentRepository()
	memberRepo := NewMockMemberRepository()
	repos := &repository.Repositories{
		Article: articleRepo,
		Comment: commentRepo,
		Member:  memberRepo,
	}
	return repos, articleRepo, commentRepo, memberRepo
}
