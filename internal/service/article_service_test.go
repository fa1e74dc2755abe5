package service_test

import (
	"context"
	"testing"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/mocks"
	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/service"
	"github.com/rs/zerolog"
)

func newTestServices() (*service.Services, *mocks.MockArticleRepository, *mocks.MockCommentRepository, *mocks.MockMemberRepository) {
	repos, articleRepo, commentRepo, memberRepo := mocks.NewMockRepositories()
	services := service.NewServices(repos, zerolog.Nop())
	return services, articleRepo, commentRepo, memberRepo
}

func TestSubmitArticle(t *testing.T) {
	services, articleRepo, _, _ := newTestServices()

	resp, err := services.Article.Submit(context.Background(), &models.SubmitArticleRequest{
		Title:   "A",
		Content: "hello",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	wantFP := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if resp.Fingerprint != wantFP {
		t.Errorf("Fingerprint = %s, want SHA-256 of content bytes %s", resp.Fingerprint, wantFP)
	}
	if resp.ArticleID == "" {
		t.Error("ArticleID should be assigned")
	}

	stored := articleRepo.Articles[resp.ArticleID]
	if stored == nil {
		t.Fatal("Article should be persisted")
	}
	if stored.Points != 0 {
		t.Errorf("New article points = %v, want 0", stored.Points)
	}
	if stored.Certified() {
		t.Error("New article should not carry a certificate identifier")
	}
}

func TestSubmitArticleDuplicateContent(t *testing.T) {
	services, _, _, _ := newTestServices()
	ctx := context.Background()

	first := &models.SubmitArticleRequest{Title: "First", Content: "identical body"}
	if _, err := services.Article.Submit(ctx, first); err != nil {
		t.Fatalf("First submit failed: %v", err)
	}

	// Content-only hashing: a different title with the same content still
	// collides on fingerprint.
	second := &models.SubmitArticleRequest{Title: "Second", Content: "identical body"}
	_, err := services.Article.Submit(ctx, second)
	if err == nil {
		t.Fatal("Second submit of identical content should conflict")
	}
	if !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("Expected conflict, got %s", apperr.KindOf(err))
	}
}

func TestSubmitArticleValidation(t *testing.T) {
	services, articleRepo, _, _ := newTestServices()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.SubmitArticleRequest
	}{
		{"missing title", &models.SubmitArticleRequest{Content: "body"}},
		{"blank title", &models.SubmitArticleRequest{Title: "   ", Content: "body"}},
		{"missing content", &models.SubmitArticleRequest{Title: "T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.Article.Submit(ctx, tt.req)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}

	// Validation failures must be detected before any store call.
	if articleRepo.CreateCalls != 0 {
		t.Errorf("Store should not be touched on validation failure, got %d calls", articleRepo.CreateCalls)
	}
}

func TestGetArticleNotFound(t *testing.T) {
	services, _, _, _ := newTestServices()

	_, err := services.Article.GetByID(context.Background(), "missing-id")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("Expected not_found, got %v", err)
	}
}
