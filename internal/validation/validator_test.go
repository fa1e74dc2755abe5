package validation

import (
	"testing"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/fingerprint"
	"github.com/authormark-api/internal/models"
)

func TestArticleSubmission(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		wantErr bool
	}{
		{"valid", "A Title", "some content", false},
		{"missing title", "", "some content", true},
		{"whitespace title", "   ", "some content", true},
		{"missing content", "A Title", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ArticleSubmission(tt.title, tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("ArticleSubmission(%q, %q) error = %v, wantErr %v",
					tt.title, tt.content, err, tt.wantErr)
			}
			if err != nil && !apperr.Is(err, apperr.KindValidation) {
				t.Errorf("Expected validation kind, got %s", apperr.KindOf(err))
			}
		})
	}
}

func TestCommentSubmission(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.SubmitCommentRequest
		wantErr bool
	}{
		{
			name:    "valid minimal",
			req:     &models.SubmitCommentRequest{ArticleID: "a1", Body: "hi"},
			wantErr: false,
		},
		{
			name:    "missing article id",
			req:     &models.SubmitCommentRequest{Body: "hi"},
			wantErr: true,
		},
		{
			name:    "blank body",
			req:     &models.SubmitCommentRequest{ArticleID: "a1", Body: "  "},
			wantErr: true,
		},
		{
			name: "valid spend",
			req: &models.SubmitCommentRequest{
				ArticleID: "a1", Body: "hi",
				Spend: &models.SpendRequest{Amount: 3, Direction: models.SpendUp},
			},
			wantErr: false,
		},
		{
			name: "zero spend amount",
			req: &models.SubmitCommentRequest{
				ArticleID: "a1", Body: "hi",
				Spend: &models.SpendRequest{Amount: 0, Direction: models.SpendUp},
			},
			wantErr: true,
		},
		{
			name: "invalid spend direction",
			req: &models.SubmitCommentRequest{
				ArticleID: "a1", Body: "hi",
				Spend: &models.SpendRequest{Amount: 3, Direction: "left"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CommentSubmission(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("CommentSubmission() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFingerprintParam(t *testing.T) {
	if err := Fingerprint(fingerprint.Sum([]byte("x"))); err != nil {
		t.Errorf("A real fingerprint should validate, got %v", err)
	}
	if err := Fingerprint("short"); err == nil {
		t.Error("A malformed fingerprint should be rejected")
	}
}
