package validation

import (
	"strings"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/fingerprint"
	"github.com/authormark-api/internal/models"
)

// Validation runs before any store access: a request that fails here never
// reaches the database.

// ArticleSubmission checks a publish request
func ArticleSubmission(title, content string) error {
	const op = "article.submit"
	if strings.TrimSpace(title) == "" {
		return apperr.Validation(op, "title is required")
	}
	if content == "" {
		return apperr.Validation(op, "content is required")
	}
	return nil
}

// CommentSubmission checks a comment request, including the optional spend
func CommentSubmission(req *models.SubmitCommentRequest) error {
	const op = "comment.submit"
	if req.ArticleID == "" {
		return apperr.Validation(op, "article_id is required")
	}
	if strings.TrimSpace(req.Body) == "" {
		return apperr.Validation(op, "body is required")
	}
	if req.Spend != nil {
		if req.Spend.Amount <= 0 {
			return apperr.Validation(op, "spend amount must be positive")
		}
		if req.Spend.Direction != models.SpendUp && req.Spend.Direction != models.SpendDown {
			return apperr.Validation(op, "spend direction must be up or down")
		}
	}
	return nil
}

// MemberCreation checks a member registration request
func MemberCreation(req *models.CreateMemberRequest) error {
	const op = "member.create"
	if strings.TrimSpace(req.Name) == "" {
		return apperr.Validation(op, "name is required")
	}
	if req.Balance < 0 {
		return apperr.Validation(op, "balance must not be negative")
	}
	return nil
}

// Fingerprint checks that a verification key is shaped like a fingerprint
func Fingerprint(fp string) error {
	if !fingerprint.Valid(fp) {
		return apperr.Validation("certificate.verify", "fingerprint must be 64 lowercase hex characters")
	}
	return nil
}
