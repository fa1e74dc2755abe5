package models

import (
	"time"
)

// Article represents a published article and its content fingerprint
type Article struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	FileURL       string    `json:"file_url,omitempty" db:"file_url"`
	Fingerprint   string    `json:"fingerprint" db:"fingerprint"`
	CertificateID *string   `json:"certificate_id,omitempty" db:"certificate_id"`
	Points        float64   `json:"points" db:"points"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Certified reports whether a certificate identifier has been allocated.
// The identifier is set at most once and never changes afterwards.
func (a *Article) Certified() bool {
	return a.CertificateID != nil && *a.CertificateID != ""
}

// SubmitArticleRequest is the JSON payload for publishing an article.
// Content may instead arrive as a multipart file upload.
type SubmitArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SubmitArticleResponse is returned after a successful publish
type SubmitArticleResponse struct {
	ArticleID   string `json:"article_id"`
	Fingerprint string `json:"fingerprint"`
}
