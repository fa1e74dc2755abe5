package models

import (
	"time"
)

// AnonymousAuthor is recorded when a commenter supplies no name
const AnonymousAuthor = "Anonymous"

// Comment represents a comment on an article. Comments are immutable
// once created.
type Comment struct {
	ID                string    `json:"id" db:"id"`
	ArticleID         string    `json:"article_id" db:"article_id"`
	AuthorName        string    `json:"author_name" db:"author_name"`
	Body              string    `json:"body" db:"body"`
	CitationCount     int       `json:"citation_count" db:"citation_count"`
	DisclosesIdentity bool      `json:"discloses_identity" db:"discloses_identity"`
	Score             float64   `json:"score" db:"score"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// SpendDirection is the sign of a point-spend adjustment
type SpendDirection string

const (
	SpendUp   SpendDirection = "up"
	SpendDown SpendDirection = "down"
)

// SpendRequest is an optional signed adjustment attached to a comment
// submission. When MemberID is empty the adjustment is still applied to
// the article total with no balance backing; totals are therefore not a
// trustworthy ledger without identity enforcement.
type SpendRequest struct {
	Amount    float64        `json:"amount"`
	Direction SpendDirection `json:"direction"`
	MemberID  string         `json:"member_id,omitempty"`
}

// SubmitCommentRequest is the payload for submitting a comment
type SubmitCommentRequest struct {
	ArticleID         string        `json:"article_id"`
	Body              string        `json:"body"`
	CitationCount     int           `json:"citation_count"`
	DisclosesIdentity bool          `json:"discloses_identity"`
	AuthorName        string        `json:"author_name"`
	Spend             *SpendRequest `json:"spend,omitempty"`
}

// SubmitCommentResponse is returned after a successful comment submission
type SubmitCommentResponse struct {
	Score         float64  `json:"score"`
	Comment       *Comment `json:"comment"`
	ArticlePoints float64  `json:"article_points"`
}
