package models

import (
	"time"
)

// AttestationMessage is the fixed sentence printed on every certificate
const AttestationMessage = "This certifies that the article identified above was first published by the holder of its content fingerprint."

// Certificate is the authorship-certificate view for an article. Only the
// certificate identifier is durable (stored on the Article); the title is
// copied from the article at request time and IssuedAt is the timestamp of
// the request that produced this view, so the view is recomputed on every
// verification.
type Certificate struct {
	ArticleID     string    `json:"article_id"`
	CertificateID string    `json:"certificate_id"`
	Title         string    `json:"title"`
	IssuedAt      time.Time `json:"issued_at"`
	Attestation   string    `json:"attestation_message"`
}
