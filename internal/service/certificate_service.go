package service

import (
	"context"
	"time"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/certificate"
	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/repository"
	"github.com/authormark-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// certificateService is the concrete implementation of CertificateService
type certificateService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newCertificateService(repos *repository.Repositories, log zerolog.Logger) CertificateService {
	return &certificateService{
		repos: repos,
		log:   log.With().Str("service", "certificate").Logger(),
	}
}

// Verify resolves a fingerprint to its authorship certificate. The
// certificate identifier is allocated lazily on the first verification and
// then never changes; the rest of the view is recomputed per request, so
// the title is always the article's current one and issued_at is the time
// of this request. An unknown fingerprint is a not_found outcome, not a
// fault.
func (s *certificateService) Verify(ctx context.Context, fp string) (*models.Certificate, error) {
	if err := validation.Fingerprint(fp); err != nil {
		return nil, err
	}

	article, err := s.repos.Article.GetByFingerprint(ctx, fp)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.New("certificate.verify", apperr.KindNotFound, "no article matches this fingerprint")
	}

	certID, err := s.certificateID(ctx, article)
	if err != nil {
		return nil, err
	}

	return &models.Certificate{
		ArticleID:     article.ID,
		CertificateID: certID,
		Title:         article.Title,
		IssuedAt:      time.Now().UTC(),
		Attestation:   models.AttestationMessage,
	}, nil
}

// certificateID returns the article's certificate identifier, allocating
// one on first use. The allocation is a conditional write: when two
// verifications race, exactly one identifier lands and the loser adopts it
// on re-read, so both callers report the same durable identifier.
func (s *certificateService) certificateID(ctx context.Context, article *models.Article) (string, error) {
	if article.Certified() {
		return *article.CertificateID, nil
	}

	certID := uuid.New().String()
	ok, err := s.repos.Article.SetCertificateID(ctx, article.ID, certID)
	if err != nil {
		return "", err
	}
	if ok {
		s.log.Info().
			Str("article_id", article.ID).
			Str("certificate_id", certID).
			Msg("Certificate identifier allocated")
		return certID, nil
	}

	// Lost the allocation race; the stored identifier is the official one.
	current, err := s.repos.Article.GetByID(ctx, article.ID)
	if err != nil {
		return "", err
	}
	if current == nil || !current.Certified() {
		return "", apperr.New("certificate.verify", apperr.KindStoreUnavailable,
			"certificate allocation could not be confirmed")
	}
	return *current.CertificateID, nil
}

// VerifyAndRender resolves a fingerprint and renders the certificate as a
// downloadable document
func (s *certificateService) VerifyAndRender(ctx context.Context, fp string) ([]byte, string, string, error) {
	cert, err := s.Verify(ctx, fp)
	if err != nil {
		return nil, "", "", err
	}
	doc, filename, mediaType, err := certificate.Render(cert)
	if err != nil {
		return nil, "", "", apperr.Wrap("certificate.render", apperr.KindInternal,
			"failed to render certificate", err)
	}
	return doc, filename, mediaType, nil
}
