package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/fingerprint"
	"github.com/authormark-api/internal/models"
)

func TestVerifyUnknownFingerprint(t *testing.T) {
	services, articleRepo, _, _ := newTestServices()

	_, err := services.Certificate.Verify(context.Background(), fingerprint.Sum([]byte("never published")))
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("Expected not_found, got %v", err)
	}
	if articleRepo.SetCertificateCalls != 0 {
		t.Error("A miss must not mutate the store")
	}
}

func TestVerifyInvalidFingerprint(t *testing.T) {
	services, _, _, _ := newTestServices()

	for _, fp := range []string{"", "abc", "not-hex-at-all"} {
		_, err := services.Certificate.Verify(context.Background(), fp)
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("Verify(%q): expected validation error, got %v", fp, err)
		}
	}
}

func TestVerifyAllocatesExactlyOnce(t *testing.T) {
	services, articleRepo, _, _ := newTestServices()
	ctx := context.Background()

	content := "certified content"
	fp := fingerprint.Sum([]byte(content))
	articleRepo.Create(ctx, &models.Article{
		ID:          "article-cert-1",
		Title:       "Certified",
		Content:     content,
		Fingerprint: fp,
		CreatedAt:   time.Now().UTC(),
	})

	first, err := services.Certificate.Verify(ctx, fp)
	if err != nil {
		t.Fatalf("First verify failed: %v", err)
	}
	if first.CertificateID == "" {
		t.Fatal("First verify should allocate a certificate identifier")
	}

	second, err := services.Certificate.Verify(ctx, fp)
	if err != nil {
		t.Fatalf("Second verify failed: %v", err)
	}
	if second.CertificateID != first.CertificateID {
		t.Errorf("Certificate identifier changed between verifications: %s then %s",
			first.CertificateID, second.CertificateID)
	}
	if articleRepo.SetCertificateCalls != 1 {
		t.Errorf("Allocation should be written once, got %d writes", articleRepo.SetCertificateCalls)
	}
}

func TestVerifyCarriesCurrentTitle(t *testing.T) {
	services, articleRepo, _, _ := newTestServices()
	ctx := context.Background()

	content := "retitled content"
	fp := fingerprint.Sum([]byte(content))
	article := &models.Article{
		ID:          "article-cert-2",
		Title:       "Original Title",
		Content:     content,
		Fingerprint: fp,
		CreatedAt:   time.Now().UTC(),
	}
	articleRepo.Create(ctx, article)

	first, err := services.Certificate.Verify(ctx, fp)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if first.Title != "Original Title" {
		t.Errorf("Title = %q, want %q", first.Title, "Original Title")
	}

	// Title edits propagate to every future rendering; only the
	// identifier is frozen.
	article.Title = "Revised Title"

	second, err := services.Certificate.Verify(ctx, fp)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if second.Title != "Revised Title" {
		t.Errorf("Title = %q, want the current %q", second.Title, "Revised Title")
	}
	if second.CertificateID != first.CertificateID {
		t.Error("Identifier must survive title edits")
	}
}

func TestVerifyLostAllocationRace(t *testing.T) {
	services, articleRepo, _, _ := newTestServices()
	ctx := context.Background()

	content := "raced content"
	fp := fingerprint.Sum([]byte(content))
	article := &models.Article{
		ID:          "article-cert-3",
		Title:       "Raced",
		Content:     content,
		Fingerprint: fp,
		CreatedAt:   time.Now().UTC(),
	}
	articleRepo.Create(ctx, article)

	// A concurrent verification wins the conditional write between our
	// read and our allocation attempt.
	winnerID := "winner-certificate-id"
	articleRepo.SetCertFunc = func(ctx context.Context, id, certID string) (bool, error) {
		article.CertificateID = &winnerID
		return false, nil
	}

	cert, err := services.Certificate.Verify(ctx, fp)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if cert.CertificateID != winnerID {
		t.Errorf("Loser must adopt the winner's identifier, got %s", cert.CertificateID)
	}
}

func TestVerifyAndRender(t *testing.T) {
	services, articleRepo, _, _ := newTestServices()
	ctx := context.Background()

	content := "downloadable content"
	fp := fingerprint.Sum([]byte(content))
	articleRepo.Create(ctx, &models.Article{
		ID:          "article-cert-4",
		Title:       "Download Me",
		Content:     content,
		Fingerprint: fp,
		CreatedAt:   time.Now().UTC(),
	})

	doc, filename, mediaType, err := services.Certificate.VerifyAndRender(ctx, fp)
	if err != nil {
		t.Fatalf("VerifyAndRender failed: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Error("Rendered document is not a PDF")
	}
	if filename != fmt.Sprintf("certificate_%s.pdf", "article-cert-4") {
		t.Errorf("Unexpected filename %q", filename)
	}
	if mediaType != "application/pdf" {
		t.Errorf("Unexpected media type %q", mediaType)
	}
}
