// Package certificate renders authorship certificates into downloadable
// documents. Rendering is a pure function of the certificate view; it
// never touches the store.
package certificate

import (
	"bytes"
	"fmt"
	"time"

	"github.com/authormark-api/internal/models"
	"github.com/jung-kurt/gofpdf"
)

// Heading is the document title line
const Heading = "Certificate of Authorship"

// MediaType is the content type of rendered certificates
const MediaType = "application/pdf"

// Lines returns the textual content of a certificate document in layout
// order. Render embeds exactly these lines, so the identifiers printed on
// the document can be recovered by reading them back.
func Lines(cert *models.Certificate) []string {
	return []string{
		Heading,
		fmt.Sprintf("Article: %s", cert.Title),
		fmt.Sprintf("Article ID: %s", cert.ArticleID),
		fmt.Sprintf("Certificate ID: %s", cert.CertificateID),
		fmt.Sprintf("Issued: %s", cert.IssuedAt.Format(time.RFC3339)),
		cert.Attestation,
	}
}

// Filename returns the suggested attachment filename for a certificate
func Filename(cert *models.Certificate) string {
	return fmt.Sprintf("certificate_%s.pdf", cert.ArticleID)
}

// Render lays the certificate out as a single-page PDF and returns the
// document bytes together with a suggested filename and media type.
func Render(cert *models.Certificate) ([]byte, string, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Pin document metadata to the issuance time so identical views render
	// to identical bytes.
	pdf.SetCreationDate(cert.IssuedAt)
	pdf.AddPage()

	lines := Lines(cert)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 16, lines[0], "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range lines[1 : len(lines)-1] {
		pdf.CellFormat(0, 9, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.MultiCell(0, 7, lines[len(lines)-1], "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", fmt.Errorf("failed to render certificate: %w", err)
	}

	return buf.Bytes(), Filename(cert), MediaType, nil
}
