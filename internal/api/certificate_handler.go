package api

import (
	"fmt"
	"net/http"

	"github.com/authormark-api/internal/config"
	"github.com/authormark-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CertificateHandler handles certificate verification endpoints
type CertificateHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewCertificateHandler creates a new CertificateHandler
func NewCertificateHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *CertificateHandler {
	return &CertificateHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "certificate").Logger(),
	}
}

// VerifyCertificate handles GET /v1/certificates/:fingerprint
func (h *CertificateHandler) VerifyCertificate(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.StoreTimeout)
	defer cancel()

	cert, err := h.services.Certificate.Verify(ctx, c.Param("fingerprint"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, cert)
}

// DownloadCertificate handles GET /v1/certificates/:fingerprint/download,
// returning the rendered document as an attachment
func (h *CertificateHandler) DownloadCertificate(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.StoreTimeout)
	defer cancel()

	doc, filename, mediaType, err := h.services.Certificate.VerifyAndRender(ctx, c.Param("fingerprint"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mediaType, doc)
}
