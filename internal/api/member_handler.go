package api

import (
	"net/http"

	"github.com/authormark-api/internal/config"
	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *MemberHandler {
	return &MemberHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "member").Logger(),
	}
}

// CreateMember handles POST /v1/members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.StoreTimeout)
	defer cancel()

	var req models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"kind": "validation", "message": "invalid JSON body"},
		})
		return
	}

	member, err := h.services.Member.Create(ctx, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember handles GET /v1/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.StoreTimeout)
	defer cancel()

	member, err := h.services.Member.GetByID(ctx, c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, member)
}
