package service

import (
	"context"
	"time"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/models"
	"github.com/authormark-api/internal/repository"
	"github.com/authormark-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memberService is the concrete implementation of MemberService
type memberService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newMemberService(repos *repository.Repositories, log zerolog.Logger) MemberService {
	return &memberService{
		repos: repos,
		log:   log.With().Str("service", "member").Logger(),
	}
}

// Create registers a member with an opening point balance
func (s *memberService) Create(ctx context.Context, req *models.CreateMemberRequest) (*models.Member, error) {
	if err := validation.MemberCreation(req); err != nil {
		return nil, err
	}

	member := &models.Member{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Balance:   req.Balance,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repos.Member.Create(ctx, member); err != nil {
		return nil, err
	}

	s.log.Info().Str("member_id", member.ID).Msg("Member registered")
	return member, nil
}

// GetByID retrieves a member, reporting a miss as not_found
func (s *memberService) GetByID(ctx context.Context, id string) (*models.Member, error) {
	if id == "" {
		return nil, apperr.Validation("member.get", "member id is required")
	}
	member, err := s.repos.Member.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperr.New("member.get", apperr.KindNotFound, "member not found")
	}
	return member, nil
}
