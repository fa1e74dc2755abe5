package service_test

import (
	"context"
	"testing"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/models"
)

func TestCreateMember(t *testing.T) {
	services, _, _, memberRepo := newTestServices()

	member, err := services.Member.Create(context.Background(), &models.CreateMemberRequest{
		Name:    "Ada",
		Balance: 42.5,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if member.ID == "" {
		t.Error("Member ID should be assigned")
	}
	if memberRepo.Members[member.ID] == nil {
		t.Error("Member should be persisted")
	}
}

func TestCreateMemberValidation(t *testing.T) {
	services, _, _, _ := newTestServices()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.CreateMemberRequest
	}{
		{"missing name", &models.CreateMemberRequest{Balance: 10}},
		{"negative balance", &models.CreateMemberRequest{Name: "Bo", Balance: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.Member.Create(ctx, tt.req)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}
}

func TestGetMemberNotFound(t *testing.T) {
	services, _, _, _ := newTestServices()

	_, err := services.Member.GetByID(context.Background(), "missing-member")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("Expected not_found, got %v", err)
	}
}
