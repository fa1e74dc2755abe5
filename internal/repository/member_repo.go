package repository

import (
	"context"
	"database/sql"

	"github.com/authormark-api/internal/apperr"
	"github.com/authormark-api/internal/database"
	"github.com/authormark-api/internal/models"
)

// memberRepo is the concrete implementation of MemberRepository
type memberRepo struct {
	db *database.DB
}

// NewMemberRepo creates a new member repository
func NewMemberRepo(db *database.DB) MemberRepository {
	return &memberRepo{db: db}
}

// Create inserts a new member
func (r *memberRepo) Create(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (id, name, balance, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID, member.Name, member.Balance, member.CreatedAt,
	)
	if err != nil {
		return apperr.StoreUnavailable("member.create", err)
	}
	return nil
}

// GetByID retrieves a member by ID; (nil, nil) on a miss
func (r *memberRepo) GetByID(ctx context.Context, id string) (*models.Member, error) {
	query := `SELECT id, name, balance, created_at FROM members WHERE id = $1`

	var member models.Member
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID, &member.Name, &member.Balance, &member.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.StoreUnavailable("member.get_by_id", err)
	}
	return &member, nil
}

// DeductBalance subtracts amount in a single conditional statement, so two
// concurrent spends by the same member cannot both pass the balance check
// against a stale snapshot. Returns false without writing anything when
// the balance does not cover the amount.
func (r *memberRepo) DeductBalance(ctx context.Context, id string, amount float64) (bool, error) {
	query := `
		UPDATE members
		SET balance = ROUND(balance - $2, 2)
		WHERE id = $1 AND balance >= $2
	`
	res, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return false, apperr.StoreUnavailable("member.deduct_balance", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperr.StoreUnavailable("member.deduct_balance", err)
	}
	return n == 1, nil
}
