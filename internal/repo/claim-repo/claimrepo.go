package claimrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const claimColumns = `id, user_id, loan_id, repayment_id, sender_name, amount, note,
		status, created_at, updated_at`

func scanClaim(row pgx.Row) (*domain.ManualPaymentClaim, error) {
	var claim domain.ManualPaymentClaim
	err := row.Scan(&claim.ID, &claim.UserID, &claim.LoanID, &claim.RepaymentID,
		&claim.SenderName, &claim.Amount, &claim.Note, &claim.Status,
		&claim.CreatedAt, &claim.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't scan claim", zap.Error(err))
		return nil, err
	}
	return &claim, nil
}

func (r *Repository) Create(ctx context.Context, claim *domain.ManualPaymentClaim) (*domain.ManualPaymentClaim, error) {
	query := `
		INSERT INTO manual_payment_claims
			(user_id, loan_id, repayment_id, sender_name, amount, note, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, claim.UserID, claim.LoanID, claim.RepaymentID,
		claim.SenderName, claim.Amount, claim.Note, claim.Status).
		Scan(&claim.ID, &claim.CreatedAt, &claim.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save claim", zap.Error(err))
		return nil, err
	}
	return claim, nil
}

// FindByIDForUpdate locks the claim row so concurrent reviewer actions
// on one claim serialize.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.ManualPaymentClaim, error) {
	query := `SELECT ` + claimColumns + ` FROM manual_payment_claims WHERE id = $1 FOR UPDATE`
	return scanClaim(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE manual_payment_claims SET status = $1, updated_at = $2 WHERE id = $3`
	if _, err := r.db.Exec(ctx, query, status, time.Now(), id); err != nil {
		zap.L().Error("can't update claim status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]domain.ManualPaymentClaim, int, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM manual_payment_claims
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		zap.L().Error("can't list claims", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var claims []domain.ManualPaymentClaim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, 0, err
		}
		claims = append(claims, *claim)
	}

	var total int
	countQuery := `SELECT count(*) FROM manual_payment_claims WHERE ($1 = '' OR status = $1)`
	if err := r.db.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		zap.L().Error("can't count claims", zap.Error(err))
		return nil, 0, err
	}

	return claims, total, nil
}
