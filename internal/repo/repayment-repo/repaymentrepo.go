package repaymentrepo

import (
	"context"

	"github.com/shopspring/decimal"
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

func (r *Repository) Create(ctx context.Context, repayment *domain.Repayment) (*domain.Repayment, error) {
	query := `
		INSERT INTO repayments (user_id, loan_id, amount, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, repayment.UserID, repayment.LoanID,
		repayment.Amount, repayment.Method, repayment.Status, repayment.CreatedAt).
		Scan(&repayment.ID)
	if err != nil {
		zap.L().Error("can't save repayment", zap.Error(err))
		return nil, err
	}
	return repayment, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE repayments SET status = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("can't update repayment status", zap.Error(err))
		return err
	}
	return nil
}

// SumSuccessfulByLoanID totals the successful repayment trail for a
// loan. Outstanding balance is always recomputed from this sum.
func (r *Repository) SumSuccessfulByLoanID(ctx context.Context, loanID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM repayments
		WHERE loan_id = $1 AND status = 'success'
	`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, loanID).Scan(&sum); err != nil {
		zap.L().Error("can't sum repayments", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Repayment, error) {
	query := `
		SELECT id, user_id, loan_id, amount, method, status, created_at
		FROM repayments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get repayments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var repayments []domain.Repayment
	for rows.Next() {
		var rp domain.Repayment
		err := rows.Scan(&rp.ID, &rp.UserID, &rp.LoanID, &rp.Amount, &rp.Method, &rp.Status, &rp.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan repayment row", zap.Error(err))
			return nil, err
		}
		repayments = append(repayments, rp)
	}
	return repayments, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Repayment, int, error) {
	query := `
		SELECT id, user_id, loan_id, amount, method, status, created_at
		FROM repayments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't list repayments", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var repayments []domain.Repayment
	for rows.Next() {
		var rp domain.Repayment
		err := rows.Scan(&rp.ID, &rp.UserID, &rp.LoanID, &rp.Amount, &rp.Method, &rp.Status, &rp.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan repayment row", zap.Error(err))
			return nil, 0, err
		}
		repayments = append(repayments, rp)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM repayments`).Scan(&total); err != nil {
		zap.L().Error("can't count repayments", zap.Error(err))
		return nil, 0, err
	}

	return repayments, total, nil
}
