package loanrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const loanColumns = `id, user_id, code, principal, interest, total_owed, outstanding,
		term_days, due_date, overdue_days, overdue_interest, status, decline_reason,
		issued_at, cleared_at`

func scanLoan(row pgx.Row) (*domain.LoanTransaction, error) {
	var loan domain.LoanTransaction
	err := row.Scan(&loan.ID, &loan.UserID, &loan.Code, &loan.Principal, &loan.Interest,
		&loan.TotalOwed, &loan.Outstanding, &loan.TermDays, &loan.DueDate,
		&loan.OverdueDays, &loan.OverdueInterest, &loan.Status, &loan.DeclineReason,
		&loan.IssuedAt, &loan.ClearedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't scan loan", zap.Error(err))
		return nil, err
	}
	return &loan, nil
}

func (r *Repository) Create(ctx context.Context, loan *domain.LoanTransaction) (*domain.LoanTransaction, error) {
	query := `
		INSERT INTO loan_transactions
			(user_id, code, principal, interest, total_owed, outstanding, term_days,
			 due_date, overdue_days, overdue_interest, status, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, loan.UserID, loan.Code, loan.Principal,
			loan.Interest, loan.TotalOwed, loan.Outstanding, loan.TermDays,
			loan.DueDate, loan.OverdueDays, loan.OverdueInterest, loan.Status,
			loan.IssuedAt).Scan(&loan.ID)
		if err != nil {
			zap.L().Error("can't save loan", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.LoanTransaction, error) {
	query := `SELECT ` + loanColumns + ` FROM loan_transactions WHERE id = $1`
	return scanLoan(r.db.QueryRow(ctx, query, id))
}

// FindByIDForUpdate locks the loan row for the duration of the
// surrounding transaction. Settlement holds this lock so concurrent
// repayments against one loan serialize.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.LoanTransaction, error) {
	query := `SELECT ` + loanColumns + ` FROM loan_transactions WHERE id = $1 FOR UPDATE`
	return scanLoan(r.db.QueryRow(ctx, query, id))
}

// FindOpenByUserID returns the user's loan still in progress, if any.
func (r *Repository) FindOpenByUserID(ctx context.Context, userID int) (*domain.LoanTransaction, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loan_transactions
		WHERE user_id = $1 AND status IN ('pending', 'running', 'overdue')
	`
	return scanLoan(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) FindLatestByUserID(ctx context.Context, userID int) (*domain.LoanTransaction, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loan_transactions
		WHERE user_id = $1
		ORDER BY issued_at DESC
		LIMIT 1
	`
	return scanLoan(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) Update(ctx context.Context, loan *domain.LoanTransaction) error {
	query := `
		UPDATE loan_transactions
		SET outstanding = $1, overdue_days = $2, overdue_interest = $3,
			status = $4, decline_reason = $5, cleared_at = $6
		WHERE id = $7
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, loan.Outstanding, loan.OverdueDays,
			loan.OverdueInterest, loan.Status, loan.DeclineReason, loan.ClearedAt, loan.ID)
		if err != nil {
			zap.L().Error("can't update loan", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// FindOpenIDs lists loans the overdue sweep should visit.
func (r *Repository) FindOpenIDs(ctx context.Context, limit uint32) ([]int, error) {
	query := `
		SELECT id
		FROM loan_transactions
		WHERE status IN ('running', 'overdue')
		ORDER BY due_date ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get loans for sweep", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan loan id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]domain.LoanTransaction, int, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loan_transactions
		WHERE ($1 = '' OR status = $1)
		ORDER BY issued_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		zap.L().Error("can't list loans", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var loans []domain.LoanTransaction
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, 0, err
		}
		loans = append(loans, *loan)
	}

	var total int
	countQuery := `SELECT count(*) FROM loan_transactions WHERE ($1 = '' OR status = $1)`
	if err := r.db.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		zap.L().Error("can't count loans", zap.Error(err))
		return nil, 0, err
	}

	return loans, total, nil
}
