package settingsrepo

import (
	"context"
	"encoding/json"
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

// Get loads the settings singleton: term catalog, overdue rule and
// lending limits.
func (r *Repository) Get(ctx context.Context) (*domain.LoanSettings, error) {
	query := `
		SELECT id, overdue_kind, overdue_value, eligible_amount, min_amount,
			notice, bank_name, account_name, account_number, terms, updated_at
		FROM loan_settings
		ORDER BY id
		LIMIT 1
	`
	var s domain.LoanSettings
	var terms []byte
	err := r.db.QueryRow(ctx, query).Scan(&s.ID, &s.OverdueRule.Kind, &s.OverdueRule.Value,
		&s.EligibleAmount, &s.MinAmount, &s.Notice, &s.BankName, &s.AccountName,
		&s.AccountNumber, &terms, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't load loan settings", zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(terms, &s.Terms); err != nil {
		zap.L().Error("can't decode loan terms", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Update(ctx context.Context, s *domain.LoanSettings) (*domain.LoanSettings, error) {
	terms, err := json.Marshal(s.Terms)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE loan_settings
		SET overdue_kind = $1, overdue_value = $2, eligible_amount = $3,
			min_amount = $4, notice = $5, bank_name = $6, account_name = $7,
			account_number = $8, terms = $9, updated_at = now()
		WHERE id = $10
		RETURNING updated_at
	`
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, s.OverdueRule.Kind, s.OverdueRule.Value,
			s.EligibleAmount, s.MinAmount, s.Notice, s.BankName, s.AccountName,
			s.AccountNumber, terms, s.ID).Scan(&s.UpdatedAt)
		if err != nil {
			zap.L().Error("can't update loan settings", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
