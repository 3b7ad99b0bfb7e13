package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const userColumns = `id, name, phone, password_hash, wallet_balance, eligible_amount, is_admin, created_at`

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Phone, &user.PasswordHash,
		&user.WalletBalance, &user.EligibleAmount, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't scan user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, phone))
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// FindByIDForUpdate locks the user row for the duration of the
// surrounding transaction. Used by settlement to serialize wallet
// debits.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, phone, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, wallet_balance, eligible_amount, is_admin, created_at
	`
	err := r.db.QueryRow(ctx, query, user.Name, user.Phone, user.PasswordHash).
		Scan(&user.ID, &user.WalletBalance, &user.EligibleAmount, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateWalletBalance(ctx context.Context, userID int, balance decimal.Decimal) error {
	query := `UPDATE users SET wallet_balance = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, balance, userID); err != nil {
		zap.L().Error("can't update wallet balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateEligibleAmount(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `UPDATE users SET eligible_amount = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, amount, userID); err != nil {
		zap.L().Error("can't update eligible amount", zap.Error(err))
		return err
	}
	return nil
}
