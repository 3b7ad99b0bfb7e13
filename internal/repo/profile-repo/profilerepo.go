package profilerepo

import (
	"context"
	"errors"

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

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.LoanProfile, error) {
	query := `
		SELECT id, user_id, name, phone, nin, dob, address, occupation,
			bank_name, account_number, account_name,
			guarantor1_name, guarantor1_phone, guarantor1_relationship,
			guarantor2_name, guarantor2_phone, guarantor2_relationship,
			photo_ref, id_image_ref, status, created_at
		FROM loan_profiles
		WHERE user_id = $1
	`
	var p domain.LoanProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.Name, &p.Phone,
		&p.NIN, &p.DOB, &p.Address, &p.Occupation,
		&p.BankName, &p.AccountNumber, &p.AccountName,
		&p.Guarantor1Name, &p.Guarantor1Phone, &p.Guarantor1Relationship,
		&p.Guarantor2Name, &p.Guarantor2Phone, &p.Guarantor2Relationship,
		&p.PhotoRef, &p.IDImageRef, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find loan profile", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.LoanProfile) (*domain.LoanProfile, error) {
	query := `
		INSERT INTO loan_profiles
			(user_id, name, phone, nin, dob, address, occupation,
			 bank_name, account_number, account_name,
			 guarantor1_name, guarantor1_phone, guarantor1_relationship,
			 guarantor2_name, guarantor2_phone, guarantor2_relationship,
			 photo_ref, id_image_ref, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, p.UserID, p.Name, p.Phone, p.NIN, p.DOB,
		p.Address, p.Occupation, p.BankName, p.AccountNumber, p.AccountName,
		p.Guarantor1Name, p.Guarantor1Phone, p.Guarantor1Relationship,
		p.Guarantor2Name, p.Guarantor2Phone, p.Guarantor2Relationship,
		p.PhotoRef, p.IDImageRef, p.Status).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save loan profile", zap.Error(err))
		return nil, err
	}
	return p, nil
}
