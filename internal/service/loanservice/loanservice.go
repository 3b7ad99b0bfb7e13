package loanservice

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/quikcash/loanledger/internal/accrual"
	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/pg"
	"github.com/quikcash/loanledger/internal/service/settlementservice"
	"github.com/quikcash/loanledger/pkg/apperrors"
	"github.com/quikcash/loanledger/pkg/loancode"
)

const openLoanConstraint = "loan_transactions_one_open_per_user"

type LoanRepo interface {
	Create(ctx context.Context, loan *domain.LoanTransaction) (*domain.LoanTransaction, error)
	FindByID(ctx context.Context, id int) (*domain.LoanTransaction, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.LoanTransaction, error)
	FindOpenByUserID(ctx context.Context, userID int) (*domain.LoanTransaction, error)
	FindLatestByUserID(ctx context.Context, userID int) (*domain.LoanTransaction, error)
	Update(ctx context.Context, loan *domain.LoanTransaction) error
	List(ctx context.Context, status string, limit, offset int) ([]domain.LoanTransaction, int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	UpdateEligibleAmount(ctx context.Context, userID int, amount decimal.Decimal) error
}

type ProfileRepo interface {
	Create(ctx context.Context, profile *domain.LoanProfile) (*domain.LoanProfile, error)
	FindByUserID(ctx context.Context, userID int) (*domain.LoanProfile, error)
}

type RepaymentRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Repayment, error)
	List(ctx context.Context, limit, offset int) ([]domain.Repayment, int, error)
}

type SettingsProvider interface {
	Snapshot(ctx context.Context) (*domain.LoanSettings, error)
}

type Settlement interface {
	Settle(ctx context.Context, req settlementservice.SettleRequest) (*settlementservice.SettleResult, error)
	Refresh(ctx context.Context, loanID int) (*domain.LoanTransaction, error)
}

type Uploads interface {
	Save(data []byte, ext string) (string, error)
}

type Service struct {
	loanRepo      LoanRepo
	userRepo      UserRepo
	profileRepo   ProfileRepo
	repaymentRepo RepaymentRepo
	settings      SettingsProvider
	settlement    Settlement
	uploads       Uploads
	txManager     pg.TXManager
}

func New(loanRepo LoanRepo, userRepo UserRepo, profileRepo ProfileRepo, repaymentRepo RepaymentRepo,
	settings SettingsProvider, settlement Settlement, uploads Uploads, txManager pg.TXManager) *Service {
	return &Service{
		loanRepo:      loanRepo,
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		repaymentRepo: repaymentRepo,
		settings:      settings,
		settlement:    settlement,
		uploads:       uploads,
		txManager:     txManager,
	}
}

type Preview struct {
	Principal decimal.Decimal
	Interest  decimal.Decimal
	TotalOwed decimal.Decimal
	TermDays  int
	DueDate   time.Time
}

// PreviewLoan quotes a loan for an amount and duration without creating
// anything.
func (s *Service) PreviewLoan(ctx context.Context, userID int, amount decimal.Decimal, days int) (*Preview, error) {
	settings, err := s.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	term := settings.FindTerm(days)
	if term == nil {
		return nil, apperrors.Validation("no loan term offered for %d days", days)
	}
	if err := s.checkAmount(ctx, userID, amount, settings); err != nil {
		return nil, err
	}

	interest := accrual.Interest(amount, *term)
	return &Preview{
		Principal: amount,
		Interest:  interest,
		TotalOwed: amount.Add(interest),
		TermDays:  days,
		DueDate:   time.Now().AddDate(0, 0, days),
	}, nil
}

// Initiate creates a pending loan. One open loan per user is enforced
// both here and by a partial unique index, so two concurrent requests
// cannot both succeed.
func (s *Service) Initiate(ctx context.Context, userID int, amount decimal.Decimal, days int) (*domain.LoanTransaction, error) {
	settings, err := s.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	term := settings.FindTerm(days)
	if term == nil {
		return nil, apperrors.Validation("no loan term offered for %d days", days)
	}

	var loan *domain.LoanTransaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			return apperrors.Storage(err)
		}
		if profile == nil {
			return apperrors.InvalidState("submit a loan application form first")
		}

		open, err := s.loanRepo.FindOpenByUserID(ctx, userID)
		if err != nil {
			return apperrors.Storage(err)
		}
		if open != nil {
			return apperrors.InvalidState("loan %s is still %s", open.Code, open.Status)
		}

		if err := s.checkAmount(ctx, userID, amount, settings); err != nil {
			return err
		}

		code, err := loancode.New()
		if err != nil {
			return apperrors.Storage(err)
		}

		now := time.Now()
		interest := accrual.Interest(amount, *term)
		loan, err = s.loanRepo.Create(ctx, &domain.LoanTransaction{
			UserID:          userID,
			Code:            code,
			Principal:       amount,
			Interest:        interest,
			TotalOwed:       amount.Add(interest),
			Outstanding:     amount.Add(interest),
			TermDays:        days,
			DueDate:         now.AddDate(0, 0, days),
			OverdueInterest: decimal.Zero,
			Status:          domain.LoanStatusPending,
			IssuedAt:        now,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == openLoanConstraint {
				return apperrors.InvalidState("you already have an active loan")
			}
			return apperrors.Storage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("loan initiated",
		zap.String("code", loan.Code),
		zap.Int("userID", userID),
		zap.String("principal", amount.String()))
	return loan, nil
}

type Status struct {
	HasCompletedForm bool
	Loan             *domain.LoanTransaction
}

// Status reports the user's application state and latest loan. Reading
// the status of a settleable loan refreshes its accrual and, once
// overdue, auto-debits whatever the wallet can cover.
func (s *Service) Status(ctx context.Context, userID int) (*Status, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	loan, err := s.loanRepo.FindLatestByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if loan != nil && loan.Settleable() {
		loan, err = s.refreshAndAutoDebit(ctx, loan.ID)
		if err != nil {
			return nil, err
		}
	}

	return &Status{
		HasCompletedForm: profile != nil,
		Loan:             loan,
	}, nil
}

// refreshAndAutoDebit runs accrual and the overdue auto-debit in one
// transaction, so the balance read and the debit see the same rows.
func (s *Service) refreshAndAutoDebit(ctx context.Context, loanID int) (*domain.LoanTransaction, error) {
	var out *domain.LoanTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, err := s.settlement.Refresh(ctx, loanID)
		if err != nil {
			return err
		}
		out = loan
		if loan.Status != domain.LoanStatusOverdue {
			return nil
		}

		user, err := s.userRepo.FindByIDForUpdate(ctx, loan.UserID)
		if err != nil {
			return apperrors.Storage(err)
		}
		if user == nil {
			return apperrors.NotFound("user %d not found", loan.UserID)
		}

		debit := loan.Outstanding
		if user.WalletBalance.LessThan(debit) {
			debit = user.WalletBalance
		}
		if !debit.IsPositive() {
			return nil
		}

		result, err := s.settlement.Settle(ctx, settlementservice.SettleRequest{
			LoanID:     loan.ID,
			PayerID:    loan.UserID,
			Amount:     debit,
			Method:     domain.RepaymentMethodAutoDebit,
			FromWallet: true,
		})
		if err != nil {
			return err
		}
		out = result.Loan
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Repay settles a manual wallet payment against the user's active loan.
func (s *Service) Repay(ctx context.Context, userID int, amount decimal.Decimal) (*domain.LoanTransaction, error) {
	loan, err := s.loanRepo.FindOpenByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if loan == nil {
		return nil, apperrors.NotFound("no active loan to pay against")
	}
	if !loan.Settleable() {
		return nil, apperrors.InvalidState("loan %s is %s and cannot accept payments", loan.Code, loan.Status)
	}

	result, err := s.settlement.Settle(ctx, settlementservice.SettleRequest{
		LoanID:     loan.ID,
		PayerID:    userID,
		Amount:     amount,
		Method:     domain.RepaymentMethodManual,
		FromWallet: true,
	})
	if err != nil {
		return nil, err
	}
	return result.Loan, nil
}

type Details struct {
	Loan       *domain.LoanTransaction
	Repayments []domain.Repayment
}

// Details returns the latest loan, refreshed, with the repayment trail.
func (s *Service) Details(ctx context.Context, userID int) (*Details, error) {
	loan, err := s.loanRepo.FindLatestByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if loan == nil {
		return nil, apperrors.NotFound("no loan on record")
	}
	if loan.Settleable() {
		loan, err = s.settlement.Refresh(ctx, loan.ID)
		if err != nil {
			return nil, err
		}
	}

	repayments, err := s.repaymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &Details{Loan: loan, Repayments: repayments}, nil
}

func (s *Service) History(ctx context.Context, userID int) ([]domain.Repayment, error) {
	repayments, err := s.repaymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return repayments, nil
}

// Wallet returns the user's balance and lending limit.
func (s *Service) Wallet(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user %d not found", userID)
	}
	return user, nil
}

type ApplyRequest struct {
	Name       string
	Phone      string
	NIN        string
	DOB        string
	Address    string
	Occupation string

	BankName      string
	AccountNumber string
	AccountName   string

	Guarantor1Name         string
	Guarantor1Phone        string
	Guarantor1Relationship string

	Guarantor2Name         string
	Guarantor2Phone        string
	Guarantor2Relationship string

	PhotoBase64   string
	IDImageBase64 string
}

// Apply stores the loan application form. Images arrive base64-encoded
// and are written to the upload store; only opaque references persist.
func (s *Service) Apply(ctx context.Context, userID int, req ApplyRequest) (*domain.LoanProfile, error) {
	existing, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if existing != nil {
		return nil, apperrors.InvalidState("application form already submitted")
	}

	photoRef, err := s.saveImage(req.PhotoBase64)
	if err != nil {
		return nil, err
	}
	idImageRef, err := s.saveImage(req.IDImageBase64)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Create(ctx, &domain.LoanProfile{
		UserID:                 userID,
		Name:                   req.Name,
		Phone:                  req.Phone,
		NIN:                    req.NIN,
		DOB:                    req.DOB,
		Address:                req.Address,
		Occupation:             req.Occupation,
		BankName:               req.BankName,
		AccountNumber:          req.AccountNumber,
		AccountName:            req.AccountName,
		Guarantor1Name:         req.Guarantor1Name,
		Guarantor1Phone:        req.Guarantor1Phone,
		Guarantor1Relationship: req.Guarantor1Relationship,
		Guarantor2Name:         req.Guarantor2Name,
		Guarantor2Phone:        req.Guarantor2Phone,
		Guarantor2Relationship: req.Guarantor2Relationship,
		PhotoRef:               photoRef,
		IDImageRef:             idImageRef,
		Status:                 domain.ProfileStatusPending,
	})
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	zap.L().Info("loan application submitted", zap.Int("userID", userID))
	return profile, nil
}

func (s *Service) saveImage(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", apperrors.Validation("image is not valid base64")
	}
	ref, err := s.uploads.Save(data, ".jpg")
	if err != nil {
		zap.L().Error("can't store uploaded image", zap.Error(err))
		return "", apperrors.Storage(err)
	}
	return ref, nil
}

// Approve moves a pending loan to running.
func (s *Service) Approve(ctx context.Context, loanID int) (*domain.LoanTransaction, error) {
	loan, err := s.transition(ctx, loanID, func(loan *domain.LoanTransaction) error {
		if loan.Status != domain.LoanStatusPending {
			return apperrors.InvalidState("loan %s is %s, only pending loans can be approved", loan.Code, loan.Status)
		}
		loan.Status = domain.LoanStatusRunning
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("loan approved", zap.String("code", loan.Code))
	return loan, nil
}

// Decline refuses a pending loan.
func (s *Service) Decline(ctx context.Context, loanID int, reason string) (*domain.LoanTransaction, error) {
	if reason == "" {
		reason = "No reason provided"
	}
	loan, err := s.transition(ctx, loanID, func(loan *domain.LoanTransaction) error {
		if loan.Status != domain.LoanStatusPending {
			return apperrors.InvalidState("loan %s is %s, only pending loans can be declined", loan.Code, loan.Status)
		}
		loan.Status = domain.LoanStatusDeclined
		loan.DeclineReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("loan declined", zap.String("code", loan.Code), zap.String("reason", reason))
	return loan, nil
}

func (s *Service) transition(ctx context.Context, loanID int, mutate func(*domain.LoanTransaction) error) (*domain.LoanTransaction, error) {
	var loan *domain.LoanTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		loan, err = s.loanRepo.FindByIDForUpdate(ctx, loanID)
		if err != nil {
			return apperrors.Storage(err)
		}
		if loan == nil {
			return apperrors.NotFound("loan %d not found", loanID)
		}
		if err := mutate(loan); err != nil {
			return err
		}
		if err := s.loanRepo.Update(ctx, loan); err != nil {
			return apperrors.Storage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

func (s *Service) GetLoan(ctx context.Context, loanID int) (*domain.LoanTransaction, error) {
	loan, err := s.loanRepo.FindByID(ctx, loanID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if loan == nil {
		return nil, apperrors.NotFound("loan %d not found", loanID)
	}
	return loan, nil
}

func (s *Service) ListLoans(ctx context.Context, status string, limit, offset int) ([]domain.LoanTransaction, int, error) {
	loans, total, err := s.loanRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Storage(err)
	}
	return loans, total, nil
}

func (s *Service) ListRepayments(ctx context.Context, limit, offset int) ([]domain.Repayment, int, error) {
	repayments, total, err := s.repaymentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Storage(err)
	}
	return repayments, total, nil
}

// SetEligibleAmount adjusts how much a single user may borrow.
func (s *Service) SetEligibleAmount(ctx context.Context, userID int, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.Validation("eligible amount must not be negative")
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return apperrors.Storage(err)
	}
	if user == nil {
		return apperrors.NotFound("user %d not found", userID)
	}
	if err := s.userRepo.UpdateEligibleAmount(ctx, userID, amount); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (s *Service) checkAmount(ctx context.Context, userID int, amount decimal.Decimal, settings *domain.LoanSettings) error {
	if !amount.IsPositive() {
		return apperrors.Validation("loan amount must be positive")
	}
	if amount.LessThan(settings.MinAmount) {
		return apperrors.Validation("minimum loan amount is %s", settings.MinAmount.String())
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return apperrors.Storage(err)
	}
	if user == nil {
		return apperrors.NotFound("user %d not found", userID)
	}
	if amount.GreaterThan(user.EligibleAmount) {
		return apperrors.ExceedsBalance("amount exceeds your eligible limit of %s", user.EligibleAmount.String())
	}
	return nil
}
