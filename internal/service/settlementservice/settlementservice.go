package settlementservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/quikcash/loanledger/internal/accrual"
	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/pg"
	"github.com/quikcash/loanledger/pkg/apperrors"
)

type LoanRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.LoanTransaction, error)
	Update(ctx context.Context, loan *domain.LoanTransaction) error
}

type UserRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	UpdateWalletBalance(ctx context.Context, userID int, balance decimal.Decimal) error
}

type RepaymentRepo interface {
	Create(ctx context.Context, repayment *domain.Repayment) (*domain.Repayment, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	SumSuccessfulByLoanID(ctx context.Context, loanID int) (decimal.Decimal, error)
}

type SettingsProvider interface {
	Snapshot(ctx context.Context) (*domain.LoanSettings, error)
}

// Service applies money movements against loans. Every entry point runs
// in a single transaction holding row locks on the loan and, when the
// wallet funds the payment, on the payer. Accrual is refreshed against
// the locked row before any amount is validated, so a payment is always
// judged against current numbers.
type Service struct {
	loanRepo      LoanRepo
	userRepo      UserRepo
	repaymentRepo RepaymentRepo
	settings      SettingsProvider
	txManager     pg.TXManager
}

func New(loanRepo LoanRepo, userRepo UserRepo, repaymentRepo RepaymentRepo, settings SettingsProvider, txManager pg.TXManager) *Service {
	return &Service{
		loanRepo:      loanRepo,
		userRepo:      userRepo,
		repaymentRepo: repaymentRepo,
		settings:      settings,
		txManager:     txManager,
	}
}

// SettleRequest describes one payment to apply.
//
// FromWallet decides the funding source: true debits the payer's wallet
// and fails on insufficient funds, false records externally funded money
// (an approved bank transfer) without touching the wallet.
//
// RepaymentID, when set, finalizes an existing pending repayment row
// instead of inserting a new one. Claim approval uses this so the
// repayment created at claim submission is the one that settles.
type SettleRequest struct {
	LoanID      int
	PayerID     int
	Amount      decimal.Decimal
	Method      string
	FromWallet  bool
	RepaymentID int
}

type SettleResult struct {
	Loan      *domain.LoanTransaction
	Repayment *domain.Repayment
}

func (s *Service) Settle(ctx context.Context, req SettleRequest) (*SettleResult, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.Validation("payment amount must be positive")
	}

	var result SettleResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, err := s.lockAndRefresh(ctx, req.LoanID)
		if err != nil {
			return err
		}
		if loan.UserID != req.PayerID {
			return apperrors.NotFound("loan %d not found", req.LoanID)
		}
		if !loan.Settleable() {
			return apperrors.InvalidState("loan %s is %s and cannot accept payments", loan.Code, loan.Status)
		}
		if req.Amount.GreaterThan(loan.Outstanding) {
			return apperrors.ExceedsBalance("payment of %s exceeds outstanding balance %s",
				req.Amount.String(), loan.Outstanding.String())
		}

		if req.FromWallet {
			if err := s.debitWallet(ctx, req.PayerID, req.Amount); err != nil {
				return err
			}
		}

		now := time.Now()
		if req.RepaymentID > 0 {
			if err := s.repaymentRepo.UpdateStatus(ctx, req.RepaymentID, domain.RepaymentStatusSuccess); err != nil {
				return apperrors.Storage(err)
			}
			result.Repayment = &domain.Repayment{
				ID:     req.RepaymentID,
				UserID: req.PayerID,
				LoanID: loan.ID,
				Amount: req.Amount,
				Method: req.Method,
				Status: domain.RepaymentStatusSuccess,
			}
		} else {
			repayment, err := s.repaymentRepo.Create(ctx, &domain.Repayment{
				UserID:    req.PayerID,
				LoanID:    loan.ID,
				Amount:    req.Amount,
				Method:    req.Method,
				Status:    domain.RepaymentStatusSuccess,
				CreatedAt: now,
			})
			if err != nil {
				return apperrors.Storage(err)
			}
			result.Repayment = repayment
		}

		loan.Outstanding = loan.Outstanding.Sub(req.Amount)
		if loan.Outstanding.IsZero() {
			loan.Status = domain.LoanStatusCleared
			loan.ClearedAt = &now
		}
		if err := s.loanRepo.Update(ctx, loan); err != nil {
			return apperrors.Storage(err)
		}

		result.Loan = loan
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("loan payment settled",
		zap.String("code", result.Loan.Code),
		zap.String("amount", req.Amount.String()),
		zap.String("method", req.Method),
		zap.String("status", result.Loan.Status))
	return &result, nil
}

// Refresh brings a loan's overdue numbers up to date and persists them
// if they moved. It returns the loan as of now, holding its row lock
// until the surrounding transaction ends.
func (s *Service) Refresh(ctx context.Context, loanID int) (*domain.LoanTransaction, error) {
	var loan *domain.LoanTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		loan, err = s.lockAndRefresh(ctx, loanID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// lockAndRefresh locks the loan row, recomputes overdue interest and
// outstanding from the repayment trail, and persists any change. Loans
// in a terminal or pending state are returned as stored.
func (s *Service) lockAndRefresh(ctx context.Context, loanID int) (*domain.LoanTransaction, error) {
	loan, err := s.loanRepo.FindByIDForUpdate(ctx, loanID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if loan == nil {
		return nil, apperrors.NotFound("loan %d not found", loanID)
	}
	if !loan.Settleable() {
		return loan, nil
	}

	settings, err := s.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	res := accrual.Accrue(loan, settings.OverdueRule, time.Now())

	paid, err := s.repaymentRepo.SumSuccessfulByLoanID(ctx, loan.ID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	outstanding := accrual.Outstanding(loan, res.OverdueInterest, paid)

	changed := res.OverdueDays != loan.OverdueDays ||
		!res.OverdueInterest.Equal(loan.OverdueInterest) ||
		!outstanding.Equal(loan.Outstanding)

	loan.OverdueDays = res.OverdueDays
	loan.OverdueInterest = res.OverdueInterest
	loan.Outstanding = outstanding
	if res.OverdueDays > 0 && loan.Status == domain.LoanStatusRunning {
		loan.Status = domain.LoanStatusOverdue
		changed = true
	}

	if changed {
		if err := s.loanRepo.Update(ctx, loan); err != nil {
			return nil, apperrors.Storage(err)
		}
	}
	return loan, nil
}

func (s *Service) debitWallet(ctx context.Context, userID int, amount decimal.Decimal) error {
	user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
	if err != nil {
		return apperrors.Storage(err)
	}
	if user == nil {
		return apperrors.NotFound("user %d not found", userID)
	}
	if user.WalletBalance.LessThan(amount) {
		return apperrors.InsufficientFunds("wallet balance %s cannot cover payment of %s",
			user.WalletBalance.String(), amount.String())
	}
	if err := s.userRepo.UpdateWalletBalance(ctx, userID, user.WalletBalance.Sub(amount)); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}
