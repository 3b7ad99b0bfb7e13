package claimservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/pg"
	"github.com/quikcash/loanledger/internal/service/settlementservice"
	"github.com/quikcash/loanledger/pkg/apperrors"
)

type ClaimRepo interface {
	Create(ctx context.Context, claim *domain.ManualPaymentClaim) (*domain.ManualPaymentClaim, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.ManualPaymentClaim, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	List(ctx context.Context, status string, limit, offset int) ([]domain.ManualPaymentClaim, int, error)
}

type LoanRepo interface {
	FindOpenByUserID(ctx context.Context, userID int) (*domain.LoanTransaction, error)
}

type RepaymentRepo interface {
	Create(ctx context.Context, repayment *domain.Repayment) (*domain.Repayment, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type Settlement interface {
	Settle(ctx context.Context, req settlementservice.SettleRequest) (*settlementservice.SettleResult, error)
}

// Service handles manual payment claims: a user asserts they paid by
// bank transfer, a reviewer approves or rejects. Submission creates a
// pending repayment next to the claim so the ledger always shows the
// asserted money; the pair resolves together on review.
type Service struct {
	claimRepo     ClaimRepo
	loanRepo      LoanRepo
	repaymentRepo RepaymentRepo
	settlement    Settlement
	txManager     pg.TXManager
}

func New(claimRepo ClaimRepo, loanRepo LoanRepo, repaymentRepo RepaymentRepo, settlement Settlement, txManager pg.TXManager) *Service {
	return &Service{
		claimRepo:     claimRepo,
		loanRepo:      loanRepo,
		repaymentRepo: repaymentRepo,
		settlement:    settlement,
		txManager:     txManager,
	}
}

type SubmitRequest struct {
	SenderName string
	Amount     decimal.Decimal
	Note       string
}

// Submit records a claim against the user's active loan.
func (s *Service) Submit(ctx context.Context, userID int, req SubmitRequest) (*domain.ManualPaymentClaim, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.Validation("claimed amount must be positive")
	}

	var claim *domain.ManualPaymentClaim
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, err := s.loanRepo.FindOpenByUserID(ctx, userID)
		if err != nil {
			return apperrors.Storage(err)
		}
		if loan == nil {
			return apperrors.NotFound("no active loan to pay against")
		}
		if !loan.Settleable() {
			return apperrors.InvalidState("loan %s is %s and cannot accept payments", loan.Code, loan.Status)
		}

		repayment, err := s.repaymentRepo.Create(ctx, &domain.Repayment{
			UserID:    userID,
			LoanID:    loan.ID,
			Amount:    req.Amount,
			Method:    domain.RepaymentMethodManual,
			Status:    domain.RepaymentStatusPending,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return apperrors.Storage(err)
		}

		claim, err = s.claimRepo.Create(ctx, &domain.ManualPaymentClaim{
			UserID:      userID,
			LoanID:      loan.ID,
			RepaymentID: repayment.ID,
			SenderName:  req.SenderName,
			Amount:      req.Amount,
			Note:        req.Note,
			Status:      domain.ClaimStatusPending,
		})
		if err != nil {
			return apperrors.Storage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("manual payment claim submitted",
		zap.Int("claimID", claim.ID),
		zap.Int("loanID", claim.LoanID),
		zap.String("amount", claim.Amount.String()))
	return claim, nil
}

// Approve settles the claimed amount against the loan with external
// funds and marks the claim approved. The settlement and the status
// change share one transaction; if the payment no longer fits the loan
// the whole approval rolls back and the claim stays pending.
func (s *Service) Approve(ctx context.Context, claimID int) (*settlementservice.SettleResult, error) {
	var result *settlementservice.SettleResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		claim, err := s.lockPending(ctx, claimID)
		if err != nil {
			return err
		}

		result, err = s.settlement.Settle(ctx, settlementservice.SettleRequest{
			LoanID:      claim.LoanID,
			PayerID:     claim.UserID,
			Amount:      claim.Amount,
			Method:      domain.RepaymentMethodManual,
			FromWallet:  false,
			RepaymentID: claim.RepaymentID,
		})
		if err != nil {
			return err
		}

		if err := s.claimRepo.UpdateStatus(ctx, claimID, domain.ClaimStatusApproved); err != nil {
			return apperrors.Storage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("manual payment claim approved", zap.Int("claimID", claimID))
	return result, nil
}

// Reject refuses the claim and voids its pending repayment.
func (s *Service) Reject(ctx context.Context, claimID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		claim, err := s.lockPending(ctx, claimID)
		if err != nil {
			return err
		}
		if err := s.repaymentRepo.UpdateStatus(ctx, claim.RepaymentID, domain.RepaymentStatusRejected); err != nil {
			return apperrors.Storage(err)
		}
		if err := s.claimRepo.UpdateStatus(ctx, claimID, domain.ClaimStatusRejected); err != nil {
			return apperrors.Storage(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("manual payment claim rejected", zap.Int("claimID", claimID))
	return nil
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]domain.ManualPaymentClaim, int, error) {
	claims, total, err := s.claimRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Storage(err)
	}
	return claims, total, nil
}

func (s *Service) lockPending(ctx context.Context, claimID int) (*domain.ManualPaymentClaim, error) {
	claim, err := s.claimRepo.FindByIDForUpdate(ctx, claimID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if claim == nil {
		return nil, apperrors.NotFound("claim %d not found", claimID)
	}
	if claim.Status != domain.ClaimStatusPending {
		return nil, apperrors.AlreadyProcessed("claim %d is already %s", claimID, claim.Status)
	}
	return claim, nil
}
