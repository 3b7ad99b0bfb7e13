package claimservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/pg"
	"github.com/quikcash/loanledger/internal/service/settlementservice"
	"github.com/quikcash/loanledger/pkg/apperrors"
)

type mocks struct {
	claimRepo     *MockClaimRepo
	loanRepo      *MockLoanRepo
	repaymentRepo *MockRepaymentRepo
	settlement    *MockSettlement
	txManager     *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		claimRepo:     NewMockClaimRepo(ctrl),
		loanRepo:      NewMockLoanRepo(ctrl),
		repaymentRepo: NewMockRepaymentRepo(ctrl),
		settlement:    NewMockSettlement(ctrl),
		txManager:     pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).
		AnyTimes()
	service := New(m.claimRepo, m.loanRepo, m.repaymentRepo, m.settlement, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func pendingClaim() *domain.ManualPaymentClaim {
	return &domain.ManualPaymentClaim{
		ID:          5,
		UserID:      7,
		LoanID:      1,
		RepaymentID: 21,
		SenderName:  "John Doe",
		Amount:      decimal.NewFromInt(3000),
		Status:      domain.ClaimStatusPending,
		CreatedAt:   time.Now(),
	}
}

func TestSubmit(t *testing.T) {
	service, m := NewMock(t)
	loan := &domain.LoanTransaction{
		ID:     1,
		UserID: 7,
		Code:   "LN-A2B3C4",
		Status: domain.LoanStatusRunning,
	}

	t.Run("Claim recorded with linked repayment", func(t *testing.T) {
		m.loanRepo.EXPECT().FindOpenByUserID(gomock.Any(), 7).Return(loan, nil)
		m.repaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rp *domain.Repayment) (*domain.Repayment, error) {
				assert.Equal(t, domain.RepaymentStatusPending, rp.Status)
				assert.Equal(t, domain.RepaymentMethodManual, rp.Method)
				rp.ID = 21
				return rp, nil
			})
		m.claimRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.ManualPaymentClaim) (*domain.ManualPaymentClaim, error) {
				assert.Equal(t, 21, c.RepaymentID)
				assert.Equal(t, domain.ClaimStatusPending, c.Status)
				c.ID = 5
				return c, nil
			})

		claim, err := service.Submit(context.Background(), 7, SubmitRequest{
			SenderName: "John Doe",
			Amount:     decimal.NewFromInt(3000),
		})
		assert.NoError(t, err)
		assert.Equal(t, 5, claim.ID)
	})

	t.Run("No active loan", func(t *testing.T) {
		m.loanRepo.EXPECT().FindOpenByUserID(gomock.Any(), 7).Return(nil, nil)

		_, err := service.Submit(context.Background(), 7, SubmitRequest{
			SenderName: "John Doe",
			Amount:     decimal.NewFromInt(3000),
		})
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("Pending loan cannot accept payments", func(t *testing.T) {
		pending := *loan
		pending.Status = domain.LoanStatusPending
		m.loanRepo.EXPECT().FindOpenByUserID(gomock.Any(), 7).Return(&pending, nil)

		_, err := service.Submit(context.Background(), 7, SubmitRequest{
			SenderName: "John Doe",
			Amount:     decimal.NewFromInt(3000),
		})
		assert.Equal(t, apperrors.CodeInvalidState, apperrors.CodeOf(err))
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		_, err := service.Submit(context.Background(), 7, SubmitRequest{
			SenderName: "John Doe",
			Amount:     decimal.Zero,
		})
		assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	})
}

func TestApprove(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Settles with external funds and approves", func(t *testing.T) {
		claim := pendingClaim()
		m.claimRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(claim, nil)
		m.settlement.EXPECT().
			Settle(gomock.Any(), settlementservice.SettleRequest{
				LoanID:      1,
				PayerID:     7,
				Amount:      claim.Amount,
				Method:      domain.RepaymentMethodManual,
				FromWallet:  false,
				RepaymentID: 21,
			}).
			Return(&settlementservice.SettleResult{
				Loan: &domain.LoanTransaction{ID: 1, Status: domain.LoanStatusRunning},
			}, nil)
		m.claimRepo.EXPECT().UpdateStatus(gomock.Any(), 5, domain.ClaimStatusApproved).Return(nil)

		result, err := service.Approve(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Loan.ID)
	})

	t.Run("Already approved claim", func(t *testing.T) {
		claim := pendingClaim()
		claim.Status = domain.ClaimStatusApproved
		m.claimRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(claim, nil)

		_, err := service.Approve(context.Background(), 5)
		assert.Equal(t, apperrors.CodeAlreadyProcessed, apperrors.CodeOf(err))
	})

	t.Run("Settlement failure leaves claim pending", func(t *testing.T) {
		claim := pendingClaim()
		m.claimRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(claim, nil)
		m.settlement.EXPECT().Settle(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ExceedsBalance("payment of 3000 exceeds outstanding balance 1000"))

		_, err := service.Approve(context.Background(), 5)
		assert.Equal(t, apperrors.CodeExceedsBalance, apperrors.CodeOf(err))
	})

	t.Run("Claim missing", func(t *testing.T) {
		m.claimRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 99).Return(nil, nil)

		_, err := service.Approve(context.Background(), 99)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})
}

func TestReject(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Voids the linked repayment", func(t *testing.T) {
		claim := pendingClaim()
		m.claimRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(claim, nil)
		m.repaymentRepo.EXPECT().UpdateStatus(gomock.Any(), 21, domain.RepaymentStatusRejected).Return(nil)
		m.claimRepo.EXPECT().UpdateStatus(gomock.Any(), 5, domain.ClaimStatusRejected).Return(nil)

		err := service.Reject(context.Background(), 5)
		assert.NoError(t, err)
	})

	t.Run("Already rejected claim", func(t *testing.T) {
		claim := pendingClaim()
		claim.Status = domain.ClaimStatusRejected
		m.claimRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(claim, nil)

		err := service.Reject(context.Background(), 5)
		assert.Equal(t, apperrors.CodeAlreadyProcessed, apperrors.CodeOf(err))
	})
}
