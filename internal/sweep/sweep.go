// Package sweep walks open loans and refreshes their overdue accrual.
// It is driven by a scheduler; each visited loan is re-priced inside
// its own transaction so a single bad row never stalls the batch.
package sweep

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/quikcash/loanledger/internal/domain"
)

type LoanRepo interface {
	FindOpenIDs(ctx context.Context, limit uint32) ([]int, error)
}

type Refresher interface {
	Refresh(ctx context.Context, loanID int) (*domain.LoanTransaction, error)
}

// sweepingLoans guards against the same loan being queued twice when a
// run overlaps a slow predecessor.
var sweepingLoans sync.Map

type Service struct {
	loanRepo   LoanRepo
	refresher  Refresher
	limit      uint32
	workerPool WorkerPoolI
}

func New(loanRepo LoanRepo, refresher Refresher, limit uint32) *Service {
	return &Service{
		loanRepo:   loanRepo,
		refresher:  refresher,
		limit:      limit,
		workerPool: NewWorkerPool(10),
	}
}

// Run visits every open loan once. Individual refresh failures are
// logged and skipped; the error return covers queueing only.
func (s *Service) Run(ctx context.Context) error {
	ids, err := s.loanRepo.FindOpenIDs(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch loans for sweep", zap.Error(err))
		return err
	}
	zap.L().Info("Sweep started", zap.Int("loans", len(ids)))

	var g errgroup.Group
	for _, id := range ids {
		id := id

		if _, loaded := sweepingLoans.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingLoans.Delete(id)
				return s.refreshLoan(ctx, id)
			})
			if err != nil {
				sweepingLoans.Delete(id)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping loans", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) refreshLoan(ctx context.Context, id int) error {
	loan, err := s.refresher.Refresh(ctx, id)
	if err != nil {
		zap.L().Error("Failed to refresh loan", zap.Int("loanID", id), zap.Error(err))
		return err
	}
	if loan != nil && loan.Status == domain.LoanStatusOverdue {
		zap.L().Info("Loan overdue",
			zap.Int("loanID", loan.ID),
			zap.Int("overdueDays", loan.OverdueDays),
			zap.String("outstanding", loan.Outstanding.String()))
	}
	return nil
}

func (s *Service) Close() {
	s.workerPool.Close()
}
