package repaymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/quikcash/loanledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	repayment := &domain.Repayment{
		UserID:    7,
		LoanID:    1,
		Amount:    decimal.NewFromInt(6250),
		Method:    domain.RepaymentMethodManual,
		Status:    domain.RepaymentStatusSuccess,
		CreatedAt: now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful insert",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO repayments")).
					WithArgs(7, 1, repayment.Amount, domain.RepaymentMethodManual,
						domain.RepaymentStatusSuccess, now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO repayments")).
					WithArgs(7, 1, repayment.Amount, domain.RepaymentMethodManual,
						domain.RepaymentStatusSuccess, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.Create(context.Background(), repayment)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, got.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Marks repayment successful", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE repayments SET status = $1 WHERE id = $2")).
			WithArgs(domain.RepaymentStatusSuccess, 11).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateStatus(context.Background(), 11, domain.RepaymentStatusSuccess)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SumSuccessfulByLoanID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    decimal.Decimal
	}{
		{
			name: "Partial repayments recorded",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).
						AddRow(decimal.NewFromInt(3000)))
			},
			expectErr: false,
			result:    decimal.NewFromInt(3000),
		},
		{
			name: "No repayments yet",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).
						AddRow(decimal.Zero))
			},
			expectErr: false,
			result:    decimal.Zero,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.SumSuccessfulByLoanID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.result.Equal(got))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Returns history newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "loan_id", "amount", "method", "status", "created_at"}).
			AddRow(12, 7, 1, decimal.NewFromInt(3250), domain.RepaymentMethodManual, domain.RepaymentStatusSuccess, now).
			AddRow(11, 7, 1, decimal.NewFromInt(3000), domain.RepaymentMethodAutoDebit, domain.RepaymentStatusSuccess, now.Add(-time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
			WithArgs(7).
			WillReturnRows(rows)

		got, err := repo.FindByUserID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 12, got[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
