package loanrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func loanRows(loan *domain.LoanTransaction) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "code", "principal", "interest", "total_owed", "outstanding",
		"term_days", "due_date", "overdue_days", "overdue_interest", "status",
		"decline_reason", "issued_at", "cleared_at",
	}).AddRow(loan.ID, loan.UserID, loan.Code, loan.Principal, loan.Interest,
		loan.TotalOwed, loan.Outstanding, loan.TermDays, loan.DueDate,
		loan.OverdueDays, loan.OverdueInterest, loan.Status, loan.DeclineReason,
		loan.IssuedAt, loan.ClearedAt)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	loan := &domain.LoanTransaction{
		ID:              1,
		UserID:          7,
		Code:            "LN-A2B3C4",
		Principal:       decimal.NewFromInt(5000),
		Interest:        decimal.NewFromInt(1250),
		TotalOwed:       decimal.NewFromInt(6250),
		Outstanding:     decimal.NewFromInt(6250),
		TermDays:        7,
		DueDate:         now.AddDate(0, 0, 7),
		OverdueInterest: decimal.Zero,
		Status:          domain.LoanStatusRunning,
		IssuedAt:        now,
	}

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.LoanTransaction
	}{
		{
			name: "Loan exists",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM loan_transactions WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(loanRows(loan))
			},
			expectErr: false,
			result:    loan,
		},
		{
			name: "Loan does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM loan_transactions WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM loan_transactions WHERE id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)
	now := time.Now()
	loan := &domain.LoanTransaction{
		UserID:      7,
		Code:        "LN-A2B3C4",
		Principal:   decimal.NewFromInt(5000),
		Interest:    decimal.NewFromInt(1250),
		TotalOwed:   decimal.NewFromInt(6250),
		Outstanding: decimal.NewFromInt(6250),
		TermDays:    7,
		DueDate:     now.AddDate(0, 0, 7),
		Status:      domain.LoanStatusPending,
		IssuedAt:    now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful insert",
			mockSetup: func() {
				mockTxManager.EXPECT().
					Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loan_transactions")).
					WithArgs(loan.UserID, loan.Code, loan.Principal, loan.Interest,
						loan.TotalOwed, loan.Outstanding, loan.TermDays, loan.DueDate,
						loan.OverdueDays, loan.OverdueInterest, loan.Status, loan.IssuedAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectErr: false,
		},
		{
			name: "Open loan already exists",
			mockSetup: func() {
				mockTxManager.EXPECT().
					Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loan_transactions")).
					WithArgs(loan.UserID, loan.Code, loan.Principal, loan.Interest,
						loan.TotalOwed, loan.Outstanding, loan.TermDays, loan.DueDate,
						loan.OverdueDays, loan.OverdueInterest, loan.Status, loan.IssuedAt).
					WillReturnError(errors.New("duplicate key value violates unique constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.Create(context.Background(), loan)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, got.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindOpenByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("No open loan", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("status IN ('pending', 'running', 'overdue')")).
			WithArgs(7).
			WillReturnError(pgx.ErrNoRows)
		got, err := repo.FindOpenByUserID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	loan := &domain.LoanTransaction{
		ID:              3,
		UserID:          7,
		Code:            "LN-X9Y8Z7",
		Principal:       decimal.NewFromInt(2000),
		Interest:        decimal.NewFromInt(500),
		TotalOwed:       decimal.NewFromInt(2500),
		Outstanding:     decimal.NewFromInt(2500),
		TermDays:        7,
		DueDate:         now,
		OverdueInterest: decimal.Zero,
		Status:          domain.LoanStatusPending,
		IssuedAt:        now,
	}

	t.Run("Filtered by status", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY issued_at DESC")).
			WithArgs("pending", 20, 0).
			WillReturnRows(loanRows(loan))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM loan_transactions")).
			WithArgs("pending").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

		loans, total, err := repo.List(context.Background(), "pending", 20, 0)
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, loans, 1)
		assert.Equal(t, *loan, loans[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
