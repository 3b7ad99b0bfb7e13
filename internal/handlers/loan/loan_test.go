package loan

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/dto"
	"github.com/quikcash/loanledger/internal/service/claimservice"
	"github.com/quikcash/loanledger/internal/service/loanservice"
	"github.com/quikcash/loanledger/pkg/apperrors"
	"github.com/quikcash/loanledger/pkg/auth"
)

func NewMock(t *testing.T) (*LoanHandler, *MockService, *MockClaims, *MockSettings) {
	ctrl := gomock.NewController(t)
	loanService := NewMockService(ctrl)
	claimService := NewMockClaims(ctrl)
	settingsService := NewMockSettings(ctrl)
	handler := New(loanService, claimService, settingsService)
	defer ctrl.Finish()
	return handler, loanService, claimService, settingsService
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestPreviewHandler(t *testing.T) {
	handler, loanService, _, _ := NewMock(t)
	dueDate := time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.LoanQuoteResponseDTO
	}{
		{
			name: "Successful quote",
			body: `{"amount":5000,"days":7}`,
			prepareMock: func() {
				loanService.EXPECT().
					PreviewLoan(authCtx(), 1, decimal.NewFromInt(5000), 7).
					Return(&loanservice.Preview{
						Principal: decimal.NewFromInt(5000),
						Interest:  decimal.NewFromInt(1250),
						TotalOwed: decimal.NewFromInt(6250),
						TermDays:  7,
						DueDate:   dueDate,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.LoanQuoteResponseDTO{
				Principal: decimal.NewFromInt(5000),
				Interest:  decimal.NewFromInt(1250),
				TotalOwed: decimal.NewFromInt(6250),
				TermDays:  7,
				DueDate:   dueDate,
			},
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non-positive amount",
			body:         `{"amount":0,"days":7}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Amount exceeds eligible limit",
			body: `{"amount":5000,"days":7}`,
			prepareMock: func() {
				loanService.EXPECT().
					PreviewLoan(authCtx(), 1, decimal.NewFromInt(5000), 7).
					Return(nil, apperrors.ExceedsBalance("amount exceeds eligible limit"))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/loan/preview", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Preview(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LoanQuoteResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestInitiateHandler(t *testing.T) {
	handler, loanService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Loan created",
			body: `{"amount":5000,"days":7}`,
			prepareMock: func() {
				loanService.EXPECT().
					Initiate(authCtx(), 1, decimal.NewFromInt(5000), 7).
					Return(&domain.LoanTransaction{
						ID:          1,
						UserID:      1,
						Code:        "LN-A2B3C4",
						Principal:   decimal.NewFromInt(5000),
						Interest:    decimal.NewFromInt(1250),
						TotalOwed:   decimal.NewFromInt(6250),
						Outstanding: decimal.NewFromInt(6250),
						TermDays:    7,
						Status:      domain.LoanStatusPending,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Open loan already exists",
			body: `{"amount":5000,"days":7}`,
			prepareMock: func() {
				loanService.EXPECT().
					Initiate(authCtx(), 1, decimal.NewFromInt(5000), 7).
					Return(nil, apperrors.InvalidState("you already have an active loan"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Missing duration",
			body:         `{"amount":5000}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/loan/initiate", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Initiate(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.LoanResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "LN-A2B3C4", body.Code)
				assert.Equal(t, domain.LoanStatusPending, body.Status)
			}
		})
	}
}

func TestStatusHandler(t *testing.T) {
	handler, loanService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.LoanStatusResponseDTO
	}{
		{
			name: "Form completed without loan",
			prepareMock: func() {
				loanService.EXPECT().
					Status(authCtx(), 1).
					Return(&loanservice.Status{HasCompletedForm: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.LoanStatusResponseDTO{HasCompletedForm: true},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				loanService.EXPECT().
					Status(authCtx(), 1).
					Return(nil, apperrors.Storage(assert.AnError))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/loan/status", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Status(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LoanStatusResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestRepayHandler(t *testing.T) {
	handler, loanService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful repayment",
			body: `{"amount":3000}`,
			prepareMock: func() {
				loanService.EXPECT().
					Repay(authCtx(), 1, decimal.NewFromInt(3000)).
					Return(&domain.LoanTransaction{
						ID:          1,
						Status:      domain.LoanStatusRunning,
						Outstanding: decimal.NewFromInt(3250),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient wallet balance",
			body: `{"amount":3000}`,
			prepareMock: func() {
				loanService.EXPECT().
					Repay(authCtx(), 1, decimal.NewFromInt(3000)).
					Return(nil, apperrors.InsufficientFunds("insufficient wallet balance"))
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "No active loan",
			body: `{"amount":3000}`,
			prepareMock: func() {
				loanService.EXPECT().
					Repay(authCtx(), 1, decimal.NewFromInt(3000)).
					Return(nil, apperrors.NotFound("no active loan"))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/loan/repay", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Repay(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestManualRepayHandler(t *testing.T) {
	handler, _, claimService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Claim recorded",
			body: `{"sender_name":"John Doe","amount":3000,"note":"transfer ref 8812"}`,
			prepareMock: func() {
				claimService.EXPECT().
					Submit(authCtx(), 1, claimservice.SubmitRequest{
						SenderName: "John Doe",
						Amount:     decimal.NewFromInt(3000),
						Note:       "transfer ref 8812",
					}).
					Return(&domain.ManualPaymentClaim{
						ID:         5,
						UserID:     1,
						LoanID:     1,
						SenderName: "John Doe",
						Amount:     decimal.NewFromInt(3000),
						Status:     domain.ClaimStatusPending,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing sender name",
			body:         `{"amount":3000}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "No active loan",
			body: `{"sender_name":"John Doe","amount":3000}`,
			prepareMock: func() {
				claimService.EXPECT().
					Submit(authCtx(), 1, claimservice.SubmitRequest{
						SenderName: "John Doe",
						Amount:     decimal.NewFromInt(3000),
					}).
					Return(nil, apperrors.NotFound("no active loan"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/loan/manual-repay", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.ManualRepay(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.ClaimResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, domain.ClaimStatusPending, body.Status)
			}
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	handler, loanService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Two repayments",
			prepareMock: func() {
				loanService.EXPECT().
					History(authCtx(), 1).
					Return([]domain.Repayment{
						{ID: 2, LoanID: 1, Amount: decimal.NewFromInt(3000), Method: domain.RepaymentMethodManual, Status: domain.RepaymentStatusSuccess},
						{ID: 1, LoanID: 1, Amount: decimal.NewFromInt(1000), Method: domain.RepaymentMethodAutoDebit, Status: domain.RepaymentStatusSuccess},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Empty history",
			prepareMock: func() {
				loanService.EXPECT().
					History(authCtx(), 1).
					Return([]domain.Repayment{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/loan/repayments", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.History(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			var body []dto.RepaymentResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&body)
			assert.Len(t, body, tt.expectedLen)
		})
	}
}

func TestSettingsHandler(t *testing.T) {
	handler, _, _, settingsService := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Settings returned",
			prepareMock: func() {
				settingsService.EXPECT().
					Snapshot(authCtx()).
					Return(&domain.LoanSettings{
						OverdueRule: domain.OverdueRule{Kind: domain.RateKindPercent, Value: decimal.NewFromInt(10)},
						MinAmount:   decimal.NewFromInt(500),
						Terms: []domain.LoanTerm{
							{Days: 7, Kind: domain.RateKindPercent, Value: decimal.NewFromInt(25)},
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Settings not configured",
			prepareMock: func() {
				settingsService.EXPECT().
					Snapshot(authCtx()).
					Return(nil, apperrors.NotFound("loan settings are not configured"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/loan/settings", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Settings(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LoanSettingsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body.Terms, 1)
				assert.Equal(t, domain.RateKindPercent, body.OverdueRule.Kind)
			}
		})
	}
}

func TestApplyHandler(t *testing.T) {
	handler, loanService, _, _ := NewMock(t)

	validForm := `{
		"name":"John Doe","phone":"+2348012345678","nin":"12345678901","dob":"1990-04-01",
		"address":"12 Broad St","occupation":"Trader",
		"bank_name":"First Bank","account_number":"0123456789","account_name":"John Doe",
		"guarantor1_name":"Jane Doe","guarantor1_phone":"+2348012345679","guarantor1_relationship":"Sister",
		"guarantor2_name":"Jim Doe","guarantor2_phone":"+2348012345680","guarantor2_relationship":"Brother",
		"photo":"aGVsbG8=","id_image":"d29ybGQ="
	}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Form submitted",
			body: validForm,
			prepareMock: func() {
				loanService.EXPECT().
					Apply(authCtx(), 1, loanservice.ApplyRequest{
						Name:                   "John Doe",
						Phone:                  "+2348012345678",
						NIN:                    "12345678901",
						DOB:                    "1990-04-01",
						Address:                "12 Broad St",
						Occupation:             "Trader",
						BankName:               "First Bank",
						AccountNumber:          "0123456789",
						AccountName:            "John Doe",
						Guarantor1Name:         "Jane Doe",
						Guarantor1Phone:        "+2348012345679",
						Guarantor1Relationship: "Sister",
						Guarantor2Name:         "Jim Doe",
						Guarantor2Phone:        "+2348012345680",
						Guarantor2Relationship: "Brother",
						PhotoBase64:            "aGVsbG8=",
						IDImageBase64:          "d29ybGQ=",
					}).
					Return(&domain.LoanProfile{ID: 1, UserID: 1, Status: domain.ProfileStatusPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing required fields",
			body:         `{"name":"John Doe"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Form already submitted",
			body: validForm,
			prepareMock: func() {
				loanService.EXPECT().
					Apply(authCtx(), 1, gomock.Any()).
					Return(nil, apperrors.InvalidState("application form already submitted"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/loan/apply", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()
			handler.Apply(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
