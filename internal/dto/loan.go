package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quikcash/loanledger/internal/domain"
)

type LoanQuoteRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"5000" validate:"decimal_gt=0"`
	Days   int             `json:"days" example:"7" validate:"required,gt=0"`
}

type LoanQuoteResponseDTO struct {
	Principal decimal.Decimal `json:"principal" example:"5000"`
	Interest  decimal.Decimal `json:"interest" example:"1250"`
	TotalOwed decimal.Decimal `json:"total_owed" example:"6250"`
	TermDays  int             `json:"term_days" example:"7"`
	DueDate   time.Time       `json:"due_date" example:"2025-04-08T12:00:00Z"`
}

type LoanResponseDTO struct {
	ID              int             `json:"id" example:"1"`
	Code            string          `json:"code" example:"LN-A2B3C4"`
	Principal       decimal.Decimal `json:"principal" example:"5000"`
	Interest        decimal.Decimal `json:"interest" example:"1250"`
	TotalOwed       decimal.Decimal `json:"total_owed" example:"6250"`
	Outstanding     decimal.Decimal `json:"outstanding" example:"6250"`
	TermDays        int             `json:"term_days" example:"7"`
	DueDate         time.Time       `json:"due_date" example:"2025-04-08T12:00:00Z"`
	OverdueDays     int             `json:"overdue_days" example:"0"`
	OverdueInterest decimal.Decimal `json:"overdue_interest" example:"0"`
	Status          string          `json:"status" example:"running"`
	DeclineReason   string          `json:"decline_reason,omitempty"`
	IssuedAt        time.Time       `json:"issued_at"`
	ClearedAt       *time.Time      `json:"cleared_at,omitempty"`
}

func NewLoanResponseDTO(loan *domain.LoanTransaction) *LoanResponseDTO {
	if loan == nil {
		return nil
	}
	return &LoanResponseDTO{
		ID:              loan.ID,
		Code:            loan.Code,
		Principal:       loan.Principal,
		Interest:        loan.Interest,
		TotalOwed:       loan.TotalOwed,
		Outstanding:     loan.Outstanding,
		TermDays:        loan.TermDays,
		DueDate:         loan.DueDate,
		OverdueDays:     loan.OverdueDays,
		OverdueInterest: loan.OverdueInterest,
		Status:          loan.Status,
		DeclineReason:   loan.DeclineReason,
		IssuedAt:        loan.IssuedAt,
		ClearedAt:       loan.ClearedAt,
	}
}

type LoanStatusResponseDTO struct {
	HasCompletedForm bool             `json:"has_completed_form" example:"true"`
	Loan             *LoanResponseDTO `json:"loan,omitempty"`
}

type RepayRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"3000" validate:"decimal_gt=0"`
}

type ManualRepayRequestDTO struct {
	SenderName string          `json:"sender_name" example:"John Doe" validate:"required,min=2,max=100"`
	Amount     decimal.Decimal `json:"amount" example:"3000" validate:"decimal_gt=0"`
	Note       string          `json:"note,omitempty" validate:"max=500"`
}

type ClaimResponseDTO struct {
	ID         int             `json:"id" example:"5"`
	UserID     int             `json:"user_id" example:"7"`
	LoanID     int             `json:"loan_id" example:"1"`
	SenderName string          `json:"sender_name" example:"John Doe"`
	Amount     decimal.Decimal `json:"amount" example:"3000"`
	Note       string          `json:"note,omitempty"`
	Status     string          `json:"status" example:"pending"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewClaimResponseDTO(claim *domain.ManualPaymentClaim) *ClaimResponseDTO {
	return &ClaimResponseDTO{
		ID:         claim.ID,
		UserID:     claim.UserID,
		LoanID:     claim.LoanID,
		SenderName: claim.SenderName,
		Amount:     claim.Amount,
		Note:       claim.Note,
		Status:     claim.Status,
		CreatedAt:  claim.CreatedAt,
		UpdatedAt:  claim.UpdatedAt,
	}
}

type RepaymentResponseDTO struct {
	ID        int             `json:"id" example:"11"`
	UserID    int             `json:"user_id" example:"7"`
	LoanID    int             `json:"loan_id" example:"1"`
	Amount    decimal.Decimal `json:"amount" example:"3000"`
	Method    string          `json:"method" example:"manual"`
	Status    string          `json:"status" example:"success"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewRepaymentResponseDTOs(repayments []domain.Repayment) []RepaymentResponseDTO {
	out := make([]RepaymentResponseDTO, 0, len(repayments))
	for _, rp := range repayments {
		out = append(out, RepaymentResponseDTO{
			ID:        rp.ID,
			UserID:    rp.UserID,
			LoanID:    rp.LoanID,
			Amount:    rp.Amount,
			Method:    rp.Method,
			Status:    rp.Status,
			CreatedAt: rp.CreatedAt,
		})
	}
	return out
}

type LoanDetailsResponseDTO struct {
	Loan       *LoanResponseDTO       `json:"loan"`
	Repayments []RepaymentResponseDTO `json:"repayments"`
}

type LoanTermDTO struct {
	Days  int             `json:"days" example:"7" validate:"required,gt=0"`
	Kind  string          `json:"kind" example:"percent" validate:"required,oneof=percent fixed"`
	Value decimal.Decimal `json:"value" example:"25" validate:"decimal_gte=0"`
}

type RateDTO struct {
	Kind  string          `json:"kind" example:"percent" validate:"required,oneof=percent fixed"`
	Value decimal.Decimal `json:"value" example:"10" validate:"decimal_gte=0"`
}

type LoanSettingsResponseDTO struct {
	Terms          []LoanTermDTO   `json:"terms"`
	OverdueRule    RateDTO         `json:"overdue_rule"`
	MinAmount      decimal.Decimal `json:"min_amount" example:"500"`
	EligibleAmount decimal.Decimal `json:"eligible_amount" example:"5000"`
	Notice         string          `json:"notice,omitempty"`
	BankName       string          `json:"bank_name,omitempty"`
	AccountName    string          `json:"account_name,omitempty"`
	AccountNumber  string          `json:"account_number,omitempty"`
}

func NewLoanSettingsResponseDTO(s *domain.LoanSettings) *LoanSettingsResponseDTO {
	terms := make([]LoanTermDTO, 0, len(s.Terms))
	for _, term := range s.Terms {
		terms = append(terms, LoanTermDTO{Days: term.Days, Kind: term.Kind, Value: term.Value})
	}
	return &LoanSettingsResponseDTO{
		Terms:          terms,
		OverdueRule:    RateDTO{Kind: s.OverdueRule.Kind, Value: s.OverdueRule.Value},
		MinAmount:      s.MinAmount,
		EligibleAmount: s.EligibleAmount,
		Notice:         s.Notice,
		BankName:       s.BankName,
		AccountName:    s.AccountName,
		AccountNumber:  s.AccountNumber,
	}
}

type ApplyRequestDTO struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Phone      string `json:"phone" validate:"required,e164"`
	NIN        string `json:"nin" validate:"required,min=5,max=20"`
	DOB        string `json:"dob" validate:"required"`
	Address    string `json:"address" validate:"required,max=200"`
	Occupation string `json:"occupation" validate:"required,max=100"`

	BankName      string `json:"bank_name" validate:"required,max=100"`
	AccountNumber string `json:"account_number" validate:"required,max=30"`
	AccountName   string `json:"account_name" validate:"required,max=100"`

	Guarantor1Name         string `json:"guarantor1_name" validate:"required,max=100"`
	Guarantor1Phone        string `json:"guarantor1_phone" validate:"required,e164"`
	Guarantor1Relationship string `json:"guarantor1_relationship" validate:"required,max=50"`

	Guarantor2Name         string `json:"guarantor2_name" validate:"required,max=100"`
	Guarantor2Phone        string `json:"guarantor2_phone" validate:"required,e164"`
	Guarantor2Relationship string `json:"guarantor2_relationship" validate:"required,max=50"`

	PhotoBase64   string `json:"photo" validate:"required"`
	IDImageBase64 string `json:"id_image" validate:"required"`
}
