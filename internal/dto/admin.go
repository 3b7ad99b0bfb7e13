package dto

import "github.com/shopspring/decimal"

type DeclineLoanRequestDTO struct {
	Reason string `json:"reason,omitempty" validate:"max=200"`
}

type EligibleAmountRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"10000" validate:"decimal_gte=0"`
}

type LoanSettingsUpdateRequestDTO struct {
	Terms          []LoanTermDTO   `json:"terms" validate:"required,min=1,dive"`
	OverdueRule    RateDTO         `json:"overdue_rule" validate:"required"`
	MinAmount      decimal.Decimal `json:"min_amount" example:"500" validate:"decimal_gte=0"`
	EligibleAmount decimal.Decimal `json:"eligible_amount" example:"5000" validate:"decimal_gte=0"`
	Notice         string          `json:"notice,omitempty" validate:"max=500"`
	BankName       string          `json:"bank_name,omitempty" validate:"max=100"`
	AccountName    string          `json:"account_name,omitempty" validate:"max=100"`
	AccountNumber  string          `json:"account_number,omitempty" validate:"max=30"`
}

type LoanListResponseDTO struct {
	Loans []LoanResponseDTO `json:"loans"`
	Total int               `json:"total" example:"42"`
}

type ClaimListResponseDTO struct {
	Claims []ClaimResponseDTO `json:"claims"`
	Total  int                `json:"total" example:"3"`
}

type RepaymentListResponseDTO struct {
	Repayments []RepaymentResponseDTO `json:"repayments"`
	Total      int                    `json:"total" example:"17"`
}
