package dto

import "github.com/shopspring/decimal"

type WalletResponseDTO struct {
	Balance        decimal.Decimal `json:"balance" example:"100000"`
	EligibleAmount decimal.Decimal `json:"eligible_amount" example:"5000"`
}
