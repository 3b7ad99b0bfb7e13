package accrual

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quikcash/loanledger/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Result of an overdue computation as of a point in time.
// OverdueDays is signed: negative means days remaining until the due
// date, zero or positive means on or past it. Only a positive value
// carries a penalty.
type Result struct {
	OverdueDays     int
	OverdueInterest decimal.Decimal
}

// Accrue computes the overdue penalty for a loan as of now. Pure: same
// inputs always produce the same result.
func Accrue(loan *domain.LoanTransaction, rule domain.OverdueRule, now time.Time) Result {
	days := daysBetween(loan.DueDate, now)
	if days <= 0 {
		return Result{OverdueDays: days, OverdueInterest: decimal.Zero}
	}

	var perDay decimal.Decimal
	if rule.Kind == domain.RateKindPercent {
		perDay = loan.Principal.Mul(rule.Value).Div(hundred).Floor()
	} else {
		perDay = rule.Value
	}

	return Result{
		OverdueDays:     days,
		OverdueInterest: perDay.Mul(decimal.NewFromInt(int64(days))),
	}
}

// Interest computes the fixed interest charged at initiation for the
// selected term. Percent interest rounds down to a whole unit.
func Interest(principal decimal.Decimal, term domain.LoanTerm) decimal.Decimal {
	if term.Kind == domain.RateKindPercent {
		return principal.Mul(term.Value).Div(hundred).Floor()
	}
	return term.Value
}

// Outstanding recomputes the amount still owed from the immutable
// issue-time total, the accrued penalty and the successful repayment
// trail. Recomputing from the trail avoids drift from cached decrements.
func Outstanding(loan *domain.LoanTransaction, overdueInterest, paid decimal.Decimal) decimal.Decimal {
	return loan.TotalOwed.Add(overdueInterest).Sub(paid)
}

// daysBetween floors toward negative infinity, matching calendar-day
// arithmetic for dates both before and after the due date.
func daysBetween(from, to time.Time) int {
	diff := to.Sub(from)
	days := diff / (24 * time.Hour)
	if diff < 0 && diff%(24*time.Hour) != 0 {
		days--
	}
	return int(days)
}
