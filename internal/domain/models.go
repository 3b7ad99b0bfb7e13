package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan transaction lifecycle. A loan is created pending, an admin moves
// it to running or declined, accrual may promote running to overdue,
// and settlement to zero makes it cleared. cleared and declined are
// terminal.
const (
	LoanStatusPending  = "pending"
	LoanStatusRunning  = "running"
	LoanStatusOverdue  = "overdue"
	LoanStatusCleared  = "cleared"
	LoanStatusDeclined = "declined"
)

const (
	RepaymentMethodManual    = "manual"
	RepaymentMethodAutoDebit = "auto-debit"
)

const (
	RepaymentStatusPending  = "pending"
	RepaymentStatusSuccess  = "success"
	RepaymentStatusRejected = "rejected"
)

const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
)

const (
	ProfileStatusPending  = "pending"
	ProfileStatusApproved = "approved"
	ProfileStatusDeclined = "declined"
)

// Rate kinds shared by loan terms and the overdue rule.
const (
	RateKindPercent = "percent"
	RateKindFixed   = "fixed"
)

type User struct {
	ID             int             `db:"id"`
	Name           string          `db:"name"`
	Phone          string          `db:"phone"`
	PasswordHash   string          `db:"password_hash"`
	WalletBalance  decimal.Decimal `db:"wallet_balance"`
	EligibleAmount decimal.Decimal `db:"eligible_amount"`
	IsAdmin        bool            `db:"is_admin"`
	CreatedAt      time.Time       `db:"created_at"`
}

type LoanTransaction struct {
	ID              int             `db:"id"`
	UserID          int             `db:"user_id"`
	Code            string          `db:"code"`
	Principal       decimal.Decimal `db:"principal"`
	Interest        decimal.Decimal `db:"interest"`
	TotalOwed       decimal.Decimal `db:"total_owed"`
	Outstanding     decimal.Decimal `db:"outstanding"`
	TermDays        int             `db:"term_days"`
	DueDate         time.Time       `db:"due_date"`
	OverdueDays     int             `db:"overdue_days"`
	OverdueInterest decimal.Decimal `db:"overdue_interest"`
	Status          string          `db:"status"`
	DeclineReason   string          `db:"decline_reason"`
	IssuedAt        time.Time       `db:"issued_at"`
	ClearedAt       *time.Time      `db:"cleared_at"`
}

// Open reports whether the loan still blocks a new one for this user.
func (l *LoanTransaction) Open() bool {
	switch l.Status {
	case LoanStatusPending, LoanStatusRunning, LoanStatusOverdue:
		return true
	}
	return false
}

// Settleable reports whether money may move against this loan.
func (l *LoanTransaction) Settleable() bool {
	return l.Status == LoanStatusRunning || l.Status == LoanStatusOverdue
}

func (l *LoanTransaction) Terminal() bool {
	return l.Status == LoanStatusCleared || l.Status == LoanStatusDeclined
}

type Repayment struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	LoanID    int             `db:"loan_id"`
	Amount    decimal.Decimal `db:"amount"`
	Method    string          `db:"method"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}

// ManualPaymentClaim is a user's assertion of an out-of-band bank
// transfer. RepaymentID links the pending Repayment created alongside
// the claim; the two records always resolve together.
type ManualPaymentClaim struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	LoanID      int             `db:"loan_id"`
	RepaymentID int             `db:"repayment_id"`
	SenderName  string          `db:"sender_name"`
	Amount      decimal.Decimal `db:"amount"`
	Note        string          `db:"note"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// LoanProfile is the application form a user submits before any loan
// can be initiated. Photo and ID image hold opaque upload references.
type LoanProfile struct {
	ID     int    `db:"id"`
	UserID int    `db:"user_id"`
	Name   string `db:"name"`
	Phone  string `db:"phone"`
	NIN    string `db:"nin"`
	DOB    string `db:"dob"`

	Address    string `db:"address"`
	Occupation string `db:"occupation"`

	BankName      string `db:"bank_name"`
	AccountNumber string `db:"account_number"`
	AccountName   string `db:"account_name"`

	Guarantor1Name         string `db:"guarantor1_name"`
	Guarantor1Phone        string `db:"guarantor1_phone"`
	Guarantor1Relationship string `db:"guarantor1_relationship"`

	Guarantor2Name         string `db:"guarantor2_name"`
	Guarantor2Phone        string `db:"guarantor2_phone"`
	Guarantor2Relationship string `db:"guarantor2_relationship"`

	PhotoRef   string `db:"photo_ref"`
	IDImageRef string `db:"id_image_ref"`

	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// LoanTerm is an offerable combination of duration and interest rule.
// Terms are immutable once offered; the catalog is keyed by Days.
type LoanTerm struct {
	Days  int             `json:"days"`
	Kind  string          `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

type OverdueRule struct {
	Kind  string          `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// LoanSettings is the admin-configured singleton: the term catalog, the
// overdue rule and the lending limits. Services treat a loaded value as
// an immutable snapshot.
type LoanSettings struct {
	ID             int             `json:"id"`
	OverdueRule    OverdueRule     `json:"overdue_rule"`
	EligibleAmount decimal.Decimal `json:"eligible_amount"`
	MinAmount      decimal.Decimal `json:"min_amount"`
	Notice         string          `json:"notice"`
	BankName       string          `json:"bank_name"`
	AccountName    string          `json:"account_name"`
	AccountNumber  string          `json:"account_number"`
	Terms          []LoanTerm      `json:"terms"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// FindTerm resolves a term by exact duration match.
func (s *LoanSettings) FindTerm(days int) *LoanTerm {
	for i := range s.Terms {
		if s.Terms[i].Days == days {
			return &s.Terms[i]
		}
	}
	return nil
}
