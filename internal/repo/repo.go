package repo

import (
	claimrepo "github.com/quikcash/loanledger/internal/repo/claim-repo"
	loanrepo "github.com/quikcash/loanledger/internal/repo/loan-repo"
	profilerepo "github.com/quikcash/loanledger/internal/repo/profile-repo"
	repaymentrepo "github.com/quikcash/loanledger/internal/repo/repayment-repo"
	settingsrepo "github.com/quikcash/loanledger/internal/repo/settings-repo"
	userrepo "github.com/quikcash/loanledger/internal/repo/user-repo"

	"github.com/quikcash/loanledger/internal/pg"
)

// Repositories bundles the storage layer. Fields are concrete types
// because several services share one repository and narrow it to their
// own interface at the consumer side.
type Repositories struct {
	User      *userrepo.Repository
	Loan      *loanrepo.Repository
	Profile   *profilerepo.Repository
	Repayment *repaymentrepo.Repository
	Claim     *claimrepo.Repository
	Settings  *settingsrepo.Repository
}

func New(db pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		User:      userrepo.New(db),
		Loan:      loanrepo.New(db, txManager),
		Profile:   profilerepo.New(db),
		Repayment: repaymentrepo.New(db),
		Claim:     claimrepo.New(db),
		Settings:  settingsrepo.New(db, txManager),
	}
}
