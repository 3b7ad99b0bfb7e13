package service

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quikcash/loanledger/internal/pg"
	"github.com/quikcash/loanledger/internal/repo"
	"github.com/quikcash/loanledger/internal/service/authservice"
	"github.com/quikcash/loanledger/internal/service/claimservice"
	"github.com/quikcash/loanledger/internal/service/loanservice"
	"github.com/quikcash/loanledger/internal/service/settingsservice"
	"github.com/quikcash/loanledger/internal/service/settlementservice"
	pkgauth "github.com/quikcash/loanledger/pkg/auth"
	"github.com/quikcash/loanledger/pkg/upload"
)

const settingsCacheTTL = 5 * time.Minute

// Services holds the business layer. Fields are concrete because the
// user and admin handler surfaces narrow the same service to different
// interfaces.
type Services struct {
	Auth       *authservice.Service
	Loan       *loanservice.Service
	Claim      *claimservice.Service
	Settings   *settingsservice.Service
	Settlement *settlementservice.Service
}

func New(repo *repo.Repositories, rdb *redis.Client, uploads *upload.Store, txManager pg.TXManager) *Services {
	settingsService := settingsservice.New(repo.Settings, rdb, settingsCacheTTL)
	settlementService := settlementservice.New(repo.Loan, repo.User, repo.Repayment, settingsService, txManager)
	loanService := loanservice.New(repo.Loan, repo.User, repo.Profile, repo.Repayment,
		settingsService, settlementService, uploads, txManager)
	claimService := claimservice.New(repo.Claim, repo.Loan, repo.Repayment, settlementService, txManager)
	authService := authservice.New(repo.User, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		Auth:       authService,
		Loan:       loanService,
		Claim:      claimService,
		Settings:   settingsService,
		Settlement: settlementService,
	}
}
