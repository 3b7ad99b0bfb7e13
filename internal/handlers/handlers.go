package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	adminhandlers "github.com/quikcash/loanledger/internal/handlers/admin"
	authhandlers "github.com/quikcash/loanledger/internal/handlers/auth"
	loanhandlers "github.com/quikcash/loanledger/internal/handlers/loan"
	wallethandlers "github.com/quikcash/loanledger/internal/handlers/wallet"
	"github.com/quikcash/loanledger/internal/service"
	"github.com/quikcash/loanledger/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Initiate(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	Repay(w http.ResponseWriter, r *http.Request)
	ManualRepay(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Settings(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListLoans(w http.ResponseWriter, r *http.Request)
	GetLoan(w http.ResponseWriter, r *http.Request)
	ApproveLoan(w http.ResponseWriter, r *http.Request)
	DeclineLoan(w http.ResponseWriter, r *http.Request)
	ListClaims(w http.ResponseWriter, r *http.Request)
	ApproveClaim(w http.ResponseWriter, r *http.Request)
	RejectClaim(w http.ResponseWriter, r *http.Request)
	ListRepayments(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	SetEligibleAmount(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	LoanHandler   LoanHandler
	WalletHandler WalletHandler
	AdminHandler  AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.Auth),
		LoanHandler:   loanhandlers.New(s.Loan, s.Claim, s.Settings),
		WalletHandler: wallethandlers.New(s.Loan),
		AdminHandler:  adminhandlers.New(s.Loan, s.Claim, s.Settings),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/api/wallet", h.WalletHandler.GetWallet)
		r.Route("/api/loan", func(r chi.Router) {
			r.Post("/apply", h.LoanHandler.Apply)
			r.Post("/preview", h.LoanHandler.Preview)
			r.Post("/initiate", h.LoanHandler.Initiate)
			r.Get("/status", h.LoanHandler.Status)
			r.Get("/details", h.LoanHandler.Details)
			r.Post("/repay", h.LoanHandler.Repay)
			r.Post("/manual-repay", h.LoanHandler.ManualRepay)
			r.Get("/repayments", h.LoanHandler.History)
			r.Get("/settings", h.LoanHandler.Settings)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(auth.AdminMiddleware)

			r.Route("/loans", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListLoans)
				r.Get("/{id}", h.AdminHandler.GetLoan)
				r.Post("/{id}/approve", h.AdminHandler.ApproveLoan)
				r.Post("/{id}/decline", h.AdminHandler.DeclineLoan)
			})
			r.Route("/claims", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListClaims)
				r.Post("/{id}/approve", h.AdminHandler.ApproveClaim)
				r.Post("/{id}/reject", h.AdminHandler.RejectClaim)
			})
			r.Get("/repayments", h.AdminHandler.ListRepayments)
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.AdminHandler.GetSettings)
				r.Put("/", h.AdminHandler.UpdateSettings)
			})
			r.Put("/users/{id}/eligible-amount", h.AdminHandler.SetEligibleAmount)
		})
	})

	return r
}
