package loan

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/dto"
	"github.com/quikcash/loanledger/internal/service/claimservice"
	"github.com/quikcash/loanledger/internal/service/loanservice"
	"github.com/quikcash/loanledger/pkg/auth"
	"github.com/quikcash/loanledger/pkg/utils"
	"github.com/quikcash/loanledger/pkg/validate"
)

type Service interface {
	PreviewLoan(ctx context.Context, userID int, amount decimal.Decimal, days int) (*loanservice.Preview, error)
	Initiate(ctx context.Context, userID int, amount decimal.Decimal, days int) (*domain.LoanTransaction, error)
	Status(ctx context.Context, userID int) (*loanservice.Status, error)
	Details(ctx context.Context, userID int) (*loanservice.Details, error)
	Repay(ctx context.Context, userID int, amount decimal.Decimal) (*domain.LoanTransaction, error)
	History(ctx context.Context, userID int) ([]domain.Repayment, error)
	Apply(ctx context.Context, userID int, req loanservice.ApplyRequest) (*domain.LoanProfile, error)
}

type Claims interface {
	Submit(ctx context.Context, userID int, req claimservice.SubmitRequest) (*domain.ManualPaymentClaim, error)
}

type Settings interface {
	Snapshot(ctx context.Context) (*domain.LoanSettings, error)
}

type LoanHandler struct {
	loanService     Service
	claimService    Claims
	settingsService Settings
}

func New(loanService Service, claimService Claims, settingsService Settings) *LoanHandler {
	return &LoanHandler{
		loanService:     loanService,
		claimService:    claimService,
		settingsService: settingsService,
	}
}

// Preview godoc
//
//	@Summary		Quote a loan
//	@Description	Compute interest, total owed and due date for an amount and duration without creating a loan
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoanQuoteRequestDTO	true	"Quote request payload"
//	@Success		200		{object}	dto.LoanQuoteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or duration"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Amount exceeds eligible limit"
//	@Router			/api/loan/preview [post]
func (h *LoanHandler) Preview(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.LoanQuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	preview, err := h.loanService.PreviewLoan(r.Context(), userID, req.Amount, req.Days)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanQuoteResponseDTO{
		Principal: preview.Principal,
		Interest:  preview.Interest,
		TotalOwed: preview.TotalOwed,
		TermDays:  preview.TermDays,
		DueDate:   preview.DueDate,
	})
}

// Initiate godoc
//
//	@Summary		Take a loan
//	@Description	Create a pending loan for the authenticated user
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoanQuoteRequestDTO	true	"Loan request payload"
//	@Success		201		{object}	dto.LoanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or duration"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"An open loan already exists"
//	@Failure		422		{object}	utils.Response	"Amount exceeds eligible limit"
//	@Router			/api/loan/initiate [post]
func (h *LoanHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.LoanQuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	loan, err := h.loanService.Initiate(r.Context(), userID, req.Amount, req.Days)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewLoanResponseDTO(loan))
}

// Status godoc
//
//	@Summary		Loan status
//	@Description	Report application form state and the latest loan, with accrual refreshed
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LoanStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/loan/status [get]
func (h *LoanHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.loanService.Status(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanStatusResponseDTO{
		HasCompletedForm: status.HasCompletedForm,
		Loan:             dto.NewLoanResponseDTO(status.Loan),
	})
}

// Details godoc
//
//	@Summary		Loan details
//	@Description	Latest loan with the full repayment trail
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LoanDetailsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No loan on record"
//	@Router			/api/loan/details [get]
func (h *LoanHandler) Details(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	details, err := h.loanService.Details(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanDetailsResponseDTO{
		Loan:       dto.NewLoanResponseDTO(details.Loan),
		Repayments: dto.NewRepaymentResponseDTOs(details.Repayments),
	})
}

// Repay godoc
//
//	@Summary		Repay from wallet
//	@Description	Settle a payment against the active loan using the in-app wallet
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RepayRequestDTO	true	"Repayment payload"
//	@Success		200		{object}	dto.LoanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		404		{object}	utils.Response	"No active loan"
//	@Failure		422		{object}	utils.Response	"Amount exceeds outstanding balance"
//	@Router			/api/loan/repay [post]
func (h *LoanHandler) Repay(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RepayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	loan, err := h.loanService.Repay(r.Context(), userID, req.Amount)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanResponseDTO(loan))
}

// ManualRepay godoc
//
//	@Summary		Claim a bank transfer payment
//	@Description	Record an out-of-band payment claim for review; the loan is unaffected until approval
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ManualRepayRequestDTO	true	"Claim payload"
//	@Success		201		{object}	dto.ClaimResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid claim"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"No active loan"
//	@Router			/api/loan/manual-repay [post]
func (h *LoanHandler) ManualRepay(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ManualRepayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	claim, err := h.claimService.Submit(r.Context(), userID, claimservice.SubmitRequest{
		SenderName: req.SenderName,
		Amount:     req.Amount,
		Note:       req.Note,
	})
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewClaimResponseDTO(claim))
}

// History godoc
//
//	@Summary		Repayment history
//	@Description	All repayments recorded for the authenticated user, newest first
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RepaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/loan/repayments [get]
func (h *LoanHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	repayments, err := h.loanService.History(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRepaymentResponseDTOs(repayments))
}

// Settings godoc
//
//	@Summary		Offered terms and payment details
//	@Description	The current term catalog, overdue rule, limits and bank account for manual transfers
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LoanSettingsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/loan/settings [get]
func (h *LoanHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Snapshot(r.Context())
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanSettingsResponseDTO(settings))
}

// Apply godoc
//
//	@Summary		Submit the loan application form
//	@Description	Store the applicant profile with guarantors and identity images
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyRequestDTO	true	"Application form payload"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid form"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Form already submitted"
//	@Router			/api/loan/apply [post]
func (h *LoanHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.loanService.Apply(r.Context(), userID, loanservice.ApplyRequest{
		Name:                   req.Name,
		Phone:                  req.Phone,
		NIN:                    req.NIN,
		DOB:                    req.DOB,
		Address:                req.Address,
		Occupation:             req.Occupation,
		BankName:               req.BankName,
		AccountNumber:          req.AccountNumber,
		AccountName:            req.AccountName,
		Guarantor1Name:         req.Guarantor1Name,
		Guarantor1Phone:        req.Guarantor1Phone,
		Guarantor1Relationship: req.Guarantor1Relationship,
		Guarantor2Name:         req.Guarantor2Name,
		Guarantor2Phone:        req.Guarantor2Phone,
		Guarantor2Relationship: req.Guarantor2Relationship,
		PhotoBase64:            req.PhotoBase64,
		IDImageBase64:          req.IDImageBase64,
	})
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{
		Message: "Application form submitted",
	})
}
