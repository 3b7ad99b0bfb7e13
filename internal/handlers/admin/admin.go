package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/dto"
	"github.com/quikcash/loanledger/internal/service/settlementservice"
	"github.com/quikcash/loanledger/pkg/utils"
	"github.com/quikcash/loanledger/pkg/validate"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Loans interface {
	GetLoan(ctx context.Context, loanID int) (*domain.LoanTransaction, error)
	ListLoans(ctx context.Context, status string, limit, offset int) ([]domain.LoanTransaction, int, error)
	Approve(ctx context.Context, loanID int) (*domain.LoanTransaction, error)
	Decline(ctx context.Context, loanID int, reason string) (*domain.LoanTransaction, error)
	ListRepayments(ctx context.Context, limit, offset int) ([]domain.Repayment, int, error)
	SetEligibleAmount(ctx context.Context, userID int, amount decimal.Decimal) error
}

type Claims interface {
	Approve(ctx context.Context, claimID int) (*settlementservice.SettleResult, error)
	Reject(ctx context.Context, claimID int) error
	List(ctx context.Context, status string, limit, offset int) ([]domain.ManualPaymentClaim, int, error)
}

type Settings interface {
	Snapshot(ctx context.Context) (*domain.LoanSettings, error)
	Update(ctx context.Context, settings *domain.LoanSettings) (*domain.LoanSettings, error)
}

type AdminHandler struct {
	loanService     Loans
	claimService    Claims
	settingsService Settings
}

func New(loanService Loans, claimService Claims, settingsService Settings) *AdminHandler {
	return &AdminHandler{
		loanService:     loanService,
		claimService:    claimService,
		settingsService: settingsService,
	}
}

// ListLoans godoc
//
//	@Summary		List loans
//	@Description	Page through loans, optionally filtered by status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	dto.LoanListResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/loans [get]
func (h *AdminHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	loans, total, err := h.loanService.ListLoans(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	out := make([]dto.LoanResponseDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *dto.NewLoanResponseDTO(&loans[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanListResponseDTO{Loans: out, Total: total})
}

// GetLoan godoc
//
//	@Summary		Get one loan
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Loan ID"
//	@Success		200	{object}	dto.LoanResponseDTO
//	@Failure		404	{object}	utils.Response	"Loan not found"
//	@Router			/api/admin/loans/{id} [get]
func (h *AdminHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	loan, err := h.loanService.GetLoan(r.Context(), id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanResponseDTO(loan))
}

// ApproveLoan godoc
//
//	@Summary		Approve a pending loan
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Loan ID"
//	@Success		200	{object}	dto.LoanResponseDTO
//	@Failure		404	{object}	utils.Response	"Loan not found"
//	@Failure		409	{object}	utils.Response	"Loan is not pending"
//	@Router			/api/admin/loans/{id}/approve [post]
func (h *AdminHandler) ApproveLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	loan, err := h.loanService.Approve(r.Context(), id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanResponseDTO(loan))
}

// DeclineLoan godoc
//
//	@Summary		Decline a pending loan
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Loan ID"
//	@Param			request	body		dto.DeclineLoanRequestDTO	false	"Decline reason"
//	@Success		200		{object}	dto.LoanResponseDTO
//	@Failure		404		{object}	utils.Response	"Loan not found"
//	@Failure		409		{object}	utils.Response	"Loan is not pending"
//	@Router			/api/admin/loans/{id}/decline [post]
func (h *AdminHandler) DeclineLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.DeclineLoanRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	loan, err := h.loanService.Decline(r.Context(), id, req.Reason)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanResponseDTO(loan))
}

// ListClaims godoc
//
//	@Summary		List manual payment claims
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	dto.ClaimListResponseDTO
//	@Router			/api/admin/claims [get]
func (h *AdminHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	claims, total, err := h.claimService.List(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	out := make([]dto.ClaimResponseDTO, 0, len(claims))
	for i := range claims {
		out = append(out, *dto.NewClaimResponseDTO(&claims[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimListResponseDTO{Claims: out, Total: total})
}

// ApproveClaim godoc
//
//	@Summary		Approve a payment claim
//	@Description	Settle the claimed amount against the loan and mark the claim approved
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Claim ID"
//	@Success		200	{object}	dto.LoanResponseDTO	"Loan after settlement"
//	@Failure		404	{object}	utils.Response	"Claim not found"
//	@Failure		409	{object}	utils.Response	"Claim already processed"
//	@Failure		422	{object}	utils.Response	"Amount exceeds outstanding balance"
//	@Router			/api/admin/claims/{id}/approve [post]
func (h *AdminHandler) ApproveClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	result, err := h.claimService.Approve(r.Context(), id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanResponseDTO(result.Loan))
}

// RejectClaim godoc
//
//	@Summary		Reject a payment claim
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Claim ID"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Claim not found"
//	@Failure		409	{object}	utils.Response	"Claim already processed"
//	@Router			/api/admin/claims/{id}/reject [post]
func (h *AdminHandler) RejectClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.claimService.Reject(r.Context(), id); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Claim rejected"})
}

// ListRepayments godoc
//
//	@Summary		List all repayments
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	dto.RepaymentListResponseDTO
//	@Router			/api/admin/repayments [get]
func (h *AdminHandler) ListRepayments(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	repayments, total, err := h.loanService.ListRepayments(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RepaymentListResponseDTO{
		Repayments: dto.NewRepaymentResponseDTOs(repayments),
		Total:      total,
	})
}

// GetSettings godoc
//
//	@Summary		Current loan settings
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LoanSettingsResponseDTO
//	@Router			/api/admin/settings [get]
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Snapshot(r.Context())
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanSettingsResponseDTO(settings))
}

// UpdateSettings godoc
//
//	@Summary		Update loan settings
//	@Description	Replace the term catalog, overdue rule, limits and manual payment bank details
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoanSettingsUpdateRequestDTO	true	"New settings"
//	@Success		200		{object}	dto.LoanSettingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid settings"
//	@Router			/api/admin/settings [put]
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanSettingsUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	terms := make([]domain.LoanTerm, 0, len(req.Terms))
	for _, term := range req.Terms {
		terms = append(terms, domain.LoanTerm{Days: term.Days, Kind: term.Kind, Value: term.Value})
	}
	updated, err := h.settingsService.Update(r.Context(), &domain.LoanSettings{
		OverdueRule:    domain.OverdueRule{Kind: req.OverdueRule.Kind, Value: req.OverdueRule.Value},
		EligibleAmount: req.EligibleAmount,
		MinAmount:      req.MinAmount,
		Notice:         req.Notice,
		BankName:       req.BankName,
		AccountName:    req.AccountName,
		AccountNumber:  req.AccountNumber,
		Terms:          terms,
	})
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanSettingsResponseDTO(updated))
}

// SetEligibleAmount godoc
//
//	@Summary		Set a user's eligible amount
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"User ID"
//	@Param			request	body		dto.EligibleAmountRequestDTO	true	"New limit"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/admin/users/{id}/eligible-amount [put]
func (h *AdminHandler) SetEligibleAmount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.EligibleAmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.loanService.SetEligibleAmount(r.Context(), id, req.Amount); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Eligible amount updated"})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
