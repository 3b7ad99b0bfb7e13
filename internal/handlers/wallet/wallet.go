package wallet

import (
	"context"
	"net/http"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/internal/dto"
	"github.com/quikcash/loanledger/pkg/auth"
	"github.com/quikcash/loanledger/pkg/utils"
)

type Service interface {
	Wallet(ctx context.Context, userID int) (*domain.User, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Wallet balance
//	@Description	Current wallet balance and eligible loan amount for the authenticated user
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.walletService.Wallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance:        user.WalletBalance,
		EligibleAmount: user.EligibleAmount,
	})
}
