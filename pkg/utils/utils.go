package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/quikcash/loanledger/pkg/apperrors"
)

type Response struct {
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Response{Message: message})
}

var statusByCode = map[string]int{
	apperrors.CodeValidation:        http.StatusBadRequest,
	apperrors.CodeNotFound:          http.StatusNotFound,
	apperrors.CodeInvalidState:      http.StatusConflict,
	apperrors.CodeExceedsBalance:    http.StatusUnprocessableEntity,
	apperrors.CodeInsufficientFunds: http.StatusPaymentRequired,
	apperrors.CodeAlreadyProcessed:  http.StatusConflict,
	apperrors.CodeUnauthenticated:   http.StatusUnauthorized,
	apperrors.CodeUnauthorized:      http.StatusForbidden,
	apperrors.CodeStorageFailure:    http.StatusInternalServerError,
}

// RespondWithAppError maps a business error to its HTTP status and
// writes the error message. Unknown errors become a plain 500.
func RespondWithAppError(w http.ResponseWriter, err error) {
	status, ok := statusByCode[apperrors.CodeOf(err)]
	if !ok {
		status = http.StatusInternalServerError
	}
	RespondWithError(w, status, apperrors.MessageOf(err))
}
