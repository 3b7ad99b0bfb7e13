package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/quikcash/loanledger/internal/pg"
	"github.com/quikcash/loanledger/internal/repo"
	"github.com/quikcash/loanledger/internal/service"
	"github.com/quikcash/loanledger/pkg/auth"
	"github.com/quikcash/loanledger/pkg/upload"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	uploads, err := upload.New(t.TempDir())
	require.NoError(t, err)

	txManager := pg.NewMockTXManager(ctrl)
	services := service.New(repo.New(mockDB, txManager), nil, uploads, txManager)

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.LoanHandler)
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockLoanHandler := NewMockLoanHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Preview(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Initiate(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Status(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Details(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Repay(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().ManualRepay(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().History(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Settings(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Apply(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ListLoans(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetSettings(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		LoanHandler:   mockLoanHandler,
		WalletHandler: mockWalletHandler,
		AdminHandler:  mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &auth.JWTService{}
	userToken, err := jwtService.GenerateJWT(1, false, time.Now().Add(time.Hour))
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT(2, true, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"GET", "/api/wallet", "", http.StatusUnauthorized},
		{"GET", "/api/wallet", userToken, http.StatusOK},
		{"POST", "/api/loan/preview", userToken, http.StatusOK},
		{"POST", "/api/loan/initiate", "", http.StatusUnauthorized},
		{"GET", "/api/loan/status", userToken, http.StatusOK},
		{"GET", "/api/loan/settings", userToken, http.StatusOK},
		{"POST", "/api/loan/manual-repay", userToken, http.StatusOK},
		{"GET", "/api/admin/loans", "", http.StatusUnauthorized},
		{"GET", "/api/admin/loans", userToken, http.StatusForbidden},
		{"GET", "/api/admin/loans", adminToken, http.StatusOK},
		{"GET", "/api/admin/settings", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
