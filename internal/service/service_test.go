package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/quikcash/loanledger/internal/pg"
	"github.com/quikcash/loanledger/internal/repo"
	"github.com/quikcash/loanledger/pkg/upload"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	uploads, err := upload.New(t.TempDir())
	require.NoError(t, err)

	repos := repo.New(mockDB, mockTxManager)
	services := New(repos, nil, uploads, mockTxManager)

	assert.NotNil(t, services.Auth)
	assert.NotNil(t, services.Loan)
	assert.NotNil(t, services.Claim)
	assert.NotNil(t, services.Settings)
	assert.NotNil(t, services.Settlement)
}
