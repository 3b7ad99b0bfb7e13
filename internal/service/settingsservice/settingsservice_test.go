package settingsservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/pkg/apperrors"
)

func NewMock(t *testing.T) (*Service, *MockSettingsRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockSettingsRepo(ctrl)
	service := New(repo, nil, time.Minute)
	defer ctrl.Finish()
	return service, repo
}

func validSettings() *domain.LoanSettings {
	return &domain.LoanSettings{
		ID: 1,
		OverdueRule: domain.OverdueRule{
			Kind:  domain.RateKindPercent,
			Value: decimal.NewFromInt(10),
		},
		EligibleAmount: decimal.NewFromInt(5000),
		MinAmount:      decimal.NewFromInt(500),
		Terms: []domain.LoanTerm{
			{Days: 7, Kind: domain.RateKindPercent, Value: decimal.NewFromInt(25)},
			{Days: 14, Kind: domain.RateKindPercent, Value: decimal.NewFromInt(40)},
		},
	}
}

func TestSnapshot(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  string
		expectedError error
	}{
		{
			name: "Settings loaded from storage",
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any()).Return(validSettings(), nil)
			},
		},
		{
			name: "Settings row missing",
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any()).Return(nil, nil)
			},
			expectedCode: apperrors.CodeNotFound,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: apperrors.CodeStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			settings, err := service.Snapshot(context.Background())
			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, apperrors.CodeOf(err))
				assert.Nil(t, settings)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, settings)
				assert.NotNil(t, settings.FindTerm(7))
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name         string
		settings     func() *domain.LoanSettings
		prepareMock  func()
		expectedCode string
	}{
		{
			name:     "Valid settings persisted",
			settings: validSettings,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any()).Return(validSettings(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *domain.LoanSettings) (*domain.LoanSettings, error) {
						return s, nil
					})
			},
		},
		{
			name: "Empty term catalog rejected",
			settings: func() *domain.LoanSettings {
				s := validSettings()
				s.Terms = nil
				return s
			},
			prepareMock:  func() {},
			expectedCode: apperrors.CodeValidation,
		},
		{
			name: "Duplicate term duration rejected",
			settings: func() *domain.LoanSettings {
				s := validSettings()
				s.Terms = append(s.Terms, domain.LoanTerm{Days: 7, Kind: domain.RateKindFixed, Value: decimal.NewFromInt(100)})
				return s
			},
			prepareMock:  func() {},
			expectedCode: apperrors.CodeValidation,
		},
		{
			name: "Unknown rate kind rejected",
			settings: func() *domain.LoanSettings {
				s := validSettings()
				s.OverdueRule.Kind = "compound"
				return s
			},
			prepareMock:  func() {},
			expectedCode: apperrors.CodeValidation,
		},
		{
			name: "Negative rate rejected",
			settings: func() *domain.LoanSettings {
				s := validSettings()
				s.Terms[0].Value = decimal.NewFromInt(-1)
				return s
			},
			prepareMock:  func() {},
			expectedCode: apperrors.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			updated, err := service.Update(context.Background(), tt.settings())
			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, apperrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, updated)
			}
		})
	}
}
