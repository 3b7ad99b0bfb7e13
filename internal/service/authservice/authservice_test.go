package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/pkg/apperrors"
	"github.com/quikcash/loanledger/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name         string
		phone        string
		password     string
		prepareMock  func()
		expectedCode string
	}{
		{
			name:     "Successful registration",
			phone:    "+15550100",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByPhone(context.Background(), "+15550100").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 1
						return user, nil
					})
			},
		},
		{
			name:     "Phone already registered",
			phone:    "+15550100",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByPhone(context.Background(), "+15550100").
					Return(&domain.User{ID: 1, Phone: "+15550100"}, nil)
			},
			expectedCode: apperrors.CodeInvalidState,
		},
		{
			name:     "Storage error on lookup",
			phone:    "+15550100",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByPhone(context.Background(), "+15550100").
					Return(nil, errors.New("db error"))
			},
			expectedCode: apperrors.CodeStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), "Jane Doe", tt.phone, tt.password)
			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, apperrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
				assert.Equal(t, "hashedpassword", user.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode string
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				userRepo.EXPECT().FindByPhone(context.Background(), "+15550100").
					Return(&domain.User{ID: 1, Phone: "+15550100", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
		},
		{
			name: "Unknown phone",
			prepareMock: func() {
				userRepo.EXPECT().FindByPhone(context.Background(), "+15550100").Return(nil, nil)
			},
			expectedCode: apperrors.CodeUnauthenticated,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByPhone(context.Background(), "+15550100").
					Return(&domain.User{ID: 1, Phone: "+15550100", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(false)
			},
			expectedCode: apperrors.CodeUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), "+15550100", "testpassword")
			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, apperrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	t.Run("Token issued", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, false, gomock.Any()).Return("token", nil)

		token, err := service.GenerateToken(1, false)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Signing failure", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, true, gomock.Any()).Return("", errors.New("sign error"))

		_, err := service.GenerateToken(1, true)
		assert.Error(t, err)
	})
}
