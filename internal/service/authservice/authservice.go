package authservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/pkg/apperrors"
	"github.com/quikcash/loanledger/pkg/auth"
)

type Repo interface {
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates an account keyed by phone number. The wallet balance
// and eligible amount start at their configured defaults.
func (s *Service) Register(ctx context.Context, name, phone, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, apperrors.Storage(err)
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("phone", phone))
		return nil, apperrors.InvalidState("phone number already registered")
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, apperrors.Storage(err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Name:         name,
		Phone:        phone,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, apperrors.Storage(err)
	}

	zap.L().Info("user successfully registered", zap.String("phone", phone))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, phone, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, apperrors.Unauthenticated("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("phone", phone))
		return nil, apperrors.Unauthenticated("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("phone", phone))
	return user, nil
}

func (s *Service) GenerateToken(userID int, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, isAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
