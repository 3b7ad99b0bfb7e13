package settingsservice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/quikcash/loanledger/internal/domain"
	"github.com/quikcash/loanledger/pkg/apperrors"
)

const cacheKey = "loan:settings"

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.LoanSettings, error)
	Update(ctx context.Context, settings *domain.LoanSettings) (*domain.LoanSettings, error)
}

// Service serves the settings singleton. A Redis client is optional:
// when nil every Snapshot call goes straight to storage. Cache failures
// are logged and never surfaced, the database stays authoritative.
type Service struct {
	repo SettingsRepo
	rdb  *redis.Client
	ttl  time.Duration
}

func New(repo SettingsRepo, rdb *redis.Client, ttl time.Duration) *Service {
	return &Service{
		repo: repo,
		rdb:  rdb,
		ttl:  ttl,
	}
}

// Snapshot returns the current settings. Callers treat the result as
// immutable for the duration of whatever operation consumed it.
func (s *Service) Snapshot(ctx context.Context) (*domain.LoanSettings, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var settings domain.LoanSettings
			if err := json.Unmarshal(raw, &settings); err == nil {
				return &settings, nil
			}
			zap.L().Warn("can't decode cached settings", zap.Error(err))
		} else if err != redis.Nil {
			zap.L().Warn("settings cache read failed", zap.Error(err))
		}
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if settings == nil {
		return nil, apperrors.NotFound("loan settings are not configured")
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(settings); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, raw, s.ttl).Err(); err != nil {
				zap.L().Warn("settings cache write failed", zap.Error(err))
			}
		}
	}
	return settings, nil
}

func (s *Service) Update(ctx context.Context, settings *domain.LoanSettings) (*domain.LoanSettings, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if current == nil {
		return nil, apperrors.NotFound("loan settings are not configured")
	}
	settings.ID = current.ID

	updated, err := s.repo.Update(ctx, settings)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			zap.L().Warn("settings cache invalidation failed", zap.Error(err))
		}
	}
	return updated, nil
}

func validateSettings(settings *domain.LoanSettings) error {
	if len(settings.Terms) == 0 {
		return apperrors.Validation("at least one loan term is required")
	}
	seen := make(map[int]bool, len(settings.Terms))
	for _, term := range settings.Terms {
		if term.Days <= 0 {
			return apperrors.Validation("term duration must be positive")
		}
		if seen[term.Days] {
			return apperrors.Validation("duplicate term duration: %d days", term.Days)
		}
		seen[term.Days] = true
		if err := validateRate(term.Kind, term.Value); err != nil {
			return err
		}
	}
	if err := validateRate(settings.OverdueRule.Kind, settings.OverdueRule.Value); err != nil {
		return err
	}
	if settings.MinAmount.IsNegative() || settings.EligibleAmount.IsNegative() {
		return apperrors.Validation("lending limits must not be negative")
	}
	return nil
}

func validateRate(kind string, value decimal.Decimal) error {
	if kind != domain.RateKindPercent && kind != domain.RateKindFixed {
		return apperrors.Validation("unknown rate kind: %s", kind)
	}
	if value.IsNegative() {
		return apperrors.Validation("rate value must not be negative")
	}
	return nil
}
