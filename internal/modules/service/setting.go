package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const settingsCacheKey = "proxis:settings"

type SettingService interface {
	Get(ctx context.Context) (*model.Setting, error)
	Update(ctx context.Context, in UpdateSettingInput) (*model.Setting, error)
}

type settingService struct {
	r      repo.SettingRepo
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewSettingService(r repo.SettingRepo, rdb *redis.Client, ttlSec int, logger *zap.Logger) SettingService {
	if ttlSec <= 0 {
		ttlSec = 300
	}
	return &settingService{
		r:      r,
		rdb:    rdb,
		ttl:    time.Duration(ttlSec) * time.Second,
		logger: logger,
	}
}

func (s *settingService) Get(ctx context.Context) (*model.Setting, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, settingsCacheKey).Bytes()
		if err == nil {
			var cached model.Setting
			if err := sonic.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			// Corrupt cache entry, fall through to the database.
			s.rdb.Del(ctx, settingsCacheKey)
		} else if err != redis.Nil {
			s.logger.Warn("settings cache read failed", zap.Error(err))
		}
	}

	setting, err := s.r.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	s.cache(ctx, setting)
	return setting, nil
}

type UpdateSettingInput struct {
	Currency          *string
	ExchangeRate      *decimal.Decimal
	Locale            *string
	AutoBackupEnabled *bool
	BackupFrequency   *string
	LastBackupAt      *time.Time
}

func (s *settingService) Update(ctx context.Context, in UpdateSettingInput) (*model.Setting, error) {
	fields := map[string]interface{}{}
	if in.Currency != nil {
		if *in.Currency == "" {
			return nil, validationf("currency cannot be empty")
		}
		fields["currency"] = *in.Currency
	}
	if in.ExchangeRate != nil {
		if in.ExchangeRate.IsNegative() || in.ExchangeRate.IsZero() {
			return nil, validationf("exchangeRate must be positive")
		}
		fields["exchange_rate"] = *in.ExchangeRate
	}
	if in.Locale != nil {
		fields["locale"] = *in.Locale
	}
	if in.AutoBackupEnabled != nil {
		fields["auto_backup_enabled"] = *in.AutoBackupEnabled
	}
	if in.BackupFrequency != nil {
		switch *in.BackupFrequency {
		case "daily", "weekly", "monthly":
			fields["backup_frequency"] = *in.BackupFrequency
		default:
			return nil, validationf("backupFrequency must be daily, weekly or monthly")
		}
	}
	if in.LastBackupAt != nil {
		fields["last_backup_at"] = *in.LastBackupAt
	}

	setting, err := s.r.Update(ctx, fields)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, settingsCacheKey).Err(); err != nil {
			s.logger.Warn("settings cache invalidation failed", zap.Error(err))
		}
	}
	s.cache(ctx, setting)
	return setting, nil
}

func (s *settingService) cache(ctx context.Context, setting *model.Setting) {
	if s.rdb == nil {
		return
	}
	raw, err := sonic.Marshal(setting)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, settingsCacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("settings cache write failed", zap.Error(err))
	}
}
