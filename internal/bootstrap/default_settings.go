package bootstrap

import (
	"context"

	"github.com/proxis-hn/proxis/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureDefaultSettings creates the global settings row when the service
// starts, so the first GET never races an empty table.
func EnsureDefaultSettings(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	s, err := repo.NewSettingRepo(db).GetOrCreate(ctx)
	if err != nil {
		return err
	}
	log.Sugar().Infow("settings ready",
		"currency", s.Currency,
		"locale", s.Locale)
	return nil
}
