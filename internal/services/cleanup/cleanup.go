// Package cleanup реализует фоновую очистку давно удалённых аккаунтов.
// Аккаунт, пробывший в статусе deleted дольше сконфигурированного числа
// дней, удаляется из базы окончательно.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/account-service/internal/config"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
)

// UserRemover описывает контракт окончательного удаления пользователей.
type UserRemover interface {
	RemoveUsersDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service периодически удаляет просроченные deleted-аккаунты.
type Service struct {
	repo UserRemover
	cfg  config.Cleanup
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo UserRemover, cfg config.Cleanup, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
		log:  log,
	}
}

// Run крутит тикер до отмены контекста.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Service) runOnce(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.DaysUntilDeletion)
	removed, err := s.repo.RemoveUsersDeletedBefore(ctx, cutoff)
	if err != nil {
		s.log.Error("failed to purge deleted users", sl.Err(err))
		return
	}
	if removed > 0 {
		s.log.Info("purged deleted users", slog.Int64("count", removed))
	}
}
