package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"limoride/internal/logging"
	"limoride/internal/repository"
)

// JobService runs scheduled maintenance over the session store.
type JobService struct {
	Store repository.SessionStore
}

func NewJobService(store repository.SessionStore) *JobService {
	return &JobService{Store: store}
}

// PurgeExpiredSessions drops abandoned wizard sessions past their TTL.
func (s *JobService) PurgeExpiredSessions(ctx context.Context) error {
	purged, err := s.Store.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to purge expired sessions: %w", err)
	}
	if purged > 0 {
		logging.GetLogger().Info("cron job: purged expired wizard sessions", zap.Int("count", purged))
	}
	return nil
}
