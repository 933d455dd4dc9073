package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"bloodlifesaver/api/internal/models"
)

type pendingCounter interface {
	CountRequestsByStatus(ctx context.Context, status models.RequestStatus) (int, error)
	OldestPendingCreatedAt(ctx context.Context) (*time.Time, error)
}

// Scheduler runs the daily pending-backlog report: a log line admins can
// alert on when requests sit unreviewed.
type Scheduler struct {
	cron  *cron.Cron
	stats pendingCounter
	log   zerolog.Logger
}

func NewScheduler(stats pendingCounter, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:  c,
		stats: stats,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if s.stats == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 8 * * *", s.reportPendingBacklog); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits up to five seconds for a running job.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) reportPendingBacklog() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.stats.CountRequestsByStatus(ctx, models.StatusPending)
	if err != nil {
		s.log.Error().Err(err).Msg("pending backlog count failed")
		return
	}

	event := s.log.Info()
	if count > 0 {
		event = s.log.Warn()
	}
	event = event.Int("pending_requests", count)

	if oldest, err := s.stats.OldestPendingCreatedAt(ctx); err != nil {
		s.log.Error().Err(err).Msg("oldest pending lookup failed")
	} else if oldest != nil {
		event = event.Dur("oldest_pending_age", time.Since(*oldest))
	}

	event.Msg("daily pending request backlog")
}
