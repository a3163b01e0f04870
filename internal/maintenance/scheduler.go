// Package maintenance runs scheduled housekeeping jobs, currently the
// nightly pruning of lookup history past its retention window.
package maintenance

import (
	"context"
	"fmt"
	"time"

	"lexigate/internal/config"
	"lexigate/internal/database"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type Scheduler struct {
	db   *database.DB
	cfg  *config.Config
	cron *cron.Cron
}

func NewScheduler(db *database.DB, cfg *config.Config) *Scheduler {
	return &Scheduler{
		db:   db,
		cfg:  cfg,
		cron: cron.New(),
	}
}

// Start begins the scheduled pruning job
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.PruneSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.PruneHistory(ctx); err != nil {
			log.Error().Err(err).Msg("scheduled history prune failed")
		}
	})
	if err != nil {
		return fmt.Errorf("adding cron job: %w", err)
	}

	s.cron.Start()
	log.Info().Str("schedule", s.cfg.PruneSchedule).Int("retention_days", s.cfg.RetentionDays).Msg("maintenance scheduler started")
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// PruneHistory removes lookups older than the retention window.
func (s *Scheduler) PruneHistory(ctx context.Context) error {
	pruned, err := s.db.PruneLookups(ctx, s.cfg.RetentionDays)
	if err != nil {
		return err
	}
	log.Info().Int64("pruned", pruned).Int("retention_days", s.cfg.RetentionDays).Msg("lookup history pruned")
	return nil
}
