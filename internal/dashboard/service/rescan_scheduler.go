package service

import (
	"context"
	"time"

	"golang-market-screener/internal/dashboard/config"
	"golang-market-screener/internal/dashboard/repository"
	"golang-market-screener/internal/entity"
	"golang-market-screener/pkg/logger"

	"github.com/robfig/cron/v3"
)

// RescanScheduler resubmits scans on a cron schedule. It reuses the most
// recently submitted configuration when one is stored, falling back to
// the configured defaults.
type RescanScheduler interface {
	Start(ctx context.Context)
}

type rescanScheduler struct {
	cfg           *config.Config
	log           *logger.Logger
	controller    ScanController
	scanStateRepo repository.ScanStateRepository
	schedule      cron.Schedule
}

// NewRescanScheduler parses the configured cron expression. A nil
// scheduler is never returned; an empty expression yields one that logs
// and exits immediately on Start.
func NewRescanScheduler(cfg *config.Config, log *logger.Logger, controller ScanController, scanStateRepo repository.ScanStateRepository) (RescanScheduler, error) {
	s := &rescanScheduler{
		cfg:           cfg,
		log:           log,
		controller:    controller,
		scanStateRepo: scanStateRepo,
	}

	if cfg.Rescan.CronExpression == "" {
		return s, nil
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(cfg.Rescan.CronExpression)
	if err != nil {
		return nil, err
	}
	s.schedule = schedule
	return s, nil
}

// Start runs the schedule until the context is cancelled.
func (s *rescanScheduler) Start(ctx context.Context) {
	if s.schedule == nil {
		s.log.Info("Scheduled rescans disabled")
		return
	}

	next := s.schedule.Next(time.Now())
	s.log.Info("Rescan scheduler started",
		logger.StringField("cron_expression", s.cfg.Rescan.CronExpression),
		logger.StringField("next_run", next.Format(time.RFC3339)))

	for {
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("Rescan scheduler stopping")
			return
		case <-timer.C:
			s.runOnce(ctx)
			next = s.schedule.Next(time.Now())
		}
	}
}

func (s *rescanScheduler) runOnce(ctx context.Context) {
	scanCfg := s.defaultConfig()
	if s.scanStateRepo != nil {
		stored, err := s.scanStateRepo.LoadLastConfig(ctx)
		if err != nil {
			s.log.Warn("Failed to load last scan config", logger.ErrorField(err))
		} else if stored != nil {
			scanCfg = *stored
		}
	}

	jobID, err := s.controller.Submit(ctx, scanCfg)
	if err != nil {
		s.log.Error("Scheduled rescan failed to start", logger.ErrorField(err))
		return
	}
	s.log.Info("Scheduled rescan submitted",
		logger.StringField("job_id", jobID),
		logger.StringField("sector", scanCfg.Sector))
}

func (s *rescanScheduler) defaultConfig() entity.ScanConfig {
	return entity.ScanConfig{
		Sector:          s.cfg.Rescan.Sector,
		UniverseSize:    s.cfg.Rescan.UniverseSize,
		MaxDaysToExpiry: s.cfg.Rescan.MaxDaysToExpiry,
		LookbackWindow:  s.cfg.Rescan.LookbackWindow,
	}
}
