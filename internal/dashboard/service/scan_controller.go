package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang-market-screener/internal/dashboard/config"
	"golang-market-screener/internal/dashboard/repository"
	"golang-market-screener/internal/entity"
	"golang-market-screener/pkg/common"
	"golang-market-screener/pkg/logger"
	"golang-market-screener/pkg/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Scan lifecycle states as exposed to the views. The terminal states
// share their names with the persisted job statuses.
const (
	ScanStateIdle      = "idle"
	ScanStatePending   = entity.ScanStatusPending
	ScanStateCompleted = entity.ScanStatusCompleted
	ScanStateFailed    = entity.ScanStatusFailed
)

var (
	// ErrValidation marks a scan configuration rejected before submission.
	ErrValidation = errors.New("invalid scan configuration")
	// ErrScanFailed marks a scan the remote service reported as failed.
	ErrScanFailed = errors.New("scan failed")
)

// ResultConsumer receives terminal scan outcomes. Each consumer is
// notified exactly once per finished job.
type ResultConsumer interface {
	OnScanCompleted(cfg entity.ScanConfig, rows []entity.ResultRow)
	OnScanFailed(cfg entity.ScanConfig, errorMessage string)
}

// ResultConsumerFunc adapts a completion handler to the ResultConsumer
// interface, ignoring failures.
type ResultConsumerFunc func(cfg entity.ScanConfig, rows []entity.ResultRow)

// OnScanCompleted calls f.
func (f ResultConsumerFunc) OnScanCompleted(cfg entity.ScanConfig, rows []entity.ResultRow) {
	f(cfg, rows)
}

// OnScanFailed is a no-op.
func (f ResultConsumerFunc) OnScanFailed(entity.ScanConfig, string) {}

// ScanSnapshot is a point-in-time view of the controller state.
type ScanSnapshot struct {
	State        string
	JobID        string
	Config       entity.ScanConfig
	Progress     int
	RowCount     int
	ErrorMessage string
	SubmittedAt  time.Time
}

// Err returns the terminal failure as an error, or nil when the job has
// not failed. The remote service's message is carried verbatim.
func (s ScanSnapshot) Err() error {
	if s.State != ScanStateFailed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrScanFailed, s.ErrorMessage)
}

// ScanController owns the scan job lifecycle: submission, status
// polling, terminal transitions and consumer notification. All state is
// guarded by one mutex and mutated from one poll goroutine at a time, so
// status ticks apply strictly in order.
type ScanController interface {
	Submit(ctx context.Context, cfg entity.ScanConfig) (string, error)
	RegisterConsumer(consumer ResultConsumer)
	Snapshot() ScanSnapshot
	Results() []entity.ResultRow
	Close()
}

type scanController struct {
	cfg           *config.Config
	log           *logger.Logger
	screenerRepo  repository.ScreenerAPIRepository
	jobRepo       repository.ScanJobRepository
	scanStateRepo repository.ScanStateRepository

	mu           sync.Mutex
	state        string
	jobID        string
	remoteTaskID string
	scanConfig   entity.ScanConfig
	progress     int
	rows         []entity.ResultRow
	errorMessage string
	submittedAt  time.Time
	cancelPoll   context.CancelFunc
	consumers    []ResultConsumer
}

// NewScanController creates an idle scan controller. The job and scan
// state repositories are optional; without them completed jobs are not
// recorded.
func NewScanController(cfg *config.Config, log *logger.Logger, screenerRepo repository.ScreenerAPIRepository, jobRepo repository.ScanJobRepository, scanStateRepo repository.ScanStateRepository) ScanController {
	return &scanController{
		cfg:           cfg,
		log:           log,
		screenerRepo:  screenerRepo,
		jobRepo:       jobRepo,
		scanStateRepo: scanStateRepo,
		state:         ScanStateIdle,
	}
}

// RegisterConsumer adds a downstream consumer of completed scans.
func (c *scanController) RegisterConsumer(consumer ResultConsumer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.consumers = append(c.consumers, consumer)
}

// Submit starts a new scan job. A job already in flight is superseded:
// its poll loop is cancelled and any responses still in the air are
// discarded. The returned identifier is the controller's local handle,
// not the remote task id.
func (c *scanController) Submit(ctx context.Context, scanCfg entity.ScanConfig) (string, error) {
	if err := scanCfg.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	c.mu.Lock()
	if c.cancelPoll != nil {
		c.cancelPoll()
		c.cancelPoll = nil
	}
	c.jobID = ""
	c.mu.Unlock()

	// A submission failure never becomes a job: the caller gets the
	// error and the controller is left idle.
	taskID, err := c.screenerRepo.StartScan(ctx, scanCfg)
	if err != nil {
		c.mu.Lock()
		c.state = ScanStateIdle
		c.errorMessage = err.Error()
		c.mu.Unlock()
		return "", fmt.Errorf("failed to start scan: %w", err)
	}

	jobID := uuid.NewString()
	pollCtx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.state = ScanStatePending
	c.jobID = jobID
	c.remoteTaskID = taskID
	c.scanConfig = scanCfg
	c.progress = c.cfg.Poller.InitialProgress
	c.rows = nil
	c.errorMessage = ""
	c.submittedAt = time.Now()
	c.cancelPoll = cancel
	c.mu.Unlock()

	c.log.InfoContext(ctx, "Scan submitted",
		logger.StringField("job_id", jobID),
		logger.StringField("task_id", taskID),
		logger.StringField("sector", scanCfg.Sector))

	if c.scanStateRepo != nil {
		if err := c.scanStateRepo.SaveLastConfig(ctx, scanCfg); err != nil {
			c.log.Warn("Failed to persist last scan config", logger.ErrorField(err))
		}
	}

	utils.GoSafe(func() {
		c.pollLoop(pollCtx, jobID, taskID)
	})

	return jobID, nil
}

// Snapshot returns the current lifecycle state.
func (c *scanController) Snapshot() ScanSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ScanSnapshot{
		State:        c.state,
		JobID:        c.jobID,
		Config:       c.scanConfig,
		Progress:     c.progress,
		RowCount:     len(c.rows),
		ErrorMessage: c.errorMessage,
		SubmittedAt:  c.submittedAt,
	}
}

// Results returns the last completed result set. Callers treat the rows
// as read-only; projections copy before reordering.
func (c *scanController) Results() []entity.ResultRow {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows
}

// Close stops the active poll loop, if any.
func (c *scanController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelPoll != nil {
		c.cancelPoll()
		c.cancelPoll = nil
	}
	c.jobID = ""
	c.state = ScanStateIdle
}

func (c *scanController) pollLoop(ctx context.Context, jobID string, taskID string) {
	interval := c.cfg.Poller.Interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.pollOnce(ctx, jobID, taskID) {
				return
			}
		}
	}
}

// pollOnce fetches the remote status and applies it. It returns true
// when the loop should stop: the job reached a terminal state or this
// loop no longer owns the controller.
func (c *scanController) pollOnce(ctx context.Context, jobID string, taskID string) bool {
	status, err := c.screenerRepo.GetScanStatus(ctx, taskID)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		// Transient transport failures never fail the job; the next
		// tick retries.
		c.log.DebugContext(ctx, "Scan status poll failed",
			logger.StringField("job_id", jobID),
			logger.ErrorField(err))
		return false
	}

	c.mu.Lock()
	if c.jobID != jobID {
		c.mu.Unlock()
		return true
	}

	switch status.Status {
	case common.RemoteStatusCompleted:
		c.state = ScanStateCompleted
		c.progress = 100
		c.rows = status.Data
		c.errorMessage = ""
		consumersCopy := make([]ResultConsumer, len(c.consumers))
		copy(consumersCopy, c.consumers)
		scanCfg := c.scanConfig
		rows := c.rows
		submittedAt := c.submittedAt
		c.cancelPoll = nil
		c.mu.Unlock()

		c.log.InfoContext(ctx, "Scan completed",
			logger.StringField("job_id", jobID),
			logger.IntField("row_count", len(rows)))

		for _, consumer := range consumersCopy {
			consumer.OnScanCompleted(scanCfg, rows)
		}
		c.persistJob(jobID, taskID, ScanStateCompleted, scanCfg, rows, "", submittedAt)
		return true

	case common.RemoteStatusFailed:
		c.state = ScanStateFailed
		c.errorMessage = status.Error
		c.rows = nil
		scanCfg := c.scanConfig
		submittedAt := c.submittedAt
		consumersCopy := make([]ResultConsumer, len(c.consumers))
		copy(consumersCopy, c.consumers)
		c.cancelPoll = nil
		c.mu.Unlock()

		c.log.ErrorContext(ctx, "Scan failed",
			logger.StringField("job_id", jobID),
			logger.StringField("error_message", status.Error))

		for _, consumer := range consumersCopy {
			consumer.OnScanFailed(scanCfg, status.Error)
		}
		c.persistJob(jobID, taskID, ScanStateFailed, scanCfg, nil, status.Error, submittedAt)
		return true

	default:
		if status.Progress != nil {
			reported := *status.Progress
			if reported > 99 {
				reported = 99
			}
			if reported > c.progress {
				c.progress = reported
			}
		}
		c.mu.Unlock()
		return false
	}
}

// persistJob records a terminal job in the history table. Failures are
// logged and otherwise ignored; history is advisory.
func (c *scanController) persistJob(jobID string, taskID string, state string, scanCfg entity.ScanConfig, rows []entity.ResultRow, errorMessage string, submittedAt time.Time) {
	if c.jobRepo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rawConfig, err := json.Marshal(scanCfg)
	if err != nil {
		c.log.Error("Failed to marshal scan config", logger.ErrorField(err))
		return
	}

	job := &entity.ScanJob{
		LocalID:      jobID,
		RemoteTaskID: taskID,
		Status:       state,
		Config:       datatypes.JSON(rawConfig),
		SubmittedAt:  submittedAt,
		CompletedAt:  sql.NullTime{Time: time.Now(), Valid: true},
	}

	if state == ScanStateCompleted {
		job.Progress = 100
		rawRows, err := json.Marshal(rows)
		if err != nil {
			c.log.Error("Failed to marshal result rows", logger.ErrorField(err))
			return
		}
		job.ResultRows = datatypes.JSON(rawRows)

		tickers := make(pq.StringArray, 0, len(rows))
		for _, row := range rows {
			tickers = append(tickers, row.Ticker)
		}
		job.Tickers = tickers
	} else {
		job.ErrorMessage = sql.NullString{String: errorMessage, Valid: errorMessage != ""}
	}

	if err := c.jobRepo.Create(ctx, job); err != nil {
		c.log.Error("Failed to record scan job", logger.ErrorField(err), logger.StringField("job_id", jobID))
	}
}
