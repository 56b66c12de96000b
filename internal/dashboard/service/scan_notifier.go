package service

import (
	"time"

	"golang-market-screener/internal/entity"
	"golang-market-screener/pkg/logger"
	"golang-market-screener/pkg/telegram"
)

// DefaultPlaybookCount is how many long and short candidates the
// playbook surfaces.
const DefaultPlaybookCount = 6

// ScanNotifier forwards terminal scan outcomes to Telegram. It is
// registered as a result consumer on the scan controller.
type ScanNotifier struct {
	log        *logger.Logger
	notifier   telegram.Notifier
	projection ProjectionService
}

// NewScanNotifier creates a Telegram-backed scan notifier.
func NewScanNotifier(log *logger.Logger, notifier telegram.Notifier, projection ProjectionService) *ScanNotifier {
	return &ScanNotifier{log: log, notifier: notifier, projection: projection}
}

// OnScanCompleted sends the completion summary with the playbook
// candidates.
func (n *ScanNotifier) OnScanCompleted(cfg entity.ScanConfig, rows []entity.ResultRow) {
	longs, shorts := n.projection.ClassifyTopCandidates(rows, entity.ColumnVRP, DefaultPlaybookCount)
	message := telegram.FormatScanCompletedMessage(cfg, rows, longs, shorts, time.Now())
	if err := n.notifier.SendMessage(message); err != nil {
		n.log.Error("Failed to send scan completion notification", logger.ErrorField(err))
	}
}

// OnScanFailed sends the failure summary.
func (n *ScanNotifier) OnScanFailed(cfg entity.ScanConfig, errorMessage string) {
	message := telegram.FormatScanFailedMessage(cfg, errorMessage, time.Now())
	if err := n.notifier.SendMessage(message); err != nil {
		n.log.Error("Failed to send scan failure notification", logger.ErrorField(err))
	}
}
