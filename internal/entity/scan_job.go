package entity

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Scan job status constants.
const (
	ScanStatusPending   = "pending"
	ScanStatusCompleted = "completed"
	ScanStatusFailed    = "failed"
)

// ScanJob is one screening job submitted to the remote scan service. The
// controller keeps the live job in memory; terminal jobs are persisted as
// history rows in this same shape.
type ScanJob struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	LocalID      string         `gorm:"type:varchar(36);not null" json:"local_id"`
	RemoteTaskID string         `gorm:"type:varchar(64);not null" json:"remote_task_id"`
	Status       string         `gorm:"type:varchar(20);not null" json:"status"`
	Progress     int            `gorm:"not null" json:"progress"`
	Config       datatypes.JSON `gorm:"type:jsonb" json:"config"`
	ResultRows   datatypes.JSON `gorm:"type:jsonb" json:"result_rows,omitempty"`
	Tickers      pq.StringArray `gorm:"type:text[]" json:"tickers"`
	ErrorMessage sql.NullString `json:"error_message,omitempty"`
	SubmittedAt  time.Time      `gorm:"not null" json:"submitted_at"`
	CompletedAt  sql.NullTime   `json:"completed_at,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the ScanJob model.
func (ScanJob) TableName() string {
	return "scan_jobs"
}
