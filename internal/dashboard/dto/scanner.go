package dto

import (
	"time"

	"golang-market-screener/internal/entity"
)

// RemoteStartScanResponse is the body returned by the scan service when a
// job is created.
type RemoteStartScanResponse struct {
	TaskID string `json:"task_id"`
}

// RemoteScanStatusResponse is the body returned by the scan service status
// endpoint. Progress is optional; Data is only present on completion.
type RemoteScanStatusResponse struct {
	Status   string             `json:"status"`
	Progress *int               `json:"progress,omitempty"`
	Data     []entity.ResultRow `json:"data,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// StartScanRequest is the DTO for submitting a new scan.
type StartScanRequest struct {
	Sector          string `json:"sector"`
	UniverseSize    int    `json:"num_tickers"`
	MaxDaysToExpiry int    `json:"max_dte"`
	LookbackWindow  int    `json:"lookback"`
}

// ToScanConfig maps the request onto the immutable scan configuration.
func (r StartScanRequest) ToScanConfig() entity.ScanConfig {
	return entity.ScanConfig{
		Sector:          r.Sector,
		UniverseSize:    r.UniverseSize,
		MaxDaysToExpiry: r.MaxDaysToExpiry,
		LookbackWindow:  r.LookbackWindow,
	}
}

// StartScanResponse is returned when a scan has been accepted.
type StartScanResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// ScanStateResponse describes the controller's current job.
type ScanStateResponse struct {
	State        string            `json:"state"`
	JobID        string            `json:"job_id,omitempty"`
	Progress     int               `json:"progress"`
	RowCount     int               `json:"row_count"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Config       entity.ScanConfig `json:"config,omitempty"`
	SubmittedAt  *time.Time        `json:"submitted_at,omitempty"`
}

// ScanResultsResponse is a display-ordered projection of the last
// completed result set.
type ScanResultsResponse struct {
	Sort entity.SortState   `json:"sort"`
	Rows []entity.ResultRow `json:"rows"`
}

// PlaybookResponse carries the long and short candidate subsets.
type PlaybookResponse struct {
	Longs  []entity.ResultRow `json:"longs"`
	Shorts []entity.ResultRow `json:"shorts"`
}

// SectorsResponse lists the selectable scan sectors.
type SectorsResponse struct {
	Sectors []string `json:"sectors"`
}
