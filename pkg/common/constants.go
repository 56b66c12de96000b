package common

const (
	// RedisKeyWatchlist is the single well-known key holding the persisted
	// watchlist as a JSON array of ticker symbols.
	RedisKeyWatchlist = "dashboard:watchlist"

	// RedisKeyLastScanConfig stores the most recently submitted scan
	// configuration so scheduled rescans survive a restart.
	RedisKeyLastScanConfig = "dashboard:last_scan_config"
)

// Remote scan service statuses as reported by the status endpoint.
const (
	RemoteStatusPending   = "pending"
	RemoteStatusRunning   = "running"
	RemoteStatusCompleted = "completed"
	RemoteStatusFailed    = "failed"
)
