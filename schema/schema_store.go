package schema

import "time"

// EvalRunRecord represents a row from the triage_eval_runs table.
type EvalRunRecord struct {
	RunID           int64      `json:"run_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	PredictionsPath string     `json:"predictions_path"`
	TotalReports    int32      `json:"total_reports"`
	ConfigParams    *string    `json:"config_params"`
}

// HitRateRecord represents a row from the triage_hit_rates table.
type HitRateRecord struct {
	RunID   int64   `json:"run_id"`
	K       int32   `json:"k"`
	Hits    int32   `json:"hits"`
	Total   int32   `json:"total"`
	HitRate float64 `json:"hit_rate"`
}

// StoreStatus represents the status of the results store.
type StoreStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}
