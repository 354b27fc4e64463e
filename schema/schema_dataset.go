package schema

import "time"

// AssigneeCount pairs a developer identifier with the number of reports
// they were assigned in the loaded window.
type AssigneeCount struct {
	Assignee string `json:"assignee"`
	Reports  int    `json:"reports"`
}

// DatasetStats summarizes a loaded dataset for the stats command.
type DatasetStats struct {
	Path              string          `json:"path"`
	TotalReports      int             `json:"total_reports"`
	Labeled           int             `json:"labeled"`
	Unlabeled         int             `json:"unlabeled"`
	DistinctAssignees int             `json:"distinct_assignees"`
	OldestReport      time.Time       `json:"oldest_report"`
	NewestReport      time.Time       `json:"newest_report"`
	TopAssignees      []AssigneeCount `json:"top_assignees"`
}

// SplitSummary reports what the prepare command wrote and where.
type SplitSummary struct {
	TotalInWindow int    `json:"total_in_window"`
	TrainCount    int    `json:"train_count"`
	ValidCount    int    `json:"valid_count"`
	TestCount     int    `json:"test_count"`
	TrainPath     string `json:"train_path"`
	ValidPath     string `json:"valid_path"`
	TestPath      string `json:"test_path"`
	Seed          int64  `json:"seed"`
}
