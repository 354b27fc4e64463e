// Package schema has configs, models and shared types for all parts of triage.
package schema

import "time"

// BugReport represents a single issue record loaded from a bug tracker export.
// It carries the free-text fields used to build prompts and the ground-truth
// assignee used as the supervision label.
type BugReport struct {
	ID        string    // Tracker identifier for the report
	Title     string    // Short summary line (summary_update coalesced over summary)
	Body      string    // Full description (description_update coalesced over description)
	Assignee  string    // Ground-truth developer identifier, usually an email
	Component string    // Product component, when the export carries one
	Severity  string    // Reported severity, when the export carries one
	CreatedAt time.Time // Report creation time in UTC
}

// HasAssignee reports whether the record carries a usable supervision label.
func (r *BugReport) HasAssignee() bool {
	return r.Assignee != ""
}

// DatasetSplit holds the three partitions produced by a seeded shuffle split.
type DatasetSplit struct {
	Train []BugReport
	Valid []BugReport
	Test  []BugReport
}

// Total returns the number of reports across all three partitions.
func (s *DatasetSplit) Total() int {
	return len(s.Train) + len(s.Valid) + len(s.Test)
}
