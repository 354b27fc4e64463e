package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/huangsam/triage/schema"
)

// FilterWindow keeps reports whose creation time falls within the inclusive
// [start, end] window. A zero start or end leaves that side unbounded.
// Reports with no parsed creation time are dropped, matching the upstream
// export semantics where an unparseable timestamp disqualifies the row.
func FilterWindow(reports []schema.BugReport, start, end time.Time) []schema.BugReport {
	kept := make([]schema.BugReport, 0, len(reports))
	for _, r := range reports {
		if r.CreatedAt.IsZero() {
			continue
		}
		if !start.IsZero() && r.CreatedAt.Before(start) {
			continue
		}
		if !end.IsZero() && r.CreatedAt.After(end) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// TrimToTarget sorts the reports oldest-first and keeps exactly target rows.
// When fewer rows than the target are available, allowBelow decides between
// continuing with what is there and failing. A zero target disables trimming.
func TrimToTarget(reports []schema.BugReport, target int, allowBelow bool) ([]schema.BugReport, error) {
	if target == 0 {
		return reports, nil
	}
	if len(reports) < target {
		if allowBelow {
			return reports, nil
		}
		return nil, fmt.Errorf("only %d rows in window (< target %d); pass --allow-below-target to continue anyway", len(reports), target)
	}

	trimmed := make([]schema.BugReport, len(reports))
	copy(trimmed, reports)
	sort.SliceStable(trimmed, func(i, j int) bool {
		return trimmed[i].CreatedAt.Before(trimmed[j].CreatedAt)
	})
	return trimmed[:target], nil
}
