// Package core holds the evaluation, splitting and orchestration logic for triage.
package core

import (
	"errors"
	"fmt"

	"github.com/huangsam/triage/schema"
)

// Evaluator error classes. Callers match these with errors.Is.
var (
	// ErrEmptyPredictions is returned for an empty test set; a hit rate has
	// no denominator there, so the evaluator refuses rather than report 0.
	ErrEmptyPredictions = errors.New("empty prediction set")

	// ErrMissingLabel is returned when a record carries no true assignee.
	// Partial aggregation would silently bias the rates, so the whole run fails.
	ErrMissingLabel = errors.New("missing true assignee")

	// ErrDuplicateCandidate is returned when a ranked list names the same
	// developer at two positions.
	ErrDuplicateCandidate = errors.New("duplicate candidate")
)

// EvaluateHitAtK computes Hit@K for every cutoff K in 1..maxK over the full
// prediction set. The rank of the true assignee is resolved once per record
// and credited to every cutoff at or beyond it, which makes the returned
// curve monotonically non-decreasing by construction. Lists shorter than K
// are checked as-is; a true assignee absent from its list is a miss at every
// cutoff.
func EvaluateHitAtK(preds []schema.RankedCandidates, maxK int) ([]schema.HitAtKResult, error) {
	if maxK < 1 {
		return nil, fmt.Errorf("max K must be at least 1 (received %d)", maxK)
	}
	if len(preds) == 0 {
		return nil, ErrEmptyPredictions
	}

	hits := make([]int, maxK+1)
	for i := range preds {
		rank, err := rankOfTrueAssignee(&preds[i])
		if err != nil {
			return nil, err
		}
		if rank == 0 || rank > maxK {
			continue
		}
		for k := rank; k <= maxK; k++ {
			hits[k]++
		}
	}

	total := len(preds)
	results := make([]schema.HitAtKResult, maxK)
	for k := 1; k <= maxK; k++ {
		results[k-1] = schema.HitAtKResult{
			K:       k,
			Hits:    hits[k],
			Total:   total,
			HitRate: float64(hits[k]) / float64(total),
		}
	}
	return results, nil
}

// rankOfTrueAssignee returns the 1-indexed position of the true assignee in
// the ranked list, or 0 when the assignee never appears. The full list is
// walked even after a match so duplicate candidates are always rejected.
func rankOfTrueAssignee(p *schema.RankedCandidates) (int, error) {
	if p.TrueAssignee == "" {
		return 0, fmt.Errorf("%w for report %q", ErrMissingLabel, p.ReportID)
	}

	seen := make(map[string]struct{}, len(p.Candidates))
	rank := 0
	for i, c := range p.Candidates {
		if _, dup := seen[c]; dup {
			return 0, fmt.Errorf("%w %q for report %q", ErrDuplicateCandidate, c, p.ReportID)
		}
		seen[c] = struct{}{}
		if rank == 0 && c == p.TrueAssignee {
			rank = i + 1
		}
	}
	return rank, nil
}
