package schema

// RankedCandidates is the per-report output of the fine-tuned model: the
// ordered developer identifiers it proposed (highest confidence first) plus
// the ground-truth assignee for scoring. Order is rank position and must be
// preserved by every loader.
type RankedCandidates struct {
	ReportID     string   `json:"report_id"`
	Candidates   []string `json:"candidates"`
	TrueAssignee string   `json:"true_assignee"`
}

// HitAtKResult is the aggregate outcome for one cutoff K over the test set.
type HitAtKResult struct {
	K       int     `json:"k"`
	Hits    int     `json:"hits"`
	Total   int     `json:"total"`
	HitRate float64 `json:"hit_rate"`
}

// EvalReport bundles the Hit@K curve with the inputs it was computed from.
type EvalReport struct {
	PredictionsPath string         `json:"predictions_path"`
	TotalReports    int            `json:"total_reports"`
	MaxK            int            `json:"max_k"`
	Results         []HitAtKResult `json:"results"`
}

// EnrichedHitAtKResult adds presentation data to a HitAtKResult.
type EnrichedHitAtKResult struct {
	Label string `json:"label"`
	HitAtKResult
}

// GetPlainLabel returns a plain text label indicating ranking quality
// based on the hit rate.
func GetPlainLabel(rate float64) string {
	switch {
	case rate >= 0.8:
		return "Strong"
	case rate >= 0.6:
		return "Good"
	case rate >= 0.4:
		return "Fair"
	default:
		return "Weak"
	}
}

// EnrichResults adds quality labels to a Hit@K curve.
func EnrichResults(results []HitAtKResult) []EnrichedHitAtKResult {
	output := make([]EnrichedHitAtKResult, len(results))
	for i, r := range results {
		output[i] = EnrichedHitAtKResult{
			Label:        GetPlainLabel(r.HitRate),
			HitAtKResult: r,
		}
	}
	return output
}
