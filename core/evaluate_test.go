package core

import (
	"testing"

	"github.com/huangsam/triage/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluateHitAtK tests the Hit@K curve over a small mixed set.
func TestEvaluateHitAtK(t *testing.T) {
	preds := []schema.RankedCandidates{
		{ReportID: "a", Candidates: []string{"dev3", "dev1", "dev7"}, TrueAssignee: "dev1"},
		{ReportID: "b", Candidates: []string{"dev2", "dev5"}, TrueAssignee: "dev9"},
	}

	results, err := EvaluateHitAtK(preds, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 0.0, results[0].HitRate) // K=1: top candidate is dev3, miss
	assert.Equal(t, 0.5, results[1].HitRate) // K=2: report a hits at rank 2
	assert.Equal(t, 0.5, results[2].HitRate) // K=3: report b never hits
	assert.Equal(t, 2, results[2].Total)
	assert.Equal(t, 1, results[2].Hits)
}

// TestEvaluateHitAtKBounds tests boundary behavior of the curve.
func TestEvaluateHitAtKBounds(t *testing.T) {
	t.Run("all top ranked", func(t *testing.T) {
		preds := []schema.RankedCandidates{
			{ReportID: "a", Candidates: []string{"dev1", "dev2"}, TrueAssignee: "dev1"},
			{ReportID: "b", Candidates: []string{"dev4"}, TrueAssignee: "dev4"},
		}
		results, err := EvaluateHitAtK(preds, 10)
		require.NoError(t, err)
		for _, r := range results {
			assert.Equal(t, 1.0, r.HitRate)
		}
	})

	t.Run("never present", func(t *testing.T) {
		preds := []schema.RankedCandidates{
			{ReportID: "a", Candidates: []string{"dev1", "dev2"}, TrueAssignee: "dev9"},
			{ReportID: "b", Candidates: nil, TrueAssignee: "dev9"},
		}
		results, err := EvaluateHitAtK(preds, 10)
		require.NoError(t, err)
		for _, r := range results {
			assert.Equal(t, 0.0, r.HitRate)
		}
	})

	t.Run("rank beyond max K", func(t *testing.T) {
		preds := []schema.RankedCandidates{
			{ReportID: "a", Candidates: []string{"dev1", "dev2", "dev3"}, TrueAssignee: "dev3"},
		}
		results, err := EvaluateHitAtK(preds, 2)
		require.NoError(t, err)
		assert.Equal(t, 0.0, results[0].HitRate)
		assert.Equal(t, 0.0, results[1].HitRate)
	})
}

// TestEvaluateHitAtKMonotone tests that hit rates never decrease as K grows.
func TestEvaluateHitAtKMonotone(t *testing.T) {
	preds := []schema.RankedCandidates{
		{ReportID: "a", Candidates: []string{"dev3", "dev1", "dev7", "dev4"}, TrueAssignee: "dev7"},
		{ReportID: "b", Candidates: []string{"dev2", "dev5", "dev8"}, TrueAssignee: "dev2"},
		{ReportID: "c", Candidates: []string{"dev6", "dev9"}, TrueAssignee: "dev9"},
		{ReportID: "d", Candidates: []string{"dev1"}, TrueAssignee: "dev4"},
	}

	results, err := EvaluateHitAtK(preds, 10)
	require.NoError(t, err)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].HitRate, results[i-1].HitRate)
	}
}

// TestEvaluateHitAtKDeterministic tests that recomputation yields identical results.
func TestEvaluateHitAtKDeterministic(t *testing.T) {
	preds := []schema.RankedCandidates{
		{ReportID: "a", Candidates: []string{"dev3", "dev1"}, TrueAssignee: "dev1"},
		{ReportID: "b", Candidates: []string{"dev2"}, TrueAssignee: "dev2"},
	}

	first, err := EvaluateHitAtK(preds, 10)
	require.NoError(t, err)
	second, err := EvaluateHitAtK(preds, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestEvaluateHitAtKErrors tests the fail-fast error classes.
func TestEvaluateHitAtKErrors(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		_, err := EvaluateHitAtK(nil, 10)
		assert.ErrorIs(t, err, ErrEmptyPredictions)
	})

	t.Run("missing label", func(t *testing.T) {
		preds := []schema.RankedCandidates{
			{ReportID: "a", Candidates: []string{"dev1"}, TrueAssignee: "dev1"},
			{ReportID: "b", Candidates: []string{"dev2"}},
		}
		_, err := EvaluateHitAtK(preds, 10)
		assert.ErrorIs(t, err, ErrMissingLabel)
		assert.Contains(t, err.Error(), "b")
	})

	t.Run("duplicate candidate", func(t *testing.T) {
		preds := []schema.RankedCandidates{
			{ReportID: "a", Candidates: []string{"dev1", "dev2", "dev1"}, TrueAssignee: "dev2"},
		}
		_, err := EvaluateHitAtK(preds, 10)
		assert.ErrorIs(t, err, ErrDuplicateCandidate)
	})

	t.Run("duplicate after match still rejected", func(t *testing.T) {
		preds := []schema.RankedCandidates{
			{ReportID: "a", Candidates: []string{"dev2", "dev1", "dev1"}, TrueAssignee: "dev2"},
		}
		_, err := EvaluateHitAtK(preds, 10)
		assert.ErrorIs(t, err, ErrDuplicateCandidate)
	})

	t.Run("invalid max K", func(t *testing.T) {
		preds := []schema.RankedCandidates{
			{ReportID: "a", Candidates: []string{"dev1"}, TrueAssignee: "dev1"},
		}
		_, err := EvaluateHitAtK(preds, 0)
		assert.Error(t, err)
	})
}
