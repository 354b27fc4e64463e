package core

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/huangsam/triage/schema"
)

// SplitDataset shuffles the reports with a seeded generator and cuts them into
// train/valid/test partitions. The same seed and input order always produce
// the same partitions, so a prepared dataset can be regenerated byte for byte.
func SplitDataset(reports []schema.BugReport, seed int64, trainFrac, validFrac float64) (schema.DatasetSplit, error) {
	if len(reports) == 0 {
		return schema.DatasetSplit{}, fmt.Errorf("cannot split an empty dataset")
	}
	if trainFrac <= 0 || validFrac < 0 || trainFrac+validFrac >= 1 {
		return schema.DatasetSplit{}, fmt.Errorf("invalid split fractions train=%.2f valid=%.2f", trainFrac, validFrac)
	}

	shuffled := slices.Clone(reports)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled)
	nTrain := int(float64(n) * trainFrac)
	nValid := int(float64(n) * validFrac)

	return schema.DatasetSplit{
		Train: shuffled[:nTrain],
		Valid: shuffled[nTrain : nTrain+nValid],
		Test:  shuffled[nTrain+nValid:],
	}, nil
}
