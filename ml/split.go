package ml

import (
	"math/rand"

	"github.com/pkg/errors"
)

// TrainTestSplit partitions the rows into two disjoint instances,
// keeping each row's feature/target pairing. testFraction of the rows
// (rounded down, at least one when possible) land in the test set. The
// permutation is driven by seed, so splits are reproducible.
func (md *ModelingData) TrainTestSplit(testFraction float64, seed int64) (train, test *ModelingData, err error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, errors.Errorf("ml: test fraction %v outside (0, 1)", testFraction)
	}
	n := md.Len()
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testFraction)
	if nTest == 0 && n > 1 {
		nTest = 1
	}
	return md.subset(perm[nTest:]), md.subset(perm[:nTest]), nil
}

// KFold partitions the rows into k disjoint folds of near-equal size,
// shuffled by seed.
func (md *ModelingData) KFold(k int, seed int64) ([]*ModelingData, error) {
	idx, err := md.foldIndices(k, seed)
	if err != nil {
		return nil, err
	}
	folds := make([]*ModelingData, k)
	for i, f := range idx {
		folds[i] = md.subset(f)
	}
	return folds, nil
}

// CrossValScores runs k-fold cross validation: for each fold, a fresh
// model from newModel is trained on the other folds and its accuracy on
// the held-out fold is recorded. Fails with ErrNotFitted when the models
// expose no prediction entry point.
func (md *ModelingData) CrossValScores(newModel func() Model, k int, seed int64) ([]float64, error) {
	idx, err := md.foldIndices(k, seed)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, k)
	for i := range idx {
		var trainIdx []int
		for j, f := range idx {
			if j != i {
				trainIdx = append(trainIdx, f...)
			}
		}
		train, test := md.subset(trainIdx), md.subset(idx[i])
		m := newModel()
		if err := train.Fit(m); err != nil {
			return nil, err
		}
		pred, err := test.Predictions(m)
		if err != nil {
			return nil, err
		}
		scores[i] = accuracy(test.TargetVector(), pred)
	}
	return scores, nil
}

func (md *ModelingData) foldIndices(k int, seed int64) ([][]int, error) {
	if k < 2 || k > md.Len() {
		return nil, errors.Errorf("ml: cannot make %d folds from %d rows", k, md.Len())
	}
	perm := rand.New(rand.NewSource(seed)).Perm(md.Len())
	folds := make([][]int, k)
	for i, p := range perm {
		folds[i%k] = append(folds[i%k], p)
	}
	return folds, nil
}

func accuracy(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}
