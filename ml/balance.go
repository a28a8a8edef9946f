package ml

import (
	"math/rand"

	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// classIndices returns, per class in order of first appearance, the row
// positions holding that class, in source order.
func (md *ModelingData) classIndices() (classes []string, byClass map[string][]int) {
	byClass = map[string][]int{}
	for i, v := range md.targets.Records() {
		if _, ok := byClass[v]; !ok {
			classes = append(classes, v)
		}
		byClass[v] = append(byClass[v], i)
	}
	return classes, byClass
}

// isClassification reports whether the target can be treated as class
// labels. Float targets are taken as continuous.
func (md *ModelingData) isClassification() bool {
	return md.targets.Type() != series.Float
}

// GetBalanced derives a ModelingData whose class counts are equal, by
// truncating every class to the smallest class's count. Rows are taken
// in source order within each class, so the result is deterministic.
// Fails with ErrNotClassification on a continuous target.
func (md *ModelingData) GetBalanced() (*ModelingData, error) {
	if !md.isClassification() {
		return nil, errors.Wrapf(ErrNotClassification, "target %q is %s",
			md.targets.Name, md.targets.Type())
	}
	classes, byClass := md.classIndices()
	if len(classes) == 0 {
		return md.subset(nil), nil
	}
	minCount := len(byClass[classes[0]])
	for _, c := range classes[1:] {
		if n := len(byClass[c]); n < minCount {
			minCount = n
		}
	}
	var idx []int
	for _, c := range classes {
		idx = append(idx, byClass[c][:minCount]...)
	}
	return md.subset(idx), nil
}

// BalancedSample derives a ModelingData of roughly the given size by
// sampling each class with replacement in equal proportion, driven by
// seed. Fails with ErrNotClassification on a continuous target.
func (md *ModelingData) BalancedSample(size int, seed int64) (*ModelingData, error) {
	if !md.isClassification() {
		return nil, errors.Wrapf(ErrNotClassification, "target %q is %s",
			md.targets.Name, md.targets.Type())
	}
	if size <= 0 {
		size = md.Len()
	}
	classes, byClass := md.classIndices()
	if len(classes) == 0 {
		return md.subset(nil), nil
	}
	perClass := size / len(classes)
	rng := rand.New(rand.NewSource(seed))
	var idx []int
	for _, c := range classes {
		rows := byClass[c]
		for i := 0; i < perClass; i++ {
			idx = append(idx, rows[rng.Intn(len(rows))])
		}
	}
	return md.subset(idx), nil
}

// BalanceWeights returns one weight per row, inversely proportional to
// that row's class frequency, so every class carries equal total weight.
// Fails with ErrNotClassification on a continuous target.
func (md *ModelingData) BalanceWeights() ([]float64, error) {
	if !md.isClassification() {
		return nil, errors.Wrapf(ErrNotClassification, "target %q is %s",
			md.targets.Name, md.targets.Type())
	}
	classes, byClass := md.classIndices()
	n := float64(md.Len())
	k := float64(len(classes))
	w := make([]float64, md.Len())
	for _, c := range classes {
		rows := byClass[c]
		cw := n / (k * float64(len(rows)))
		for _, r := range rows {
			w[r] = cw
		}
	}
	return w, nil
}
