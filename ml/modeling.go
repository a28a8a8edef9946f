// Package ml pairs a feature table with a target vector and provides
// dataset preparation and evaluation helpers around an externally
// supplied model, so callers never track the two objects in lockstep.
package ml

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"

	"github.com/kgocks/bamboo"
	"github.com/kgocks/bamboo/plotting"
)

// ModelingData bundles a feature Frame with a row-aligned target series.
// Instances are immutable: every operation derives a new instance. The
// original row positions are carried through derivations so that two
// instances split from the same data can be checked for overlap.
type ModelingData struct {
	features *bamboo.Frame
	targets  series.Series
	rows     []int
}

// New pairs features with targets.
// Fails with ErrShapeMismatch if the row counts differ.
func New(features *bamboo.Frame, targets series.Series) (*ModelingData, error) {
	if features.Nrow() != targets.Len() {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d feature rows, %d targets",
			features.Nrow(), targets.Len())
	}
	t := targets.Copy()
	if t.Name == "" {
		t.Name = "target"
	}
	rows := make([]int, features.Nrow())
	for i := range rows {
		rows[i] = i
	}
	return &ModelingData{features: features, targets: t, rows: rows}, nil
}

// FromFrame splits a single wrapped frame into features (every column
// except target) and targets (the target column).
// Fails with bamboo.ErrColumnNotFound if the column is absent.
func FromFrame(f *bamboo.Frame, target string) (*ModelingData, error) {
	t, err := f.Col(target)
	if err != nil {
		return nil, err
	}
	return New(f.Drop(target), t)
}

// FromDataFrame is FromFrame for a plain gota dataframe.
func FromDataFrame(df dataframe.DataFrame, target string) (*ModelingData, error) {
	return FromFrame(bamboo.NewFrame(df), target)
}

// Features returns the wrapped feature frame.
func (md *ModelingData) Features() *bamboo.Frame { return md.features }

// Targets returns the target series.
func (md *ModelingData) Targets() series.Series { return md.targets }

// Len returns the number of rows.
func (md *ModelingData) Len() int { return md.targets.Len() }

// Shape returns rows and feature columns.
func (md *ModelingData) Shape() (rows, cols int) {
	return md.features.Nrow(), md.features.Ncol()
}

func (md *ModelingData) String() string {
	r, c := md.Shape()
	return fmt.Sprintf("ModelingData(%dx%d)", r, c)
}

// Classes returns the distinct target values in order of first
// appearance.
func (md *ModelingData) Classes() []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range md.targets.Records() {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// NumClasses returns the number of distinct target values.
func (md *ModelingData) NumClasses() int { return len(md.Classes()) }

// NumericFeatures derives a ModelingData keeping only the numeric (int
// and float) feature columns. Targets are untouched.
func (md *ModelingData) NumericFeatures() *ModelingData {
	var keep []string
	types := md.features.Types()
	for i, name := range md.features.Names() {
		if types[i] == series.Int || types[i] == series.Float {
			keep = append(keep, name)
		}
	}
	return &ModelingData{
		features: md.features.Select(keep...),
		targets:  md.targets.Copy(),
		rows:     append([]int(nil), md.rows...),
	}
}

// subset derives a ModelingData from the rows at the given positions,
// keeping the feature/target pairing and the original row identities.
func (md *ModelingData) subset(idx []int) *ModelingData {
	rows := make([]int, len(idx))
	for i, p := range idx {
		rows[i] = md.rows[p]
	}
	return &ModelingData{
		features: md.features.Subset(idx),
		targets:  md.targets.Subset(idx),
		rows:     rows,
	}
}

// IsOrthogonal reports whether the two instances share no original rows.
func (md *ModelingData) IsOrthogonal(other *ModelingData) bool {
	seen := map[int]bool{}
	for _, r := range md.rows {
		seen[r] = true
	}
	for _, r := range other.rows {
		if seen[r] {
			return false
		}
	}
	return true
}

// FeatureMatrix returns the features as a row-major numeric matrix, the
// shape every Model consumes. Non-numeric cells convert to NaN; call
// NumericFeatures first for mixed tables.
func (md *ModelingData) FeatureMatrix() [][]float64 {
	names := md.features.Names()
	cols := make([][]float64, len(names))
	for i, n := range names {
		s, _ := md.features.Col(n)
		cols[i] = s.Float()
	}
	X := make([][]float64, md.Len())
	for r := range X {
		row := make([]float64, len(cols))
		for c := range cols {
			row[c] = cols[c][r]
		}
		X[r] = row
	}
	return X
}

// TargetVector returns the targets as floats.
func (md *ModelingData) TargetVector() []float64 { return md.targets.Float() }

// Fit trains the supplied model on this data. The side effect is on the
// model, not on this container.
func (md *ModelingData) Fit(m Model) error {
	return m.Fit(md.FeatureMatrix(), md.TargetVector())
}

// Hist draws one histogram of the named feature per target class onto p,
// by regrouping the feature under the target and chaining through the
// wrapped group-by.
func (md *ModelingData) Hist(p *plot.Plot, feature string, opts plotting.HistOptions) error {
	g, err := md.features.Mutate(md.targets).GroupBy(md.targets.Name)
	if err != nil {
		return err
	}
	_, err = g.Hist(p, feature, opts)
	return err
}
