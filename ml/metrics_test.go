package ml

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/kgocks/bamboo"
)

// fixedModel predicts a canned answer regardless of input.
type fixedModel struct {
	preds []float64
	proba []float64
}

func (m fixedModel) Fit(X [][]float64, y []float64) error { return nil }
func (m fixedModel) Predict(X [][]float64) []float64      { return m.preds }
func (m fixedModel) PredictProba(X [][]float64) []float64 { return m.proba }

// fitOnly has a training entry point but no prediction entry point.
type fitOnly struct{}

func (fitOnly) Fit(X [][]float64, y []float64) error { return nil }

func binaryData(t *testing.T, labels []int) *ModelingData {
	t.Helper()
	xs := make([]float64, len(labels))
	for i := range xs {
		xs[i] = float64(i)
	}
	f := bamboo.NewFrame(dataframe.New(series.New(xs, series.Float, "x")))
	md, err := New(f, series.New(labels, series.Int, "y"))
	require.NoError(t, err)
	return md
}

func TestPredictionsNotFitted(t *testing.T) {
	md := binaryData(t, []int{0, 1})
	_, err := md.Predictions(fitOnly{})
	require.ErrorIs(t, err, ErrNotFitted)
	_, err = md.PerformanceSummary(fitOnly{}, 1)
	require.ErrorIs(t, err, ErrNotFitted)
}

func TestPerformanceSummaryCounts(t *testing.T) {
	md := binaryData(t, []int{1, 1, 0, 0})
	m := fixedModel{preds: []float64{1, 0, 1, 0}}
	sum, err := md.PerformanceSummary(m, 1)
	require.NoError(t, err)

	assert.Equal(t, 4.0, sum["n"])
	assert.Equal(t, 1.0, sum["true_positives"])
	assert.Equal(t, 1.0, sum["false_positives"])
	assert.Equal(t, 1.0, sum["true_negatives"])
	assert.Equal(t, 1.0, sum["false_negatives"])
	assert.InDelta(t, 0.5, sum["precision"], 1e-12)
	assert.InDelta(t, 0.5, sum["recall"], 1e-12)
	assert.Equal(t, sum["recall"], sum["sensitivity"])
	assert.InDelta(t, 0.5, sum["specificity"], 1e-12)
	assert.InDelta(t, 0.5, sum["false_positive_rate"], 1e-12)
	assert.InDelta(t, 0.5, sum["accuracy"], 1e-12)
	assert.InDelta(t, 0.5, sum["f1"], 1e-12)
}

func TestPerformanceSummaryPerfect(t *testing.T) {
	md := binaryData(t, []int{0, 1, 0, 1})
	m := fixedModel{preds: []float64{0, 1, 0, 1}}
	sum, err := md.PerformanceSummary(m, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sum["accuracy"])
	assert.Equal(t, 1.0, sum["precision"])
	assert.Equal(t, 1.0, sum["recall"])
	assert.Equal(t, 1.0, sum["f1"])
	assert.Equal(t, 0.0, sum["false_positive_rate"])
}

func TestROCCurvePerfectSeparation(t *testing.T) {
	md := binaryData(t, []int{0, 0, 1, 1})
	m := fixedModel{proba: []float64{0.1, 0.2, 0.8, 0.9}}
	fpr, tpr, auc, err := md.ROCCurve(m, 1)
	require.NoError(t, err)
	require.Equal(t, len(fpr), len(tpr))
	assert.InDelta(t, 1.0, auc, 1e-12)
}

func TestROCCurveScoreLengthMismatch(t *testing.T) {
	md := binaryData(t, []int{0, 1})
	m := fixedModel{proba: []float64{0.5}}
	_, _, _, err := md.ROCCurve(m, 1)
	assert.Error(t, err)
}

func TestPlotROC(t *testing.T) {
	md := binaryData(t, []int{0, 0, 1, 1})
	m := fixedModel{proba: []float64{0.1, 0.2, 0.8, 0.9}}
	p := plot.New()
	auc, err := md.PlotROC(p, m, 1, "test")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, auc, 1e-12)
}
