package ml

import (
	"strconv"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableData builds a cleanly separable one-feature dataset: label 1
// for positive x, label 0 for negative x.
func separableData(t *testing.T, n int) *ModelingData {
	t.Helper()
	records := [][]string{{"x", "y"}}
	for i := 0; i < n; i++ {
		x := float64(i%10) + 1
		label := "1"
		if i%2 == 0 {
			x = -x
			label = "0"
		}
		records = append(records, []string{
			strconv.FormatFloat(x, 'f', 2, 64), label,
		})
	}
	md, err := FromDataFrame(dataframe.LoadRecords(records), "y")
	require.NoError(t, err)
	return md
}

func TestLogisticLearnsSeparableData(t *testing.T) {
	md := separableData(t, 100)
	clf := NewLogistic(0.5, 300)
	require.NoError(t, md.Fit(clf))

	sum, err := md.PerformanceSummary(clf, 1)
	require.NoError(t, err)
	assert.Greater(t, sum["accuracy"], 0.95)

	_, _, auc, err := md.ROCCurve(clf, 1)
	require.NoError(t, err)
	assert.Greater(t, auc, 0.95)
}

func TestLogisticFitValidation(t *testing.T) {
	clf := NewLogistic(0.1, 10)
	assert.Error(t, clf.Fit(nil, nil))
	assert.ErrorIs(t, clf.Fit([][]float64{{1}, {2}}, []float64{1}), ErrShapeMismatch)
}

func TestCrossValScores(t *testing.T) {
	md := separableData(t, 60)
	scores, err := md.CrossValScores(func() Model {
		return NewLogistic(0.5, 200)
	}, 3, 11)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	for _, s := range scores {
		assert.Greater(t, s, 0.9)
	}
}
