package ml

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"

	"github.com/kgocks/bamboo/plotting"
)

// Predictions runs the supplied model over this data's features. Fails
// with ErrNotFitted when the model exposes no prediction entry point.
func (md *ModelingData) Predictions(m Model) ([]float64, error) {
	p, ok := m.(Predictor)
	if !ok {
		return nil, errors.Wrapf(ErrNotFitted, "%T", m)
	}
	return p.Predict(md.FeatureMatrix()), nil
}

// PerformanceSummary compares the model's predictions against this
// data's targets, treating positive as the positive class, and returns
// the standard binary classification metrics keyed by name:
// true/false positives/negatives, precision, recall (= sensitivity),
// specificity, false_positive_rate, accuracy, f1, and n.
// Fails with ErrNotFitted when the model cannot predict.
func (md *ModelingData) PerformanceSummary(m Model, positive float64) (map[string]float64, error) {
	pred, err := md.Predictions(m)
	if err != nil {
		return nil, err
	}
	y := md.TargetVector()
	var tp, fp, tn, fn float64
	for i := range y {
		predPos := pred[i] == positive
		truePos := y[i] == positive
		switch {
		case predPos && truePos:
			tp++
		case predPos && !truePos:
			fp++
		case !predPos && truePos:
			fn++
		default:
			tn++
		}
	}
	n := float64(len(y))
	precision, recall, specificity := 0.0, 0.0, 1.0
	if tp+fp > 0 {
		precision = tp / (tp + fp)
	}
	if tp+fn > 0 {
		recall = tp / (tp + fn)
	}
	if tn+fp > 0 {
		specificity = tn / (tn + fp)
	}
	f1 := 0.0
	if 2*tp+fp+fn > 0 {
		f1 = 2 * tp / (2*tp + fp + fn)
	}
	accuracy := 0.0
	if n > 0 {
		accuracy = (tp + tn) / n
	}
	return map[string]float64{
		"n":                   n,
		"true_positives":      tp,
		"false_positives":     fp,
		"true_negatives":      tn,
		"false_negatives":     fn,
		"precision":           precision,
		"recall":              recall,
		"sensitivity":         recall,
		"specificity":         specificity,
		"false_positive_rate": 1 - specificity,
		"accuracy":            accuracy,
		"f1":                  f1,
	}, nil
}

// ROCCurve scores the classifier's probabilities against the targets and
// returns the ROC curve and its area, treating positive as the positive
// class.
func (md *ModelingData) ROCCurve(c Classifier, positive float64) (fpr, tpr []float64, auc float64, err error) {
	scores := c.PredictProba(md.FeatureMatrix())
	if len(scores) != md.Len() {
		return nil, nil, 0, errors.Errorf("ml: %d probability scores for %d rows", len(scores), md.Len())
	}
	y := md.TargetVector()
	classes := make([]bool, len(y))
	for i := range y {
		classes[i] = y[i] == positive
	}
	s := append([]float64(nil), scores...)
	stat.SortWeightedLabeled(s, classes, nil)
	tpr, fpr, _ = stat.ROC(nil, s, classes, nil)
	auc = integrate.Trapezoidal(fpr, tpr)
	return fpr, tpr, auc, nil
}

// PlotROC draws the classifier's ROC curve onto p and returns the area
// under it.
func (md *ModelingData) PlotROC(p *plot.Plot, c Classifier, positive float64, name string) (float64, error) {
	fpr, tpr, auc, err := md.ROCCurve(c, positive)
	if err != nil {
		return 0, err
	}
	if err := plotting.ROCCurve(p, fpr, tpr, name); err != nil {
		return 0, err
	}
	return auc, nil
}
