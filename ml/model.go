package ml

// Model is the training entry point a supplied model must expose.
type Model interface {
	Fit(X [][]float64, y []float64) error
}

// Predictor is the prediction entry point. Models that do not implement
// it cannot be scored.
type Predictor interface {
	Predict(X [][]float64) []float64
}

// Classifier additionally exposes probability scores, p(y=positive) for
// binary classifiers.
type Classifier interface {
	Model
	Predictor
	PredictProba(X [][]float64) []float64
}
