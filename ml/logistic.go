package ml

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Logistic is a binary logistic regression trained with full-batch
// gradient descent. It implements Classifier, and mainly exists so the
// examples and tests have a concrete model to supply; any external model
// satisfying the interfaces works the same way.
type Logistic struct {
	W    []float64
	B    float64
	Rate float64
	Iter int
	Seed int64
}

// NewLogistic returns an untrained model with the given learning rate
// and iteration count.
func NewLogistic(rate float64, iter int) *Logistic {
	return &Logistic{Rate: rate, Iter: iter, Seed: 1}
}

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

// Fit trains on X with binary labels y (0 or 1).
func (m *Logistic) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("ml: empty training data")
	}
	if len(X) != len(y) {
		return errors.Wrapf(ErrShapeMismatch, "%d rows, %d labels", len(X), len(y))
	}
	d := len(X[0])
	rng := rand.New(rand.NewSource(m.Seed))
	m.W = make([]float64, d)
	for j := range m.W {
		m.W[j] = rng.NormFloat64() * 0.01
	}
	m.B = 0
	n := float64(len(X))
	for it := 0; it < m.Iter; it++ {
		gW := make([]float64, d)
		gB := 0.0
		for i, row := range X {
			z := m.B
			for j, v := range row {
				z += m.W[j] * v
			}
			e := sigmoid(z) - y[i]
			for j, v := range row {
				gW[j] += e * v
			}
			gB += e
		}
		for j := range m.W {
			m.W[j] -= m.Rate * gW[j] / n
		}
		m.B -= m.Rate * gB / n
	}
	return nil
}

// PredictProba returns p(y=1) per row.
func (m *Logistic) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		z := m.B
		for j, v := range row {
			z += m.W[j] * v
		}
		out[i] = sigmoid(z)
	}
	return out
}

// Predict returns labels at the 0.5 probability threshold.
func (m *Logistic) Predict(X [][]float64) []float64 {
	proba := m.PredictProba(X)
	out := make([]float64, len(proba))
	for i, p := range proba {
		if p >= 0.5 {
			out[i] = 1
		}
	}
	return out
}
