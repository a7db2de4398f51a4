package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrFeatureCountMismatch indicates a vector whose length differs from the model's feature list.
var ErrFeatureCountMismatch = errors.New("feature vector length does not match model")

// Classifier is a trained binary classifier consumed through a predict contract.
// Implementations are read-only after construction and safe for concurrent use.
type Classifier interface {
	// FeatureNames returns the ordered feature list the model was trained on.
	FeatureNames() []string
	// Predict returns the predicted class, 0 or 1.
	Predict(features []float64) (int, error)
	// PredictProbability returns the probability of class 1.
	PredictProbability(features []float64) (float64, error)
}

// Metadata describes where a trained model came from.
type Metadata struct {
	Name      string `json:"name"`
	TrainedAt string `json:"trained_at"`
	Notes     string `json:"notes"`
}

// LogisticRegression is a linear classifier with an optional standardisation step.
type LogisticRegression struct {
	names        []string
	coefficients []float64
	intercept    float64
	threshold    float64
	mean         []float64
	scale        []float64
	metadata     Metadata
}

// FeatureNames implements Classifier.
func (m *LogisticRegression) FeatureNames() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Metadata returns the artifact metadata.
func (m *LogisticRegression) Metadata() Metadata {
	return m.metadata
}

// Threshold is the probability above which class 1 is predicted.
func (m *LogisticRegression) Threshold() float64 {
	return m.threshold
}

// PredictProbability implements Classifier.
func (m *LogisticRegression) PredictProbability(features []float64) (float64, error) {
	if len(features) != len(m.names) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureCountMismatch, len(features), len(m.names))
	}

	z := m.intercept
	for i, x := range features {
		if m.scale != nil {
			x = (x - m.mean[i]) / m.scale[i]
		}
		z += m.coefficients[i] * x
	}

	return sigmoid(z), nil
}

// Predict implements Classifier.
func (m *LogisticRegression) Predict(features []float64) (int, error) {
	p, err := m.PredictProbability(features)
	if err != nil {
		return 0, err
	}
	if p > m.threshold {
		return 1, nil
	}
	return 0, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
