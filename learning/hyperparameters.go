// Package learning implements the optimizers of the feedforward network
package learning

import "github.com/pkg/errors"

// HyperParameters select and tune the optimizer.
type HyperParameters struct {
	Optimizer    string  // "adam" or "sgd"
	LearningRate float64 // step size

	Beta1   float64 // adam first moment decay
	Beta2   float64 // adam second moment decay
	Epsilon float64 // adam denominator guard

	Momentum float64 // sgd momentum, 0 disables
}

// Defaults fills zero fields with the usual values.
func (h HyperParameters) Defaults() HyperParameters {
	if h.Optimizer == "" {
		h.Optimizer = "adam"
	}
	if h.LearningRate == 0 {
		h.LearningRate = 0.001
	}
	if h.Beta1 == 0 {
		h.Beta1 = 0.9
	}
	if h.Beta2 == 0 {
		h.Beta2 = 0.999
	}
	if h.Epsilon == 0 {
		h.Epsilon = 1e-8
	}
	return h
}

// New creates the optimizer named by h.Optimizer.
func (h HyperParameters) New() (Optimizer, error) {
	h = h.Defaults()
	if h.LearningRate < 0 {
		return nil, errors.Errorf("learning rate must be positive, got %v", h.LearningRate)
	}
	switch h.Optimizer {
	case "adam":
		return NewAdam(h), nil
	case "sgd":
		return NewSGD(h), nil
	}
	return nil, errors.Errorf("unknown optimizer %q", h.Optimizer)
}
