package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/verbs/layer"
)

// minimize (x-3)^2 from x = 0
func minimize(t *testing.T, opt Optimizer, steps int) float64 {
	p := layer.NewParam(1)
	for i := 0; i < steps; i++ {
		p.ZeroGrad()
		p.Grad[0] = 2 * (p.Value[0] - 3)
		opt.Step([]*layer.Param{p})
	}
	return p.Value[0]
}

func TestOptimizersConverge(t *testing.T) {
	for _, c := range []struct {
		h     HyperParameters
		delta float64
	}{
		{HyperParameters{Optimizer: "sgd", LearningRate: 0.1}, 1e-3},
		{HyperParameters{Optimizer: "sgd", LearningRate: 0.05, Momentum: 0.9}, 1e-3},
		{HyperParameters{Optimizer: "adam", LearningRate: 0.01}, 0.05},
	} {
		opt, err := c.h.New()
		require.NoError(t, err)
		assert.InDelta(t, 3, minimize(t, opt, 2000), c.delta, "%+v", c.h)
	}
}

func TestAdamFirstStep(t *testing.T) {
	// the first bias corrected step has magnitude learning rate
	p := layer.NewParam(2)
	p.Grad[0], p.Grad[1] = 5, -0.01
	NewAdam(HyperParameters{LearningRate: 0.01}).Step([]*layer.Param{p})
	assert.InDelta(t, -0.01, p.Value[0], 1e-6)
	assert.InDelta(t, 0.01, p.Value[1], 1e-4)
}

func TestNewErrors(t *testing.T) {
	_, err := HyperParameters{Optimizer: "rmsprop"}.New()
	assert.Error(t, err)
	_, err = HyperParameters{LearningRate: -1}.New()
	assert.Error(t, err)

	h := HyperParameters{}.Defaults()
	assert.Equal(t, "adam", h.Optimizer)
	assert.Equal(t, 0.001, h.LearningRate)
}

func TestParamHelpers(t *testing.T) {
	p := layer.NewParam(3)
	copy(p.Grad, []float64{1, 2, 3})
	p.ScaleGrad(0.5)
	assert.Equal(t, []float64{0.5, 1, 1.5}, p.Grad)
	p.ZeroGrad()
	assert.Equal(t, []float64{0, 0, 0}, p.Grad)
}
