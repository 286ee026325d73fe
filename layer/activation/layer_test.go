package activation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"", "relu", "tanh", "sigmoid", "linear"} {
		a, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, a.Name())
	}
	_, err := ByName("swish")
	assert.Error(t, err)
}

func TestReLU(t *testing.T) {
	c := ReLU.Lay()
	assert.Equal(t, []float64{0, 0, 2}, c.Forward([]float64{-1, 0, 2}))
	assert.Equal(t, []float64{0, 0, 5}, c.Backward([]float64{5, 5, 5}))
	assert.Equal(t, 3, ReLU.Outputs(3))
}

func TestDerivatives(t *testing.T) {
	const eps = 1e-6
	for _, a := range []Activation{Tanh, Sigmoid, Identity} {
		for _, x := range []float64{-2, -0.3, 0.1, 1.7} {
			c := a.Lay()
			c.Forward([]float64{x})
			got := c.Backward([]float64{1})[0]
			want := (a.f(x+eps) - a.f(x-eps)) / (2 * eps)
			assert.InDelta(t, want, got, 1e-6, "%s at %v", a.Name(), x)
		}
	}
}
