// Package activation implements element-wise activation layers
package activation

import "math"

import "github.com/pkg/errors"

import "github.com/neurlang/verbs/layer"

// Activation is a shape preserving, parameter free layer.
type Activation struct {
	name  string
	f     func(x float64) float64
	deriv func(x, y float64) float64
}

var (
	ReLU = Activation{
		name: "relu",
		f:    func(x float64) float64 { return math.Max(0, x) },
		deriv: func(x, _ float64) float64 {
			if x > 0 {
				return 1
			}
			return 0
		},
	}
	Tanh = Activation{
		name:  "tanh",
		f:     math.Tanh,
		deriv: func(_, y float64) float64 { return 1 - y*y },
	}
	Sigmoid = Activation{
		name:  "sigmoid",
		f:     func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		deriv: func(_, y float64) float64 { return y * (1 - y) },
	}
	Identity = Activation{
		name:  "linear",
		f:     func(x float64) float64 { return x },
		deriv: func(float64, float64) float64 { return 1 },
	}
)

// ByName returns relu, tanh, sigmoid or linear. The empty name is relu.
func ByName(name string) (Activation, error) {
	switch name {
	case "", ReLU.name:
		return ReLU, nil
	case Tanh.name:
		return Tanh, nil
	case Sigmoid.name:
		return Sigmoid, nil
	case Identity.name, "identity", "none":
		return Identity, nil
	}
	return Activation{}, errors.Errorf("unknown activation %q", name)
}

// Name returns the configuration name of the activation.
func (a Activation) Name() string {
	return a.name
}

// Outputs equals inputs.
func (a Activation) Outputs(inputs int) int {
	return inputs
}

// Lay turns the activation into a combiner
func (a Activation) Lay() layer.Combiner {
	return &combiner{a: a}
}

type combiner struct {
	a       Activation
	in, out []float64
}

func (c *combiner) Forward(in []float64) []float64 {
	c.in = in
	c.out = make([]float64, len(in))
	for i, x := range in {
		c.out[i] = c.a.f(x)
	}
	return c.out
}

func (c *combiner) Backward(grad []float64) []float64 {
	dx := make([]float64, len(grad))
	for i, g := range grad {
		dx[i] = g * c.a.deriv(c.in[i], c.out[i])
	}
	return dx
}
