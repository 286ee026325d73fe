// Package full implements a fully connected layer and combiner
package full

import "math"
import "math/rand"

import "github.com/pkg/errors"

import "github.com/neurlang/verbs/layer"

// FullLayer computes W x + b, with W stored row major, one row per output.
type FullLayer struct {
	inputs  int
	outputs int

	weights *layer.Param
	biases  *layer.Param
}

// MustNew creates a new full layer with inputs and outputs
func MustNew(inputs, outputs int, rng *rand.Rand) *FullLayer {
	o, err := New(inputs, outputs, rng)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new full layer with Glorot uniform weights drawn from rng and zero biases
func New(inputs, outputs int, rng *rand.Rand) (o *FullLayer, err error) {
	if inputs < 1 || outputs < 1 {
		return nil, errors.Errorf("full layer needs positive dimensions, got %d x %d", inputs, outputs)
	}
	o = &FullLayer{
		inputs:  inputs,
		outputs: outputs,
		weights: layer.NewParam(inputs * outputs),
		biases:  layer.NewParam(outputs),
	}
	limit := math.Sqrt(6 / float64(inputs+outputs))
	for i := range o.weights.Value {
		o.weights.Value[i] = (2*rng.Float64() - 1) * limit
	}
	return
}

// Inputs returns the input width.
func (l *FullLayer) Inputs() int {
	return l.inputs
}

// Outputs returns the output width, independent of inputs.
func (l *FullLayer) Outputs(int) int {
	return l.outputs
}

// Params returns the weights and the biases.
func (l *FullLayer) Params() []*layer.Param {
	return []*layer.Param{l.weights, l.biases}
}

// Lay turns full layer into a combiner
func (l *FullLayer) Lay() layer.Combiner {
	return &Full{layer: l}
}

// Load creates a full layer from stored weights and biases. The slices are copied.
func Load(inputs, outputs int, weights, biases []float64) (*FullLayer, error) {
	if inputs < 1 || outputs < 1 {
		return nil, errors.Errorf("full layer needs positive dimensions, got %d x %d", inputs, outputs)
	}
	if len(weights) != inputs*outputs || len(biases) != outputs {
		return nil, errors.Errorf("full layer %d x %d got %d weights and %d biases",
			inputs, outputs, len(weights), len(biases))
	}
	o := &FullLayer{
		inputs:  inputs,
		outputs: outputs,
		weights: layer.NewParam(inputs * outputs),
		biases:  layer.NewParam(outputs),
	}
	copy(o.weights.Value, weights)
	copy(o.biases.Value, biases)
	return o, nil
}
