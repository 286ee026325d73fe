// Package feedforward implements a feedforward network classifier
package feedforward

import "math/rand"

import "github.com/pkg/errors"

import "github.com/neurlang/verbs/datasets"
import "github.com/neurlang/verbs/layer"
import "github.com/neurlang/verbs/layer/activation"
import "github.com/neurlang/verbs/layer/full"
import "github.com/neurlang/verbs/learning"

// LayerSpec describes one hidden layer: a full layer of Units followed by Activation.
type LayerSpec struct {
	Units      int
	Activation string
}

// FeedforwardNetwork is the feedforward network. The last layer outputs one logit
// per class; the loss is softmax cross-entropy.
type FeedforwardNetwork struct {
	inputs int
	layers []layer.Layer
}

// New creates an empty network reading inputs features.
func New(inputs int) *FeedforwardNetwork {
	return &FeedforwardNetwork{inputs: inputs}
}

// Build creates a network of hidden layers followed by a full layer with one
// output per class. Weights are drawn from rng.
func Build(inputs int, hidden []LayerSpec, classes int, rng *rand.Rand) (*FeedforwardNetwork, error) {
	if classes < 2 {
		return nil, errors.Errorf("need at least 2 classes, got %d", classes)
	}
	f := New(inputs)
	width := inputs
	for i, spec := range hidden {
		l, err := full.New(width, spec.Units, rng)
		if err != nil {
			return nil, errors.Wrapf(err, "hidden layer %d", i)
		}
		a, err := activation.ByName(spec.Activation)
		if err != nil {
			return nil, errors.Wrapf(err, "hidden layer %d", i)
		}
		f.NewLayer(l)
		f.NewLayer(a)
		width = spec.Units
	}
	out, err := full.New(width, classes, rng)
	if err != nil {
		return nil, errors.Wrap(err, "output layer")
	}
	f.NewLayer(out)
	return f, nil
}

// NewLayer adds a layer to the end of network.
func (f *FeedforwardNetwork) NewLayer(l layer.Layer) {
	f.layers = append(f.layers, l)
}

// Len returns the number of layers.
func (f FeedforwardNetwork) Len() int {
	return len(f.layers)
}

// Inputs returns the input width.
func (f FeedforwardNetwork) Inputs() int {
	return f.inputs
}

// Classes returns the output width.
func (f FeedforwardNetwork) Classes() (o int) {
	o = f.inputs
	for _, l := range f.layers {
		o = l.Outputs(o)
	}
	return
}

// Params returns every trainable parameter, in layer order.
func (f FeedforwardNetwork) Params() (o []*layer.Param) {
	for _, l := range f.layers {
		if t, ok := l.(layer.Trainable); ok {
			o = append(o, t.Params()...)
		}
	}
	return
}

// forward runs every layer on x, returning the logits and the combiners for Backward.
func (f FeedforwardNetwork) forward(x []float64) ([]float64, []layer.Combiner) {
	combiners := make([]layer.Combiner, len(f.layers))
	out := x
	for i, l := range f.layers {
		combiners[i] = l.Lay()
		out = combiners[i].Forward(out)
	}
	return out, combiners
}

// Infer returns the class probabilities of x.
func (f FeedforwardNetwork) Infer(x []float64) []float64 {
	logits, _ := f.forward(x)
	return Softmax(logits)
}

// Predict returns the most probable class of x and the class probabilities.
func (f FeedforwardNetwork) Predict(x []float64) (class int, probs []float64) {
	probs = f.Infer(x)
	for i, p := range probs {
		if p > probs[class] {
			class = i
		}
	}
	return
}

// Step performs one optimization step on batch and returns the mean loss of the
// batch before the update.
func (f *FeedforwardNetwork) Step(batch datasets.Dataset, opt learning.Optimizer) (loss float64, err error) {
	if batch.Len() == 0 {
		return 0, errors.New("empty batch")
	}
	params := f.Params()
	for _, p := range params {
		p.ZeroGrad()
	}
	for i, x := range batch.Features {
		if len(x) != f.inputs {
			return 0, errors.Errorf("row %d has %d features, network reads %d", i, len(x), f.inputs)
		}
		logits, combiners := f.forward(x)
		probs := Softmax(logits)
		loss += CrossEntropy(probs, batch.Labels[i])

		grad := probs
		grad[batch.Labels[i]] -= 1
		for j := len(combiners) - 1; j >= 0; j-- {
			grad = combiners[j].Backward(grad)
		}
	}
	scale := 1 / float64(batch.Len())
	for _, p := range params {
		p.ScaleGrad(scale)
	}
	opt.Step(params)
	return loss * scale, nil
}
