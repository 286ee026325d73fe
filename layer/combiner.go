package layer

// Combiner evaluates a layer on one sample and propagates gradients back through it.
// A combiner is used by one goroutine at a time.
type Combiner interface {

	// Forward computes the output for input in. The combiner may keep in.
	Forward(in []float64) []float64

	// Backward takes the loss gradient with respect to the last Forward output,
	// adds the parameter gradients to the layer and returns the gradient with respect
	// to the input.
	Backward(grad []float64) []float64
}
