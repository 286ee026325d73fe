// Package layer defines the layer, combiner and parameter types of the feedforward network
package layer

// Layer is the layer which can be used for instantiating a combiner
type Layer interface {

	// Lay creates a combiner holding the state of one forward pass.
	Lay() Combiner

	// Outputs reports the output width for an input of width inputs.
	Outputs(inputs int) int
}

// Trainable is a layer with parameters.
type Trainable interface {
	Layer

	// Params returns the parameters in a fixed order.
	Params() []*Param
}
