package full

// Full is the per-sample state of a FullLayer.
type Full struct {
	layer *FullLayer
	in    []float64
}

// Forward computes W in + b.
func (f *Full) Forward(in []float64) []float64 {
	l := f.layer
	f.in = in
	out := make([]float64, l.outputs)
	w := l.weights.Value
	for j := range out {
		sum := l.biases.Value[j]
		row := w[j*l.inputs : (j+1)*l.inputs]
		for i, x := range in {
			sum += row[i] * x
		}
		out[j] = sum
	}
	return out
}

// Backward accumulates dL/dW = grad in^T and dL/db = grad, and returns W^T grad.
func (f *Full) Backward(grad []float64) []float64 {
	l := f.layer
	dx := make([]float64, l.inputs)
	w, gw, gb := l.weights.Value, l.weights.Grad, l.biases.Grad
	for j, g := range grad {
		if g == 0 {
			continue
		}
		gb[j] += g
		off := j * l.inputs
		for i, x := range f.in {
			gw[off+i] += g * x
			dx[i] += w[off+i] * g
		}
	}
	return dx
}
