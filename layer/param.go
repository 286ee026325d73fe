package layer

// Param is a flat parameter tensor with its accumulated gradient.
type Param struct {
	Value []float64
	Grad  []float64
}

// NewParam allocates a zero parameter of size n.
func NewParam(n int) *Param {
	return &Param{
		Value: make([]float64, n),
		Grad:  make([]float64, n),
	}
}

// ZeroGrad clears the accumulated gradient.
func (p *Param) ZeroGrad() {
	for i := range p.Grad {
		p.Grad[i] = 0
	}
}

// ScaleGrad multiplies the accumulated gradient by s.
func (p *Param) ScaleGrad(s float64) {
	for i := range p.Grad {
		p.Grad[i] *= s
	}
}
