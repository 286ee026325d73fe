package learning

import "math"

import "github.com/neurlang/verbs/layer"

// Optimizer applies the accumulated gradients to the parameters.
type Optimizer interface {
	Step(params []*layer.Param)
}

// SGD is gradient descent with optional momentum.
type SGD struct {
	h        HyperParameters
	velocity map[*layer.Param][]float64
}

// NewSGD creates a gradient descent optimizer.
func NewSGD(h HyperParameters) *SGD {
	return &SGD{h: h.Defaults(), velocity: make(map[*layer.Param][]float64)}
}

// Step moves every value against its gradient.
func (o *SGD) Step(params []*layer.Param) {
	for _, p := range params {
		if o.h.Momentum == 0 {
			for i, g := range p.Grad {
				p.Value[i] -= o.h.LearningRate * g
			}
			continue
		}
		v, ok := o.velocity[p]
		if !ok {
			v = make([]float64, len(p.Value))
			o.velocity[p] = v
		}
		for i, g := range p.Grad {
			v[i] = o.h.Momentum*v[i] - o.h.LearningRate*g
			p.Value[i] += v[i]
		}
	}
}

// Adam is the adaptive moment estimation optimizer.
type Adam struct {
	h    HyperParameters
	t    int
	m, v map[*layer.Param][]float64
}

// NewAdam creates an Adam optimizer.
func NewAdam(h HyperParameters) *Adam {
	return &Adam{
		h: h.Defaults(),
		m: make(map[*layer.Param][]float64),
		v: make(map[*layer.Param][]float64),
	}
}

// Step performs one bias corrected Adam update.
func (o *Adam) Step(params []*layer.Param) {
	o.t++
	c1 := 1 - math.Pow(o.h.Beta1, float64(o.t))
	c2 := 1 - math.Pow(o.h.Beta2, float64(o.t))
	for _, p := range params {
		m, ok := o.m[p]
		if !ok {
			m = make([]float64, len(p.Value))
			o.m[p] = m
			o.v[p] = make([]float64, len(p.Value))
		}
		v := o.v[p]
		for i, g := range p.Grad {
			m[i] = o.h.Beta1*m[i] + (1-o.h.Beta1)*g
			v[i] = o.h.Beta2*v[i] + (1-o.h.Beta2)*g*g
			p.Value[i] -= o.h.LearningRate * (m[i] / c1) / (math.Sqrt(v[i]/c2) + o.h.Epsilon)
		}
	}
}
