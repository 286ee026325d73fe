package feedforward

import "math"

// minProb keeps the cross-entropy finite.
const minProb = 1e-12

// Softmax returns the normalized exponentials of logits, computed stably.
func Softmax(logits []float64) []float64 {
	max := math.Inf(-1)
	for _, v := range logits {
		if v > max {
			max = v
		}
	}
	o := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		o[i] = math.Exp(v - max)
		sum += o[i]
	}
	for i := range o {
		o[i] /= sum
	}
	return o
}

// CrossEntropy is the negative log probability of class y.
func CrossEntropy(probs []float64, y int) float64 {
	return -math.Log(math.Max(probs[y], minProb))
}
