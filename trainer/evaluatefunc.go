package trainer

import "github.com/neurlang/verbs/datasets"
import "github.com/neurlang/verbs/net/feedforward"

// EvalResult holds the metrics of one evaluation pass. It is one row of the trial CSV.
type EvalResult struct {
	GlobalStep int     `csv:"global_step"`
	Loss       float64 `csv:"loss"`
	Accuracy   float64 `csv:"accuracy"`
	Precision  float64 `csv:"precision"`
	Recall     float64 `csv:"recall"`

	// Samples is the number of rows evaluated. A result over no rows has no metrics.
	Samples int `csv:"-"`
}

// NewEvaluateFunc returns a func computing the mean cross-entropy, accuracy, and
// precision and recall on class 1 of net over test.
func NewEvaluateFunc(net *feedforward.FeedforwardNetwork, test datasets.Dataset) func() EvalResult {
	return func() (r EvalResult) {
		if test.Len() == 0 {
			return
		}
		var correct, tp, fp, fn int
		for i, x := range test.Features {
			y := test.Labels[i]
			class, probs := net.Predict(x)
			r.Loss += feedforward.CrossEntropy(probs, y)
			switch {
			case class == y:
				correct++
				if y == 1 {
					tp++
				}
			case class == 1:
				fp++
			case y == 1:
				fn++
			}
		}
		r.Samples = test.Len()
		n := float64(test.Len())
		r.Loss /= n
		r.Accuracy = float64(correct) / n
		r.Precision = ratio(tp, tp+fp)
		r.Recall = ratio(tp, tp+fn)
		return
	}
}

// ratio is a/b, or 0 when b is 0.
func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
