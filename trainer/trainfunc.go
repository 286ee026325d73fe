package trainer

import "github.com/neurlang/verbs/datasets"
import "github.com/neurlang/verbs/learning"
import "github.com/neurlang/verbs/net/feedforward"

// TrainFunc performs one optimization step on a batch and returns its loss.
type TrainFunc func(batch datasets.Dataset) (float64, error)

// NewTrainFunc steps net with opt.
func NewTrainFunc(net *feedforward.FeedforwardNetwork, opt learning.Optimizer) TrainFunc {
	return func(batch datasets.Dataset) (float64, error) {
		return net.Step(batch, opt)
	}
}
