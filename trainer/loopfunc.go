package trainer

import "context"
import "math/rand"

import "github.com/pkg/errors"
import "go.uber.org/zap"

import "github.com/neurlang/verbs/datasets"

// Params bound the loop.
type Params struct {
	BatchSize int
	NumEpochs int
}

// Result describes a finished loop.
type Result struct {
	// Steps is the number of minibatches trained, the last global step.
	Steps int

	// Loss is the training loss of the last step.
	Loss float64

	// Stopped reports whether a hook ended the loop early.
	Stopped bool
}

// Loop trains for p.NumEpochs passes over data, reshuffled with rng before each
// pass, in minibatches of p.BatchSize. The global step counts minibatches from 1.
// Hooks run in order after every step. Loop returns ctx.Err() when ctx is done.
func Loop(ctx context.Context, train TrainFunc, data datasets.Dataset, p Params, rng *rand.Rand,
	hooks []Hook, log *zap.SugaredLogger) (res Result, err error) {

	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if p.BatchSize < 1 {
		return res, errors.Errorf("batch size must be at least 1, got %d", p.BatchSize)
	}
	if data.Len() == 0 {
		return res, errors.New("no training data")
	}
	for epoch := 0; epoch < p.NumEpochs; epoch++ {
		epochData := data.Copy()
		epochData.Shuffle(rng)
		for _, batch := range epochData.Batches(p.BatchSize) {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			res.Loss, err = train(batch)
			if err != nil {
				return res, errors.Wrapf(err, "step %d", res.Steps+1)
			}
			res.Steps++
			for _, h := range hooks {
				stop, err := h.AfterStep(res.Steps, res.Loss)
				if err != nil {
					return res, errors.Wrapf(err, "hook at step %d", res.Steps)
				}
				res.Stopped = res.Stopped || stop
			}
			if res.Stopped {
				log.Debugw("loop stopped by hook", "epoch", epoch, "global_step", res.Steps)
				return res, nil
			}
		}
		log.Debugw("epoch done", "epoch", epoch, "global_step", res.Steps, "loss", res.Loss)
	}
	return res, nil
}
