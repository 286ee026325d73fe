package trainer

import "go.uber.org/zap"

// Hook runs after every training step. Returning stop ends the loop.
type Hook interface {
	AfterStep(step int, loss float64) (stop bool, err error)
}

// EarlyStop evaluates every EvalSteps steps, starting at step 1, keeps every
// result in Series, and stops the loop once the evaluation loss is below StopLoss.
// Evaluations over no samples are dropped and never stop the loop.
type EarlyStop struct {
	Evaluate  func() EvalResult
	EvalSteps int
	StopLoss  float64

	Series []EvalResult

	log *zap.SugaredLogger
}

// NewEarlyStop creates the hook. A nil log discards the per evaluation line.
func NewEarlyStop(evaluate func() EvalResult, evalSteps int, stopLoss float64, log *zap.SugaredLogger) *EarlyStop {
	if evalSteps < 1 {
		evalSteps = 1
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &EarlyStop{
		Evaluate:  evaluate,
		EvalSteps: evalSteps,
		StopLoss:  stopLoss,
		log:       log,
	}
}

func (e *EarlyStop) AfterStep(step int, _ float64) (bool, error) {
	if (step-1)%e.EvalSteps != 0 {
		return false, nil
	}
	r := e.Evaluate()
	r.GlobalStep = step
	if r.Samples == 0 {
		e.log.Warnw("evaluation skipped, no test samples", "global_step", step)
		return false, nil
	}
	e.Series = append(e.Series, r)
	e.log.Infow("evaluation",
		"global_step", step,
		"loss", r.Loss,
		"accuracy", r.Accuracy,
		"precision", r.Precision,
		"recall", r.Recall)
	if r.Loss < e.StopLoss {
		e.log.Infow("early stop", "global_step", step, "loss", r.Loss, "stop_loss", e.StopLoss)
		return true, nil
	}
	return false, nil
}

// Last returns the latest evaluation, if any.
func (e *EarlyStop) Last() (EvalResult, bool) {
	if len(e.Series) == 0 {
		return EvalResult{}, false
	}
	return e.Series[len(e.Series)-1], true
}
