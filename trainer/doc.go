// Package trainer runs minibatch training of a feedforward network. It provides the
// evaluation func, the early stopping hook, the training loop and the per trial
// outputs: the metrics CSV, the learning curve plot and the summary across trials.
package trainer
