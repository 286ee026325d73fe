package main

import "context"
import "math/rand"
import "os"
import "path/filepath"

import "github.com/google/uuid"
import "github.com/pkg/errors"
import "go.uber.org/zap"

import "github.com/neurlang/verbs/config"
import "github.com/neurlang/verbs/datasets"
import "github.com/neurlang/verbs/datasets/responsive"
import "github.com/neurlang/verbs/hash"
import "github.com/neurlang/verbs/inference"
import "github.com/neurlang/verbs/net/feedforward"
import "github.com/neurlang/verbs/trainer"
import "github.com/neurlang/verbs/verbs"

const (
	// weightStream and loopStream are per trial random streams, apart from the
	// low indices used by the strata.
	weightStream = ^uint32(0) - 1
	loopStream   = ^uint32(0) - 2
)

type runner struct {
	cfg     config.Config
	reg     *verbs.Registry
	log     *zap.SugaredLogger
	summary trainer.Summary
}

func newRunner(cfg config.Config, log *zap.SugaredLogger) *runner {
	return &runner{
		cfg:     cfg,
		reg:     verbs.Builtin(),
		log:     log,
		summary: trainer.Summary{RunID: uuid.New().String()},
	}
}

func (r *runner) run(ctx context.Context) error {
	if err := r.cfg.Validate(r.reg); err != nil {
		return err
	}
	if err := os.MkdirAll(r.cfg.WriteDir, 0o755); err != nil {
		return errors.Wrap(err, "creating write dir")
	}
	for n := 0; n < r.cfg.NumTrials; n++ {
		if err := r.trial(ctx, n); err != nil {
			return errors.Wrapf(err, "trial %d", n)
		}
	}
	if len(r.summary.Trials) == 0 {
		return nil
	}
	r.summary.Log(r.log)
	return r.summary.Write(filepath.Join(r.cfg.WriteDir, "summary.csv"))
}

func (r *runner) trial(ctx context.Context, n int) error {
	log := r.log.With("trial", n)
	log.Infof("------ TRIAL %d -----", n)

	opts := r.cfg.Dataset(r.reg, n)
	opts.Logger = log
	gen, err := responsive.New(opts)
	if err != nil {
		return err
	}
	test := gen.TestData(false)
	seed := r.cfg.TrialSeed(n)
	modelPath := trainer.TrialPath(r.cfg.WriteDir, n, ".model")

	var net *feedforward.FeedforwardNetwork
	if r.cfg.Train {
		log.Info("-- TRAINING --")
		net, err = r.train(ctx, log, n, gen.FeatureLength(), gen.TrainingData(true), test, seed)
		if err != nil {
			return err
		}
		if err := net.WriteCompressedWeightsToFile(modelPath, r.cfg.InputFeature); err != nil {
			return errors.Wrap(err, "writing checkpoint")
		}
	} else if r.cfg.Predict {
		net, err = trainer.Resume(modelPath, gen.FeatureLength(), r.cfg.InputFeature)
		if err != nil {
			return err
		}
	}

	if r.cfg.Predict {
		log.Info("-- PREDICTING --")
		preds := inference.Predict(net, test)
		path := trainer.TrialPath(r.cfg.WriteDir, n, "_predictions.csv")
		if err := inference.WritePredictions(path, preds); err != nil {
			return err
		}
		log.Infow("predictions written", "path", path, "rows", len(preds), "accuracy", inference.Accuracy(preds))
	}
	return nil
}

func (r *runner) train(ctx context.Context, log *zap.SugaredLogger, n, width int,
	data, test datasets.Dataset, seed int64) (*feedforward.FeedforwardNetwork, error) {

	if data.Len() == 0 {
		return nil, errors.Errorf("no training data: every sample went to the test bins (test_bin_size %d)",
			r.cfg.TestBinSize)
	}
	net, err := feedforward.Build(width, r.cfg.HiddenLayers(), 2,
		rand.New(rand.NewSource(hash.Stream(seed, weightStream))))
	if err != nil {
		return nil, err
	}
	opt, err := r.cfg.HyperParameters().New()
	if err != nil {
		return nil, err
	}

	var hooks []trainer.Hook
	var stop *trainer.EarlyStop
	if r.cfg.Eval {
		stop = trainer.NewEarlyStop(trainer.NewEvaluateFunc(net, test), r.cfg.EvalSteps, r.cfg.StopLoss, log)
		hooks = append(hooks, stop)
	}

	res, err := trainer.Loop(ctx, trainer.NewTrainFunc(net, opt), data, r.cfg.Loop(),
		rand.New(rand.NewSource(hash.Stream(seed, loopStream))), hooks, log)
	if err != nil {
		return nil, err
	}
	log.Infow("training done", "steps", res.Steps, "loss", res.Loss, "stopped", res.Stopped)

	var last *trainer.EvalResult
	if stop != nil {
		if l, ok := stop.Last(); ok {
			last = &l
		}
		if err := trainer.WriteTrial(trainer.TrialPath(r.cfg.WriteDir, n, ".csv"), stop.Series); err != nil {
			return nil, err
		}
		if r.cfg.Plot && len(stop.Series) > 0 {
			path := trainer.TrialPath(r.cfg.WriteDir, n, ".png")
			if err := trainer.PlotTrial(path, r.cfg.Name, stop.Series); err != nil {
				return nil, errors.Wrap(err, "plotting")
			}
		}
	}
	r.summary.Add(n, res, last)
	return net, nil
}
