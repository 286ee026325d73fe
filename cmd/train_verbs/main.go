package main

import "context"
import "os"
import "os/signal"

import arg "github.com/alexflint/go-arg"

import "github.com/neurlang/verbs/config"
import "github.com/neurlang/verbs/parallel"

type args struct {
	Config    string `arg:"--config,required" help:"experiment YAML file"`
	Train     bool   `arg:"--train" help:"train the model (default from config)"`
	NoTrain   bool   `arg:"--no_train" help:"skip training, load the trial checkpoints"`
	Eval      bool   `arg:"--eval" help:"evaluate with early stopping while training"`
	NoEval    bool   `arg:"--no_eval" help:"train for num_epochs without evaluation"`
	Predict   bool   `arg:"--predict" help:"write test set predictions"`
	NoPredict bool   `arg:"--no_predict" help:"do not write predictions"`
	WriteDir  string `arg:"--write_dir" help:"output directory (default <name>/data)"`
	Verbose   bool   `arg:"-v,--verbose" help:"debug logging"`
	PGO       bool   `arg:"--pgo" help:"write a CPU profile to default.pgo"`
}

func (args) Description() string {
	return "trains classifiers on responsive verb datasets"
}

// apply overrides the config toggles set on the command line.
func (a args) apply(c *config.Config) {
	toggle := func(dst *bool, on, off bool) {
		if on {
			*dst = true
		}
		if off {
			*dst = false
		}
	}
	toggle(&c.Train, a.Train, a.NoTrain)
	toggle(&c.Eval, a.Eval, a.NoEval)
	toggle(&c.Predict, a.Predict, a.NoPredict)
	if a.WriteDir != "" {
		c.WriteDir = a.WriteDir
	}
}

func main() {
	var a args
	arg.MustParse(&a)
	os.Exit(a.run())
}

// run returns the exit code. It returns instead of exiting so deferred calls run.
func (a args) run() int {
	log := newLogger(a.Verbose)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(a.Config)
	if err != nil {
		log.Errorw("loading config", "path", a.Config, "error", err)
		return 1
	}
	a.apply(&cfg)

	if a.PGO {
		stopProfile, err := startProfile(pgoProfile)
		if err != nil {
			log.Errorw("starting profile", "error", err)
			return 1
		}
		defer stopProfile()
	}

	log.Infow("starting", "cpu", parallel.CPU(), "workers", parallel.Workers(cfg.Workers),
		"name", cfg.Name, "write_dir", cfg.WriteDir)

	if err := newRunner(cfg, log).run(ctx); err != nil {
		log.Errorw("run failed", "error", err)
		return 1
	}
	return 0
}
