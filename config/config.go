// Package config loads the YAML experiment configuration.
package config

import "io/ioutil"
import "path/filepath"

import "github.com/pkg/errors"
import "gopkg.in/yaml.v2"

import "github.com/neurlang/verbs/datasets/responsive"
import "github.com/neurlang/verbs/layer/activation"
import "github.com/neurlang/verbs/learning"
import "github.com/neurlang/verbs/net/feedforward"
import "github.com/neurlang/verbs/trainer"
import "github.com/neurlang/verbs/verbs"

// ErrInvalid is returned for a configuration that cannot be run.
var ErrInvalid = errors.New("invalid configuration")

// invalidError matches ErrInvalid and unwraps to its cause.
type invalidError struct {
	cause error
}

func (e invalidError) Error() string        { return ErrInvalid.Error() + ": " + e.cause.Error() }
func (e invalidError) Unwrap() error        { return e.cause }
func (e invalidError) Is(target error) bool { return target == ErrInvalid }

// Layer is one hidden layer.
type Layer struct {
	Units      int    `yaml:"units"`
	Activation string `yaml:"activation"`
}

// Config is an experiment: the dataset, the model and the trials to run.
type Config struct {
	Name string `yaml:"name"`

	Verbs       []string `yaml:"verbs"`
	NumWorlds   int      `yaml:"num_worlds"`
	MaxCells    int      `yaml:"max_cells"`
	ItemsPerBin int      `yaml:"items_per_bin"`
	TriesPerBin int      `yaml:"tries_per_bin"`
	TestBinSize int      `yaml:"test_bin_size"`
	Embedding   string   `yaml:"embedding"`

	BatchSize int     `yaml:"batch_size"`
	NumEpochs int     `yaml:"num_epochs"`
	EvalSteps int     `yaml:"eval_steps"`
	StopLoss  float64 `yaml:"stop_loss"`
	NumTrials int     `yaml:"num_trials"`

	InputFeature string  `yaml:"input_feature"`
	Layers       []Layer `yaml:"layers"`
	Optimizer    string  `yaml:"optimizer"`
	LearningRate float64 `yaml:"learning_rate"`

	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
	Plot    bool  `yaml:"plot"`

	Train   bool `yaml:"train"`
	Eval    bool `yaml:"eval"`
	Predict bool `yaml:"predict"`

	// WriteDir defaults to Name/data.
	WriteDir string `yaml:"write_dir"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() Config {
	return Config{
		ItemsPerBin:  1000,
		TriesPerBin:  5000,
		TestBinSize:  200,
		Embedding:    "square",
		BatchSize:    32,
		NumEpochs:    10,
		EvalSteps:    50,
		StopLoss:     0.02,
		NumTrials:    1,
		InputFeature: "x",
		Layers:       []Layer{{Units: 32, Activation: "relu"}},
		Optimizer:    "adam",
		LearningRate: 0.001,
		Seed:         1,
		Train:        true,
		Eval:         true,
	}
}

// Parse decodes a YAML document over the defaults. Unknown keys are errors.
func Parse(src []byte) (Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(src, &c); err != nil {
		return c, errors.Wrap(err, "parsing config")
	}
	if c.WriteDir == "" {
		c.WriteDir = filepath.Join(c.Name, "data")
	}
	return c, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	return Parse(src)
}

// Validate checks c against the verbs of reg, or the built-in verbs when reg is
// nil. Errors match ErrInvalid, and verbs.ErrUnknownVerb for an unregistered verb.
func (c Config) Validate(reg *verbs.Registry) error {
	if reg == nil {
		reg = verbs.Builtin()
	}
	invalid := func(format string, args ...interface{}) error {
		return invalidError{errors.Errorf(format, args...)}
	}
	switch {
	case c.Name == "":
		return invalid("name is required")
	case c.BatchSize < 1:
		return invalid("batch_size must be at least 1, got %d", c.BatchSize)
	case c.NumEpochs < 1:
		return invalid("num_epochs must be at least 1, got %d", c.NumEpochs)
	case c.EvalSteps < 1:
		return invalid("eval_steps must be at least 1, got %d", c.EvalSteps)
	case c.NumTrials < 1:
		return invalid("num_trials must be at least 1, got %d", c.NumTrials)
	case c.LearningRate <= 0:
		return invalid("learning_rate must be positive, got %v", c.LearningRate)
	case c.Workers < 0:
		return invalid("workers must not be negative, got %d", c.Workers)
	case c.Eval && c.TestBinSize == 0:
		return invalid("eval needs test samples, test_bin_size is 0")
	}
	for i, l := range c.Layers {
		if l.Units < 1 {
			return invalid("layer %d needs at least 1 unit, got %d", i, l.Units)
		}
		if _, err := activation.ByName(l.Activation); err != nil {
			return invalidError{errors.Wrapf(err, "layer %d", i)}
		}
	}
	if err := c.Dataset(reg, 0).Validate(); err != nil {
		return invalidError{err}
	}
	if _, err := verbs.EmbeddingByName(c.Embedding, c.MaxCells); err != nil {
		return invalidError{err}
	}
	if _, err := c.HyperParameters().New(); err != nil {
		return invalidError{err}
	}
	if _, err := reg.Resolve(c.Verbs); err != nil {
		return invalidError{err}
	}
	return nil
}

// Dataset returns the generator options for trial n. Each trial draws its own
// data, seeded with Seed + n.
func (c Config) Dataset(reg *verbs.Registry, n int) responsive.Options {
	return responsive.Options{
		Verbs:          c.Verbs,
		NumWorlds:      c.NumWorlds,
		MaxCells:       c.MaxCells,
		ItemsPerBin:    c.ItemsPerBin,
		MaxTriesPerBin: c.TriesPerBin,
		TestBinSize:    c.TestBinSize,
		Embedding:      c.Embedding,
		Seed:           c.TrialSeed(n),
		Workers:        c.Workers,
		Registry:       reg,
	}
}

// TrialSeed is the seed of trial n.
func (c Config) TrialSeed(n int) int64 {
	return c.Seed + int64(n)
}

// HiddenLayers returns the network layers.
func (c Config) HiddenLayers() []feedforward.LayerSpec {
	o := make([]feedforward.LayerSpec, len(c.Layers))
	for i, l := range c.Layers {
		o[i] = feedforward.LayerSpec{Units: l.Units, Activation: l.Activation}
	}
	return o
}

// HyperParameters returns the optimizer settings.
func (c Config) HyperParameters() learning.HyperParameters {
	return learning.HyperParameters{Optimizer: c.Optimizer, LearningRate: c.LearningRate}.Defaults()
}

// Loop returns the training loop bounds.
func (c Config) Loop() trainer.Params {
	return trainer.Params{BatchSize: c.BatchSize, NumEpochs: c.NumEpochs}
}
