package responsive

import "go.uber.org/zap"

import "github.com/pkg/errors"

import "github.com/neurlang/verbs/verbs"

// Options configures a Generator.
type Options struct {
	// Verbs names the verbs to generate for, in label order.
	Verbs []string

	NumWorlds int
	MaxCells  int

	// ItemsPerBin is the target number of unique samples per stratum.
	ItemsPerBin int

	// MaxTriesPerBin bounds the draws per stratum, accepted or not.
	MaxTriesPerBin int

	// TestBinSize samples of each stratum are reserved for testing.
	TestBinSize int

	// Embedding is "square" (default) or "cells".
	Embedding string

	// Seed drives generation and shuffling.
	Seed int64

	// Workers bounds concurrent strata. 0 uses every logical core.
	Workers int

	// Registry resolves Verbs. Nil means verbs.Builtin().
	Registry *verbs.Registry

	// Logger receives the generation summary. Nil discards it.
	Logger *zap.SugaredLogger
}

// DefaultOptions returns options with the default bin sizes filled in.
func DefaultOptions(verbNames []string, numWorlds, maxCells int) Options {
	return Options{
		Verbs:          verbNames,
		NumWorlds:      numWorlds,
		MaxCells:       maxCells,
		ItemsPerBin:    1000,
		MaxTriesPerBin: 5000,
		TestBinSize:    200,
		Embedding:      "square",
		Seed:           1,
	}
}

// Validate checks the numeric options and the verb list shape. Verb names are
// resolved separately.
func (o Options) Validate() error {
	switch {
	case len(o.Verbs) == 0:
		return errors.New("no verbs given")
	case o.NumWorlds < 1:
		return errors.Errorf("num_worlds must be at least 1, got %d", o.NumWorlds)
	case o.MaxCells < 1:
		return errors.Errorf("max_cells must be at least 1, got %d", o.MaxCells)
	case o.ItemsPerBin < 1:
		return errors.Errorf("items_per_bin must be at least 1, got %d", o.ItemsPerBin)
	case o.MaxTriesPerBin < 1:
		return errors.Errorf("tries_per_bin must be at least 1, got %d", o.MaxTriesPerBin)
	case o.TestBinSize < 0:
		return errors.Errorf("test_bin_size must not be negative, got %d", o.TestBinSize)
	case o.TestBinSize > o.ItemsPerBin:
		return errors.Errorf("test_bin_size %d exceeds items_per_bin %d", o.TestBinSize, o.ItemsPerBin)
	}
	seen := make(map[string]struct{}, len(o.Verbs))
	for _, name := range o.Verbs {
		if _, ok := seen[name]; ok {
			return errors.Errorf("verb %q listed twice", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
