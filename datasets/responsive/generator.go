// Package responsive implements the responsive verb dataset: unique, balanced
// samples per (verb, truth value) stratum, encoded into fixed-length vectors and
// split into train and test bins.
package responsive

import "math/rand"
import "sync"

import "github.com/dustin/go-humanize"
import "github.com/pkg/errors"
import "go.uber.org/zap"

import "github.com/neurlang/verbs/datasets"
import "github.com/neurlang/verbs/hash"
import "github.com/neurlang/verbs/parallel"
import "github.com/neurlang/verbs/verbs"

// shuffleStream is the random stream index reserved for shuffling.
const shuffleStream = ^uint32(0)

// Sample is one accepted triple with its key and encoding.
type Sample struct {
	Partition verbs.Partition
	World     int
	Truth     []float64

	Key   verbs.Key
	Point []float64
}

// DoxInP reports whether the sample's world is in its doxastic set.
func (s Sample) DoxInP() bool {
	return s.Truth[s.World] != 0
}

// StratumCount summarizes the generation of one stratum.
type StratumCount struct {
	Stratum datasets.Stratum

	// Count is the number of unique samples accepted.
	Count int

	// Tries is the number of draws made.
	Tries int

	// Unsatisfiable counts draws where the verb found no matching world.
	Unsatisfiable int

	Test  int
	Train int
}

// Exhausted reports whether generation stopped on the tries budget rather than
// on reaching the target size.
func (c StratumCount) Exhausted(itemsPerBin int) bool {
	return c.Count < itemsPerBin
}

type bin struct {
	accepted      []Sample
	tries         int
	unsatisfiable int

	test, train []Sample
}

// Generator holds the generated dataset. It is immutable after New returns.
type Generator struct {
	opts   Options
	verbs  []verbs.Verb
	codec  codec
	strata []datasets.Stratum
	bins   []bin
	log    *zap.SugaredLogger

	mut sync.Mutex
	rng *rand.Rand
}

// New validates opts, resolves the verbs and generates every stratum.
func New(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Registry == nil {
		opts.Registry = verbs.Builtin()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	vs, err := opts.Registry.Resolve(opts.Verbs)
	if err != nil {
		return nil, err
	}
	embed, err := verbs.EmbeddingByName(opts.Embedding, opts.MaxCells)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		opts:  opts,
		verbs: vs,
		codec: newCodec(opts.NumWorlds, len(vs), embed),
		log:   opts.Logger,
		rng:   rand.New(rand.NewSource(hash.Stream(opts.Seed, shuffleStream))),
	}
	for _, v := range vs {
		for _, truth := range []bool{true, false} {
			g.strata = append(g.strata, datasets.Stratum{Verb: v.Name(), Truth: truth})
		}
	}
	g.bins = make([]bin, len(g.strata))

	err = parallel.ForEach(len(g.strata), parallel.Workers(opts.Workers), func(i int) error {
		rng := rand.New(rand.NewSource(hash.Stream(opts.Seed, uint32(i))))
		return g.generate(i, vs[i/2], rng)
	})
	if err != nil {
		return nil, err
	}

	g.split()
	return g, nil
}

// generate fills bin i. It touches only g.bins[i].
func (g *Generator) generate(i int, v verbs.Verb, rng *rand.Rand) error {
	var (
		s    = g.strata[i]
		b    = &g.bins[i]
		seen = make(map[verbs.Key]struct{}, g.opts.ItemsPerBin)
	)
	for len(b.accepted) < g.opts.ItemsPerBin && b.tries < g.opts.MaxTriesPerBin {
		b.tries++
		p, w, truth, err := v.Generate(rng, g.opts.NumWorlds, s.Truth, g.opts.MaxCells)
		if errors.Is(err, verbs.ErrUnsatisfiable) {
			b.unsatisfiable++
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "generating %s", s)
		}
		if err := g.check(p, w, truth); err != nil {
			return errors.Wrapf(err, "verb %s produced an invalid sample", s.Verb)
		}
		key := verbs.Canonical(p, w, truth)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		b.accepted = append(b.accepted, Sample{
			Partition: p,
			World:     w,
			Truth:     truth,
			Key:       key,
			Point:     g.codec.encode(p, w, truth),
		})
	}
	return nil
}

func (g *Generator) check(p verbs.Partition, w int, truth []float64) error {
	if err := p.Validate(g.opts.NumWorlds); err != nil {
		return err
	}
	if p.Len() > g.opts.MaxCells {
		return errors.Errorf("partition has %d cells, max_cells is %d", p.Len(), g.opts.MaxCells)
	}
	if w < 0 || w >= g.opts.NumWorlds {
		return errors.Errorf("world %d out of range [0, %d)", w, g.opts.NumWorlds)
	}
	if len(truth) != g.opts.NumWorlds {
		return errors.Errorf("truth vector has length %d, want %d", len(truth), g.opts.NumWorlds)
	}
	return nil
}

// split cuts every stratum into its test prefix and train remainder and logs the
// per-stratum summary. A stratum smaller than the test bin goes entirely to test.
func (g *Generator) split() {
	g.log.Info("Generated this many data points:")
	for i, s := range g.strata {
		b := &g.bins[i]
		n := g.opts.TestBinSize
		if n > len(b.accepted) {
			n = len(b.accepted)
			g.log.Warnw("stratum smaller than test bin, train bin is empty",
				"stratum", s.String(), "count", len(b.accepted), "test_bin_size", g.opts.TestBinSize)
		}
		b.test = b.accepted[:n:n]
		b.train = b.accepted[n:]

		g.log.Infow("stratum",
			"stratum", s.String(),
			"count", humanize.Comma(int64(len(b.accepted))),
			"tries", humanize.Comma(int64(b.tries)),
			"test", len(b.test),
			"train", len(b.train))
		if len(b.accepted) < g.opts.ItemsPerBin {
			g.log.Warnw("stratum under-filled, tries exhausted",
				"stratum", s.String(), "count", len(b.accepted), "items_per_bin", g.opts.ItemsPerBin,
				"unsatisfiable", b.unsatisfiable)
		}
	}
}

// Strata lists the strata in label order: each verb with true, then false.
func (g *Generator) Strata() []datasets.Stratum {
	return append([]datasets.Stratum(nil), g.strata...)
}

// Counts summarizes every stratum, in Strata order.
func (g *Generator) Counts() []StratumCount {
	o := make([]StratumCount, len(g.strata))
	for i, s := range g.strata {
		b := g.bins[i]
		o[i] = StratumCount{
			Stratum:       s,
			Count:         len(b.accepted),
			Tries:         b.tries,
			Unsatisfiable: b.unsatisfiable,
			Test:          len(b.test),
			Train:         len(b.train),
		}
	}
	return o
}

// Bins returns the test and train samples of stratum s. The slices must not be
// modified.
func (g *Generator) Bins(s datasets.Stratum) (test, train []Sample, ok bool) {
	for i := range g.strata {
		if g.strata[i] == s {
			return g.bins[i].test, g.bins[i].train, true
		}
	}
	return nil, nil, false
}

// NumVerbs is the number of verbs, which is also the verb label length.
func (g *Generator) NumVerbs() int {
	return len(g.verbs)
}

// PointLength is the encoded sample length before the verb label.
func (g *Generator) PointLength() int {
	return g.codec.pointLength()
}

// FeatureLength is the row length of TrainingData and TestData.
func (g *Generator) FeatureLength() int {
	return g.codec.pointLength() + len(g.verbs)
}

// Options returns the options the generator was built with.
func (g *Generator) Options() Options {
	return g.opts
}
