package responsive

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/verbs/datasets"
	"github.com/neurlang/verbs/verbs"
)

type triple struct {
	p     verbs.Partition
	world int
	truth []float64
}

// tinyVerb draws from a fixed pool of triples per truth value.
type tinyVerb map[bool][]triple

func (tinyVerb) Name() string { return "tiny" }

func (t tinyVerb) Generate(rng *rand.Rand, numWorlds int, truth bool, maxCells int) (verbs.Partition, int, []float64, error) {
	pool := t[truth]
	x := pool[rng.Intn(len(pool))]
	return x.p, x.world, append([]float64(nil), x.truth...), nil
}

// tiny has exactly 5 unique true triples (6 entries, one reordered duplicate)
// and 3 unique false triples.
var tiny = tinyVerb{
	true: {
		{verbs.Partition{{0, 1, 2}}, 0, []float64{1, 0, 0}},
		{verbs.Partition{{0, 1, 2}}, 1, []float64{1, 0, 0}},
		{verbs.Partition{{0}, {1, 2}}, 0, []float64{1, 0, 0}},
		{verbs.Partition{{2, 1}, {0}}, 0, []float64{1, 0, 0}},
		{verbs.Partition{{0}, {1, 2}}, 0, []float64{1, 1, 0}},
		{verbs.Partition{{0, 2}, {1}}, 2, []float64{0, 0, 1}},
	},
	false: {
		{verbs.Partition{{0}, {1}, {2}}, 0, []float64{0, 1, 1}},
		{verbs.Partition{{0}, {1}, {2}}, 1, []float64{0, 1, 1}},
		{verbs.Partition{{0, 1}, {2}}, 2, []float64{1, 1, 1}},
	},
}

func tinyRegistry(t *testing.T) *verbs.Registry {
	r := verbs.Builtin()
	require.NoError(t, r.Register(tiny))
	return r
}

func builtinOptions() Options {
	o := DefaultOptions([]string{"know", "wonder"}, 4, 3)
	o.ItemsPerBin = 60
	o.MaxTriesPerBin = 400
	o.TestBinSize = 20
	o.Seed = 7
	o.Workers = 2
	return o
}

func rowKey(d datasets.Dataset, i int) string {
	return fmt.Sprint(d.Features[i], d.Labels[i])
}

func TestTinyVerbStopsOnTries(t *testing.T) {
	o := DefaultOptions([]string{"tiny"}, 3, 4)
	o.ItemsPerBin = 10
	o.MaxTriesPerBin = 100
	o.TestBinSize = 2
	o.Registry = tinyRegistry(t)

	g, err := New(o)
	require.NoError(t, err)

	c := g.Counts()
	require.Len(t, c, 2)

	assert.Equal(t, datasets.Stratum{Verb: "tiny", Truth: true}, c[0].Stratum)
	assert.Equal(t, 5, c[0].Count)
	assert.Equal(t, 100, c[0].Tries)
	assert.True(t, c[0].Exhausted(o.ItemsPerBin))
	assert.Equal(t, 2, c[0].Test)
	assert.Equal(t, 3, c[0].Train)

	assert.Equal(t, 3, c[1].Count)
	assert.Equal(t, 100, c[1].Tries)

	assert.Equal(t, 15, g.PointLength())
	assert.Equal(t, 16, g.FeatureLength())
	assert.Equal(t, 4, g.TrainingData(true).Len())
	assert.Equal(t, 4, g.TestData(false).Len())
}

func TestStopsOnItemsPerBin(t *testing.T) {
	o := DefaultOptions([]string{"tiny"}, 3, 4)
	o.ItemsPerBin = 3
	o.MaxTriesPerBin = 1000
	o.TestBinSize = 1
	o.Registry = tinyRegistry(t)

	g, err := New(o)
	require.NoError(t, err)
	for _, c := range g.Counts() {
		assert.Equal(t, 3, c.Count)
		assert.True(t, c.Tries < 1000)
		assert.False(t, c.Exhausted(o.ItemsPerBin))
	}
}

func TestBinSizes(t *testing.T) {
	o := builtinOptions()
	g, err := New(o)
	require.NoError(t, err)

	var total int
	for _, c := range g.Counts() {
		assert.True(t, c.Count <= o.ItemsPerBin)
		assert.Equal(t, c.Count, c.Test+c.Train)
		want := o.TestBinSize
		if c.Count < want {
			want = c.Count
		}
		assert.Equal(t, want, c.Test)
		total += c.Count
	}
	assert.Equal(t, total, g.TrainingData(false).Len()+g.TestData(false).Len())
}

func TestUniqueWithinStratum(t *testing.T) {
	g, err := New(builtinOptions())
	require.NoError(t, err)

	for _, s := range g.Strata() {
		test, train, ok := g.Bins(s)
		require.True(t, ok)
		seen := make(map[verbs.Key]struct{})
		for _, sample := range append(append([]Sample(nil), test...), train...) {
			key := verbs.Canonical(sample.Partition, sample.World, sample.Truth)
			assert.Equal(t, key, sample.Key)
			_, dup := seen[key]
			assert.False(t, dup, "duplicate %s in %s", key, s)
			seen[key] = struct{}{}
		}
	}
}

func TestPointLength(t *testing.T) {
	o := builtinOptions()
	g, err := New(o)
	require.NoError(t, err)

	assert.Equal(t, 4*4+2*4, g.PointLength())
	assert.Equal(t, 4*4+2*4+2, g.FeatureLength())
	for _, s := range g.Strata() {
		test, train, _ := g.Bins(s)
		for _, sample := range append(append([]Sample(nil), test...), train...) {
			require.Len(t, sample.Point, g.PointLength())
		}
	}
	d := g.TrainingData(true)
	for _, x := range d.Features {
		require.Len(t, x, g.FeatureLength())
	}

	o.Embedding = "cells"
	g, err = New(o)
	require.NoError(t, err)
	assert.Equal(t, 4*3+2*4, g.PointLength())
	assert.Equal(t, g.FeatureLength(), g.TestData(false).Width())
}

func TestEncoding(t *testing.T) {
	c := newCodec(3, 2, verbs.SquareEmbedding{})
	p := verbs.Partition{{0, 2}, {1}}
	point := c.encode(p, 1, []float64{1, 1, 0})
	assert.Equal(t, []float64{
		1, 0, 1,
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
		1, 1, 0,
	}, point)
	assert.Equal(t, point, c.encode(p, 1, []float64{1, 1, 0}))

	labeled := c.label(point, 1)
	assert.Equal(t, []float64{0, 1}, labeled[len(point):])
	assert.Len(t, point, 15)
}

func TestTrainTestDisjoint(t *testing.T) {
	g, err := New(builtinOptions())
	require.NoError(t, err)

	train := g.TrainingData(true)
	test := g.TestData(false)
	rows := make(map[string]struct{})
	for i := 0; i < train.Len(); i++ {
		rows[rowKey(train, i)] = struct{}{}
	}
	for i := 0; i < test.Len(); i++ {
		_, ok := rows[rowKey(test, i)]
		assert.False(t, ok, "test row %d also in training data", i)
	}
}

func TestLabelsAndVerbOneHot(t *testing.T) {
	g, err := New(builtinOptions())
	require.NoError(t, err)

	d := g.TestData(false)
	n := g.PointLength()
	for i := 0; i < d.Len(); i++ {
		label := d.Features[i][n:]
		switch d.Info[i].Verb {
		case "know":
			assert.Equal(t, []float64{1, 0}, label)
		case "wonder":
			assert.Equal(t, []float64{0, 1}, label)
		default:
			t.Fatalf("unexpected verb %q", d.Info[i].Verb)
		}
	}
}

func TestUnshuffledOrder(t *testing.T) {
	g, err := New(builtinOptions())
	require.NoError(t, err)

	d := g.TestData(false)
	var order []string
	for i := 0; i < d.Len(); i++ {
		s := datasets.Stratum{Verb: d.Info[i].Verb, Truth: d.Labels[i] == 1}.String()
		if len(order) == 0 || order[len(order)-1] != s {
			order = append(order, s)
		}
	}
	assert.Equal(t, []string{"know/true", "know/false", "wonder/true", "wonder/false"}, order)

	test, _, _ := g.Bins(datasets.Stratum{Verb: "know", Truth: true})
	for i, sample := range test {
		assert.Equal(t, sample.World, d.Info[i].World)
		assert.Equal(t, sample.DoxInP(), d.Info[i].DoxInP)
	}
}

func TestDeterministic(t *testing.T) {
	o := builtinOptions()
	a, err := New(o)
	require.NoError(t, err)
	o.Workers = 1
	b, err := New(o)
	require.NoError(t, err)

	da, db := a.TrainingData(true), b.TrainingData(true)
	assert.Equal(t, da.Features, db.Features)
	assert.Equal(t, da.Labels, db.Labels)
	assert.Equal(t, a.TestData(false).Features, b.TestData(false).Features)

	o.Seed = 8
	c, err := New(o)
	require.NoError(t, err)
	assert.NotEqual(t, da.Features, c.TrainingData(true).Features)
}

func TestShuffleSameMultiset(t *testing.T) {
	g, err := New(builtinOptions())
	require.NoError(t, err)

	base := g.TrainingData(false)
	x, y := base.Copy(), base.Copy()
	x.Shuffle(rand.New(rand.NewSource(1)))
	y.Shuffle(rand.New(rand.NewSource(2)))

	keys := func(d datasets.Dataset) (o []string) {
		for i := 0; i < d.Len(); i++ {
			o = append(o, rowKey(d, i))
		}
		return
	}
	kx, ky := keys(x), keys(y)
	assert.NotEqual(t, kx, ky)
	sort.Strings(kx)
	sort.Strings(ky)
	assert.Equal(t, kx, ky)

	kb := keys(base)
	sort.Strings(kb)
	assert.Equal(t, kb, kx)

	k1, k2 := keys(g.TrainingData(true)), keys(g.TrainingData(true))
	assert.NotEqual(t, k1, k2)
	sort.Strings(k1)
	sort.Strings(k2)
	assert.Equal(t, k1, k2)
	assert.Equal(t, kb, k1)
}

func TestTestBinLargerThanStratum(t *testing.T) {
	o := DefaultOptions([]string{"tiny"}, 3, 4)
	o.ItemsPerBin = 10
	o.MaxTriesPerBin = 100
	o.TestBinSize = 8
	o.Registry = tinyRegistry(t)

	g, err := New(o)
	require.NoError(t, err)
	for _, c := range g.Counts() {
		assert.Equal(t, c.Count, c.Test)
		assert.Equal(t, 0, c.Train)
	}
	assert.Equal(t, 0, g.TrainingData(true).Len())
	assert.Equal(t, 8, g.TestData(false).Len())
}

func TestConfigurationErrors(t *testing.T) {
	o := builtinOptions()
	o.Verbs = []string{"know", "believe"}
	_, err := New(o)
	require.Error(t, err)
	assert.True(t, errors.Is(err, verbs.ErrUnknownVerb))

	for name, mutate := range map[string]func(*Options){
		"no verbs":       func(o *Options) { o.Verbs = nil },
		"zero worlds":    func(o *Options) { o.NumWorlds = 0 },
		"zero cells":     func(o *Options) { o.MaxCells = 0 },
		"zero items":     func(o *Options) { o.ItemsPerBin = 0 },
		"zero tries":     func(o *Options) { o.MaxTriesPerBin = 0 },
		"negative test":  func(o *Options) { o.TestBinSize = -1 },
		"test too large": func(o *Options) { o.TestBinSize = o.ItemsPerBin + 1 },
		"duplicate verb": func(o *Options) { o.Verbs = []string{"know", "know"} },
		"bad embedding":  func(o *Options) { o.Embedding = "spiral" },
	} {
		o := builtinOptions()
		mutate(&o)
		_, err := New(o)
		assert.Error(t, err, name)
	}
}

type brokenVerb struct{}

func (brokenVerb) Name() string { return "broken" }

func (brokenVerb) Generate(*rand.Rand, int, bool, int) (verbs.Partition, int, []float64, error) {
	return verbs.Partition{{0}}, 0, []float64{1}, nil
}

func TestInvalidVerbOutput(t *testing.T) {
	r := verbs.NewRegistry()
	r.MustRegister(brokenVerb{})
	o := DefaultOptions([]string{"broken"}, 3, 2)
	o.Registry = r
	_, err := New(o)
	assert.Error(t, err)
}

// wideVerb returns a partition of singletons, more cells than max_cells allows.
type wideVerb struct{}

func (wideVerb) Name() string { return "wide" }

func (wideVerb) Generate(_ *rand.Rand, n int, _ bool, _ int) (verbs.Partition, int, []float64, error) {
	p := make(verbs.Partition, n)
	for w := range p {
		p[w] = []int{w}
	}
	truth := make([]float64, n)
	truth[0] = 1
	return p, 0, truth, nil
}

func TestTooManyCellsRejected(t *testing.T) {
	r := verbs.NewRegistry()
	r.MustRegister(wideVerb{})
	o := DefaultOptions([]string{"wide"}, 4, 2)
	o.Embedding = "cells"
	o.Registry = r
	_, err := New(o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_cells")
}

func TestUnsatisfiableCountsAsTry(t *testing.T) {
	o := DefaultOptions([]string{"wonder"}, 1, 2)
	o.ItemsPerBin = 5
	o.MaxTriesPerBin = 20
	o.TestBinSize = 1
	g, err := New(o)
	require.NoError(t, err)

	c := g.Counts()
	assert.Equal(t, 0, c[0].Count)
	assert.Equal(t, 20, c[0].Tries)
	assert.Equal(t, 20, c[0].Unsatisfiable)
	// the false stratum of a single world has one unique sample
	assert.Equal(t, 1, c[1].Count)
}
