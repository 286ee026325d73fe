package responsive

import "github.com/neurlang/verbs/datasets"

// TrainingData returns the train bins of every stratum with the verb label
// appended to each point. Call it with shuffle true unless stratum order is wanted.
func (g *Generator) TrainingData(shuffle bool) datasets.Dataset {
	return g.prep(func(b *bin) []Sample { return b.train }, shuffle)
}

// TestData returns the test bins like TrainingData. Unshuffled rows are in
// stratum order, then in order of acceptance.
func (g *Generator) TestData(shuffle bool) datasets.Dataset {
	return g.prep(func(b *bin) []Sample { return b.test }, shuffle)
}

func (g *Generator) prep(which func(*bin) []Sample, shuffle bool) (d datasets.Dataset) {
	for i, s := range g.strata {
		for _, sample := range which(&g.bins[i]) {
			d.Append(g.codec.label(sample.Point, i/2), s.Label(), datasets.Info{
				Verb:   s.Verb,
				World:  sample.World,
				DoxInP: sample.DoxInP(),
			})
		}
	}
	if shuffle {
		g.mut.Lock()
		d.Shuffle(g.rng)
		g.mut.Unlock()
	}
	return
}
