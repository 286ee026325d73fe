// Package verbs implements the possible-world model of responsive verbs: question
// partitions, doxastic states, the verbs whose truth is evaluated against them, and
// the embeddings used to encode them.
package verbs

import "math/rand"

import "github.com/pkg/errors"

// MaxDrawAttempts bounds the proposals a semantic verb makes before giving up
// on a requested truth value.
const MaxDrawAttempts = 64

// ErrUnsatisfiable is returned by Generate when no proposal matched the requested
// truth value within MaxDrawAttempts.
var ErrUnsatisfiable = errors.New("no world satisfies the requested truth value")

// Verb is a generator capability for one verb semantics.
type Verb interface {
	// Name identifies the verb in configuration and labels.
	Name() string

	// Generate draws a question partition, a world in [0, numWorlds) and a doxastic
	// truth vector of length numWorlds such that the verb's semantics evaluates
	// to truth.
	Generate(rng *rand.Rand, numWorlds int, truth bool, maxCells int) (Partition, int, []float64, error)
}

// Semantics evaluates a verb on question p at world w for doxastic vector dox.
type Semantics func(p Partition, w int, dox []float64) bool

type semantic struct {
	name  string
	holds Semantics
}

// NewVerb returns a verb that samples by rejection against the truth condition holds.
func NewVerb(name string, holds Semantics) Verb {
	return semantic{name: name, holds: holds}
}

func (s semantic) Name() string {
	return s.name
}

func (s semantic) Generate(rng *rand.Rand, numWorlds int, truth bool, maxCells int) (Partition, int, []float64, error) {
	for attempt := 0; attempt < MaxDrawAttempts; attempt++ {
		p := RandomPartition(rng, numWorlds, maxCells)
		w := rng.Intn(numWorlds)
		dox := proposeDox(rng, p, w, numWorlds)
		if s.holds(p, w, dox) == truth {
			return p, w, dox, nil
		}
	}
	return nil, 0, nil, errors.Wrapf(ErrUnsatisfiable, "verb %s, truth %v", s.name, truth)
}

// proposeDox mixes three proposals: a subset of the cell of w, a subset of a random
// cell, and a uniform non-empty subset of all worlds.
func proposeDox(rng *rand.Rand, p Partition, w, numWorlds int) []float64 {
	dox := make([]float64, numWorlds)
	var pool []int
	switch rng.Intn(4) {
	case 0:
		pool = p[p.CellOf(w)]
	case 1:
		pool = p[rng.Intn(len(p))]
	default:
		pool = make([]int, numWorlds)
		for i := range pool {
			pool[i] = i
		}
	}
	var some bool
	for _, v := range pool {
		if rng.Intn(2) == 1 {
			dox[v] = 1
			some = true
		}
	}
	if !some {
		dox[pool[rng.Intn(len(pool))]] = 1
	}
	return dox
}

// within reports whether the doxastic set is non-empty and contained in cell.
func within(cell []int, dox []float64) bool {
	in := make(map[int]struct{}, len(cell))
	for _, v := range cell {
		in[v] = struct{}{}
	}
	var some bool
	for w, v := range dox {
		if v == 0 {
			continue
		}
		if _, ok := in[w]; !ok {
			return false
		}
		some = true
	}
	return some
}

// Know holds when the agent's doxastic set lies inside the true answer.
func Know(p Partition, w int, dox []float64) bool {
	c := p.CellOf(w)
	return c >= 0 && within(p[c], dox)
}

// BeCertain holds when the doxastic set lies inside some answer.
func BeCertain(p Partition, _ int, dox []float64) bool {
	for _, cell := range p {
		if within(cell, dox) {
			return true
		}
	}
	return false
}

// Wonder holds when the doxastic set meets at least two answers.
func Wonder(p Partition, _ int, dox []float64) bool {
	var met int
	for _, cell := range p {
		for _, v := range cell {
			if dox[v] != 0 {
				met++
				break
			}
		}
	}
	return met >= 2
}

// Wondows is Know at worlds inside the doxastic set and Wonder elsewhere.
func Wondows(p Partition, w int, dox []float64) bool {
	if dox[w] != 0 {
		return Know(p, w, dox)
	}
	return Wonder(p, w, dox)
}
