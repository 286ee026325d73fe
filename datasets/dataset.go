// Package datasets implements the labeled dataset type shared by the generators
// and the trainer.
package datasets

import "fmt"
import "math/rand"

// Stratum is one (verb, truth value) combination.
type Stratum struct {
	Verb  string
	Truth bool
}

// Label is the integer class of the stratum: 1 for true, 0 for false.
func (s Stratum) Label() int {
	if s.Truth {
		return 1
	}
	return 0
}

func (s Stratum) String() string {
	return fmt.Sprintf("%s/%v", s.Verb, s.Truth)
}

// Info describes where a row came from.
type Info struct {
	Verb  string
	World int

	// DoxInP reports whether the distinguished world is in the doxastic set.
	DoxInP bool
}

// Dataset is a feature matrix with one integer label and one Info per row.
type Dataset struct {
	Features [][]float64
	Labels   []int
	Info     []Info
}

// Append adds one row.
func (d *Dataset) Append(x []float64, y int, info Info) {
	d.Features = append(d.Features, x)
	d.Labels = append(d.Labels, y)
	d.Info = append(d.Info, info)
}

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d.Labels)
}

// Width returns the feature length, or 0 when empty.
func (d Dataset) Width() int {
	if len(d.Features) == 0 {
		return 0
	}
	return len(d.Features[0])
}

// Count returns the number of rows labeled y.
func (d Dataset) Count(y int) (o int) {
	for _, v := range d.Labels {
		if v == y {
			o++
		}
	}
	return
}

// Shuffle permutes the rows uniformly, keeping features, labels and info aligned.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	rng.Shuffle(d.Len(), func(i, j int) {
		d.Features[i], d.Features[j] = d.Features[j], d.Features[i]
		d.Labels[i], d.Labels[j] = d.Labels[j], d.Labels[i]
		d.Info[i], d.Info[j] = d.Info[j], d.Info[i]
	})
}

// Slice returns rows [i, j) sharing storage with d.
func (d Dataset) Slice(i, j int) Dataset {
	if j > d.Len() {
		j = d.Len()
	}
	return Dataset{
		Features: d.Features[i:j],
		Labels:   d.Labels[i:j],
		Info:     d.Info[i:j],
	}
}

// Batches splits d into consecutive batches of at most size rows.
func (d Dataset) Batches(size int) (o []Dataset) {
	if size <= 0 {
		size = d.Len()
	}
	for i := 0; i < d.Len(); i += size {
		o = append(o, d.Slice(i, i+size))
	}
	return
}

// Copy returns a shallow copy whose row order can change independently of d.
func (d Dataset) Copy() Dataset {
	return Dataset{
		Features: append([][]float64(nil), d.Features...),
		Labels:   append([]int(nil), d.Labels...),
		Info:     append([]Info(nil), d.Info...),
	}
}
