package verbs

import "strconv"
import "strings"

// Key is the comparable identity of a (partition, world, truth vector) triple.
// Two samples are duplicates exactly when their keys are equal.
type Key string

// Canonical computes the key of a triple. The partition is canonicalized first, so
// partitions that differ only in cell or element order map to the same key. Truth
// values are written with strconv 'g' formatting, so 1 and 1.0 are the same value, and so are 0 and -0.
func Canonical(p Partition, world int, truth []float64) Key {
	var b strings.Builder
	for i, cell := range p.Canonicalize() {
		if i != 0 {
			b.WriteByte('|')
		}
		for j, w := range cell {
			if j != 0 {
				b.WriteByte('.')
			}
			b.WriteString(strconv.Itoa(w))
		}
	}
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(world))
	b.WriteByte('/')
	for i, v := range truth {
		if i != 0 {
			b.WriteByte(',')
		}
		if v == 0 {
			v = 0 // -0
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return Key(b.String())
}
