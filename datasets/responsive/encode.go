package responsive

import "github.com/neurlang/verbs/verbs"

// oneHots is an identity matrix; row i is the one-hot vector of i. Rows are
// shared and must not be written.
type oneHots [][]float64

func identity(n int) oneHots {
	o := make(oneHots, n)
	for i := range o {
		o[i] = make([]float64, n)
		o[i][i] = 1
	}
	return o
}

// codec holds the immutable tables used to encode samples.
type codec struct {
	numWorlds int
	embed     verbs.Embedder
	worlds    oneHots
	labels    oneHots
}

func newCodec(numWorlds, numVerbs int, embed verbs.Embedder) codec {
	return codec{
		numWorlds: numWorlds,
		embed:     embed,
		worlds:    identity(numWorlds),
		labels:    identity(numVerbs),
	}
}

// pointLength is the encoded length before the verb label: the flattened
// embedding, the world one-hot and the truth vector.
func (c codec) pointLength() int {
	rows, cols := c.embed.Shape(c.numWorlds)
	return rows*cols + 2*c.numWorlds
}

// encode is a pure function of its arguments and the codec tables.
func (c codec) encode(p verbs.Partition, world int, truth []float64) []float64 {
	o := make([]float64, 0, c.pointLength())
	o = verbs.Flatten(o, c.embed.Embed(p, c.numWorlds))
	o = append(o, c.worlds[world]...)
	o = append(o, truth...)
	return o
}

// label appends the one-hot of verb v to point, without touching point.
func (c codec) label(point []float64, v int) []float64 {
	o := make([]float64, 0, len(point)+len(c.labels))
	o = append(o, point...)
	return append(o, c.labels[v]...)
}
