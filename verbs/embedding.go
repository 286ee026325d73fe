package verbs

import "github.com/pkg/errors"

// Embedder turns a partition into a fixed-shape numeric matrix.
type Embedder interface {
	// Embed encodes p. The result has the shape reported by Shape.
	Embed(p Partition, numWorlds int) [][]float64

	// Shape reports the rows and columns produced for numWorlds worlds.
	Shape(numWorlds int) (rows, cols int)
}

// SquareEmbedding is the co-membership matrix: entry (i, j) is 1 when worlds i and j
// share a cell.
type SquareEmbedding struct{}

func (SquareEmbedding) Shape(numWorlds int) (int, int) {
	return numWorlds, numWorlds
}

func (SquareEmbedding) Embed(p Partition, numWorlds int) [][]float64 {
	m := newMatrix(numWorlds, numWorlds)
	for _, cell := range p {
		for _, i := range cell {
			for _, j := range cell {
				m[i][j] = 1
			}
		}
	}
	return m
}

// CellEmbedding is the world-by-cell membership matrix: entry (w, c) is 1 when world w
// lies in the c-th canonical cell.
type CellEmbedding struct {
	MaxCells int
}

func (e CellEmbedding) Shape(numWorlds int) (int, int) {
	return numWorlds, e.MaxCells
}

func (e CellEmbedding) Embed(p Partition, numWorlds int) [][]float64 {
	m := newMatrix(numWorlds, e.MaxCells)
	for c, cell := range p.Canonicalize() {
		if c >= e.MaxCells {
			break
		}
		for _, w := range cell {
			m[w][c] = 1
		}
	}
	return m
}

// EmbeddingByName resolves "square" (the default for "") or "cells".
func EmbeddingByName(name string, maxCells int) (Embedder, error) {
	switch name {
	case "", "square":
		return SquareEmbedding{}, nil
	case "cells":
		return CellEmbedding{MaxCells: maxCells}, nil
	}
	return nil, errors.Errorf("unknown embedding %q", name)
}

// Flatten appends m row-major to dst.
func Flatten(dst []float64, m [][]float64) []float64 {
	for _, row := range m {
		dst = append(dst, row...)
	}
	return dst
}

func newMatrix(rows, cols int) [][]float64 {
	buf := make([]float64, rows*cols)
	m := make([][]float64, rows)
	for i := range m {
		m[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}
