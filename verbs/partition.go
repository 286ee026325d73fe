package verbs

import "math/rand"
import "sort"

import "github.com/pkg/errors"

// Partition groups the worlds 0..n-1 into disjoint non-empty cells.
type Partition [][]int

// Canonicalize returns a copy of p with every cell sorted ascending and the cells
// ordered by their smallest world. Empty cells are dropped.
func (p Partition) Canonicalize() Partition {
	o := make(Partition, 0, len(p))
	for _, cell := range p {
		if len(cell) == 0 {
			continue
		}
		c := append([]int(nil), cell...)
		sort.Ints(c)
		o = append(o, c)
	}
	sort.Slice(o, func(i, j int) bool { return o[i][0] < o[j][0] })
	return o
}

// Len returns the number of cells.
func (p Partition) Len() int {
	return len(p)
}

// CellOf returns the index of the cell containing world w, or -1.
func (p Partition) CellOf(w int) int {
	for i, cell := range p {
		for _, v := range cell {
			if v == w {
				return i
			}
		}
	}
	return -1
}

// Validate checks that p partitions exactly the worlds 0..numWorlds-1.
func (p Partition) Validate(numWorlds int) error {
	seen := make([]bool, numWorlds)
	for i, cell := range p {
		if len(cell) == 0 {
			return errors.Errorf("cell %d is empty", i)
		}
		for _, w := range cell {
			if w < 0 || w >= numWorlds {
				return errors.Errorf("world %d out of range [0, %d)", w, numWorlds)
			}
			if seen[w] {
				return errors.Errorf("world %d appears twice", w)
			}
			seen[w] = true
		}
	}
	for w, ok := range seen {
		if !ok {
			return errors.Errorf("world %d is not covered", w)
		}
	}
	return nil
}

// RandomPartition draws a partition of numWorlds worlds into at most maxCells cells.
// The cell count is uniform in [1, min(maxCells, numWorlds)], then worlds are assigned
// to cells uniformly; cells left empty are dropped.
func RandomPartition(rng *rand.Rand, numWorlds, maxCells int) Partition {
	k := maxCells
	if k > numWorlds {
		k = numWorlds
	}
	if k < 1 {
		k = 1
	}
	k = 1 + rng.Intn(k)
	cells := make(Partition, k)
	for w := 0; w < numWorlds; w++ {
		c := rng.Intn(k)
		cells[c] = append(cells[c], w)
	}
	return cells.Canonicalize()
}
