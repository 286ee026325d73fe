package hash

import (
	"testing"
)

// performance benchmark
func BenchmarkHash(b *testing.B) {
	n := uint32(0)
	s := uint32(0)
	for i := 0; i < b.N; i++ {
		n = Hash(n, s, 0xffffffff)
		s++
	}
}

// sanity check fuzz
func FuzzHash(f *testing.F) {
	f.Add(uint32(0), uint32(0), uint32(0))
	f.Fuzz(func(t *testing.T, n, s, max uint32) {
		out := Hash(n, s, max)
		if max == 0 && out != 0 {
			t.Errorf("Hash(%d, %d, 0) == %d (max=0 should be 0)", n, s, out)
		}
		if max > 1 && out >= max {
			t.Errorf("Hash(%d, %d, %d) == %d (output bigger or equal than max)", n, s, max, out)
		}
	})
}

// streams of one seed must not collide for small n
func TestStreamDistinct(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, -7, 1 << 40} {
		var seen = make(map[int64]uint32)
		for n := uint32(0); n < 4096; n++ {
			s := Stream(seed, n)
			if prev, ok := seen[s]; ok {
				t.Fatalf("seed %d: stream %d collides with stream %d", seed, n, prev)
			}
			seen[s] = n
		}
	}
}

func TestStreamDeterministic(t *testing.T) {
	if Stream(5, 3) != Stream(5, 3) {
		t.Error("Stream is not a pure function")
	}
	if Stream(5, 3) == Stream(6, 3) {
		t.Error("different seeds give the same stream")
	}
}
